package registry

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCrawlDiscoversExamples(t *testing.T) {
	t.Parallel()

	content := t.TempDir()
	writeFixture(t, content, "examples/button-demo/ButtonDemo.vue", "<template />")
	writeFixture(t, content, "examples/button-demo/notes.md", "ignored")
	writeFixture(t, content, "examples/card-demo.vue", "<template />")
	writeFixture(t, content, "examples/README.md", "ignored")

	items, err := Crawl(context.Background(), content)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Equal(t, "button-demo", items[0].Name)
	require.Equal(t, TypeExample, items[0].Type)
	require.Equal(t, "examples/button-demo/ButtonDemo.vue", items[0].Files[0].Path)

	require.Equal(t, "card-demo", items[1].Name)
	require.Equal(t, "examples/card-demo.vue", items[1].Files[0].Path)
}

func TestCrawlSkipsEmptyDirs(t *testing.T) {
	t.Parallel()

	content := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(content, "examples", "empty"), 0o755))

	items, err := Crawl(context.Background(), content)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCrawlMissingExamplesDir(t *testing.T) {
	t.Parallel()

	items, err := Crawl(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestCrawlHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Crawl(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func writeFixture(t *testing.T, root, rel, contents string) {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}
