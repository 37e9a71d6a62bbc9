package publish

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalix127/inspira-ui/internal/build"
	"github.com/kalix127/inspira-ui/internal/logger"
)

func testPublisher(t *testing.T) *Publisher {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return New(log)
}

func TestPublishWritesArtifacts(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	artifacts := []build.Artifact{
		{Path: "colors.json", Data: []byte("{}\r\n")},
		{Path: "styles/button.json", Data: []byte(`{"name":"button"}` + "\r\n")},
	}

	require.NoError(t, testPublisher(t).Publish(context.Background(), root, nil, artifacts))

	data, err := os.ReadFile(filepath.Join(root, "colors.json"))
	require.NoError(t, err)
	require.Equal(t, "{}\r\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, "styles", "button.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "button")
}

func TestPublishWipesStaleDirectories(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	stale := filepath.Join(root, "styles", "removed-component.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	artifacts := []build.Artifact{{Path: "styles/button.json", Data: []byte("{}\r\n")}}
	require.NoError(t, testPublisher(t).Publish(context.Background(), root, []string{"styles"}, artifacts))

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(root, "styles", "button.json"))
	require.NoError(t, err)
}

func TestPublishOverwritesPreviousOutput(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	pub := testPublisher(t)

	first := []build.Artifact{{Path: "themes.css", Data: []byte("old\r\n")}}
	require.NoError(t, pub.Publish(context.Background(), root, nil, first))

	second := []build.Artifact{{Path: "themes.css", Data: []byte("new\r\n")}}
	require.NoError(t, pub.Publish(context.Background(), root, nil, second))

	data, err := os.ReadFile(filepath.Join(root, "themes.css"))
	require.NoError(t, err)
	require.Equal(t, "new\r\n", string(data))
}

func TestPublishLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	artifacts := []build.Artifact{{Path: "colors.json", Data: []byte("{}\r\n")}}
	require.NoError(t, testPublisher(t).Publish(context.Background(), root, nil, artifacts))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "colors.json", entries[0].Name())
}

func TestPublishHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := testPublisher(t).Publish(ctx, t.TempDir(), nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}
