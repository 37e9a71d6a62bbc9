package build

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalix127/inspira-ui/internal/config"
	"github.com/kalix127/inspira-ui/internal/registry"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.ContentDir = "content"
	cfg.HooksDir = "hooks"
	return cfg
}

func TestRenderIndexSkipsItemsWithoutFiles(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{Name: "bare", Type: registry.TypeUI},
		{Name: "button", Type: registry.TypeUI, Files: []registry.FileReference{{Path: "ui/button/Button.vue"}}},
	}

	artifact, count, err := RenderIndex(testConfig(), items)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	out := string(artifact.Data)
	require.NotContains(t, out, `"bare"`)
	require.Contains(t, out, `"button"`)
}

func TestRenderIndexComponentPathUsesFirstFile(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{
			Name: "card",
			Type: registry.TypeUI,
			Files: []registry.FileReference{
				{Path: "ui/card/Card.vue", Type: "registry:ui"},
				{Path: "ui/card/CardHeader.vue", Type: "registry:ui"},
			},
		},
	}

	artifact, _, err := RenderIndex(testConfig(), items)
	require.NoError(t, err)

	out := string(artifact.Data)
	require.Contains(t, out, `component: () => import("@/content/ui/card/Card.vue").then((m) => m.default)`)
	require.Contains(t, out, `path: "@/content/ui/card/CardHeader.vue"`)
}

func TestRenderIndexNormalizesDependencies(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{Name: "plain", Type: registry.TypeUI, Files: []registry.FileReference{{Path: "ui/plain/Plain.vue"}}},
		{Name: "fancy", Type: registry.TypeUI, Dependencies: []string{"@vueuse/core"}, Files: []registry.FileReference{{Path: "ui/fancy/Fancy.vue"}}},
	}

	artifact, _, err := RenderIndex(testConfig(), items)
	require.NoError(t, err)

	out := string(artifact.Data)
	require.Contains(t, out, "dependencies: []")
	require.Contains(t, out, `dependencies: ["@vueuse/core"]`)
	require.NotContains(t, out, "undefined")
}

func TestRenderIndexResolvesHooksAgainstHooksRoot(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{Name: "use-mouse", Type: registry.TypeHook, Files: []registry.FileReference{{Path: "use-mouse.ts"}}},
	}

	artifact, _, err := RenderIndex(testConfig(), items)
	require.NoError(t, err)
	require.Contains(t, string(artifact.Data), `"@/hooks/use-mouse.ts"`)
}

func TestRenderIndexEndsWithCRLF(t *testing.T) {
	t.Parallel()

	artifact, _, err := RenderIndex(testConfig(), nil)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(artifact.Data), "\r\n"))
}

func TestRenderBlockIndexFiltersAndAddsRawLoaders(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{Name: "button", Type: registry.TypeUI, Files: []registry.FileReference{{Path: "ui/button/Button.vue"}}},
		{
			Name: "hero-section",
			Type: registry.TypeBlock,
			Files: []registry.FileReference{
				{Path: "blocks/hero-section/HeroSection.vue", Type: "registry:block"},
			},
		},
	}

	artifact, count, err := RenderBlockIndex(testConfig(), items)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	out := string(artifact.Data)
	require.NotContains(t, out, `"button"`)
	require.Contains(t, out, `"hero-section"`)
	require.Contains(t, out, "export const blocks")

	// Raw loaders carry the ?raw marker per file and for the primary path.
	require.Contains(t, out, `raw: () => import("@/content/blocks/hero-section/HeroSection.vue?raw").then((m) => m.default)`)
	require.Equal(t, 2, strings.Count(out, "?raw"))
}

func TestRenderIndexHasNoRawLoaders(t *testing.T) {
	t.Parallel()

	items := []registry.Item{
		{Name: "hero-section", Type: registry.TypeBlock, Files: []registry.FileReference{{Path: "blocks/hero-section/HeroSection.vue"}}},
	}

	artifact, _, err := RenderIndex(testConfig(), items)
	require.NoError(t, err)
	require.NotContains(t, string(artifact.Data), "?raw")
}
