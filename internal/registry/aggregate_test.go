package registry

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalix127/inspira-ui/internal/logger"
)

func TestAggregateMergesAndSorts(t *testing.T) {
	t.Parallel()

	content := t.TempDir()
	writeFixture(t, content, "examples/aurora-demo/AuroraDemo.vue", "<template />")

	items, err := Aggregate(context.Background(), testLogger(t), content)
	require.NoError(t, err)

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	require.True(t, sort.StringsAreSorted(names))
	require.Contains(t, names, "aurora-demo")
	require.Contains(t, names, "button")
	require.Len(t, items, len(StaticItems())+1)
}

func TestAggregateEmptyContentDir(t *testing.T) {
	t.Parallel()

	items, err := Aggregate(context.Background(), testLogger(t), t.TempDir())
	require.NoError(t, err)
	require.Len(t, items, len(StaticItems()))
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error"})
	require.NoError(t, err)
	return log
}
