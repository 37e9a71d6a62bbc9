package registry

import (
	"context"
	"sort"

	"github.com/kalix127/inspira-ui/internal/logger"
)

// Aggregate merges the static item list with crawler output, validates the
// result against the registry schema, and returns it sorted by name. A
// crawler failure and a validation failure surface the same way: as an error
// that aborts the run.
func Aggregate(ctx context.Context, log *logger.Logger, contentDir string) ([]Item, error) {
	static := StaticItems()

	crawled, err := Crawl(ctx, contentDir)
	if err != nil {
		log.Error(err, "content crawl failed", "dir", contentDir)
		return nil, err
	}

	merged := make([]Item, 0, len(static)+len(crawled))
	merged = append(merged, static...)
	merged = append(merged, crawled...)

	if err := ValidateItems(merged); err != nil {
		log.Error(err, "registry failed schema validation")
		return nil, err
	}

	sort.Slice(merged, func(a, b int) bool { return merged[a].Name < merged[b].Name })

	log.Info("registry aggregated", "static", len(static), "crawled", len(crawled))
	return merged, nil
}
