package registry

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

// Crawl discovers example items under <contentDir>/examples. A directory
// becomes one multi-file item named after the directory; a loose source file
// becomes a single-file item named after its basename. A missing examples
// directory yields an empty list, not an error.
func Crawl(ctx context.Context, contentDir string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	examplesDir := filepath.Join(contentDir, TypeExample.Dir())
	entries, err := os.ReadDir(examplesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.NewCrawlError(examplesDir, err)
	}

	var items []Item
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if !entry.IsDir() {
			if !isSourceFile(entry.Name()) {
				continue
			}
			items = append(items, Item{
				Name: strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
				Type: TypeExample,
				Files: []FileReference{
					{Path: path.Join(TypeExample.Dir(), entry.Name()), Type: "registry:example"},
				},
			})
			continue
		}

		item, err := crawlExampleDir(examplesDir, entry.Name())
		if err != nil {
			return nil, err
		}
		if len(item.Files) > 0 {
			items = append(items, item)
		}
	}

	sort.Slice(items, func(a, b int) bool { return items[a].Name < items[b].Name })
	return items, nil
}

func crawlExampleDir(examplesDir, name string) (Item, error) {
	dir := filepath.Join(examplesDir, name)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Item{}, apperrors.NewCrawlError(dir, err)
	}

	item := Item{Name: name, Type: TypeExample}
	for _, entry := range entries {
		if entry.IsDir() || !isSourceFile(entry.Name()) {
			continue
		}
		item.Files = append(item.Files, FileReference{
			Path: path.Join(TypeExample.Dir(), name, entry.Name()),
			Type: "registry:example",
		})
	}

	sort.Slice(item.Files, func(a, b int) bool { return item.Files[a].Path < item.Files[b].Path })
	return item, nil
}

func isSourceFile(name string) bool {
	switch filepath.Ext(name) {
	case ".vue", ".ts", ".tsx", ".js":
		return true
	}
	return false
}
