package build

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/kalix127/inspira-ui/internal/config"
	"github.com/kalix127/inspira-ui/internal/logger"
	"github.com/kalix127/inspira-ui/internal/registry"
	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

// styleTypes is the allow-list of item types that get a style document.
var styleTypes = map[registry.ItemType]struct{}{
	registry.TypeUI:    {},
	registry.TypeBlock: {},
	registry.TypeHook:  {},
}

// StyleStatus classifies the outcome of style emission for one item.
type StyleStatus string

const (
	StyleWritten StyleStatus = "written"
	StyleSkipped StyleStatus = "skipped"
)

// StyleResult reports what happened to one item during style emission.
type StyleResult struct {
	Name    string
	Status  StyleStatus
	Reason  string
	Dropped []string
}

type stylePayload struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Description  string      `json:"description,omitempty"`
	Dependencies []string    `json:"dependencies"`
	Files        []styleFile `json:"files"`
}

type styleFile struct {
	Path    string `json:"path"`
	Type    string `json:"type,omitempty"`
	Target  string `json:"target,omitempty"`
	Content string `json:"content"`
}

// RenderStyles assembles one JSON document per allow-listed item, inlining
// the textual contents of every referenced file. A file that cannot be read
// is logged and dropped; the item still emits with whatever files succeeded.
// An item whose assembled payload fails entry validation is skipped and
// reported in the results instead of written.
func RenderStyles(ctx context.Context, log *logger.Logger, cfg config.Config, items []registry.Item) ([]Artifact, []StyleResult, error) {
	var artifacts []Artifact
	var results []StyleResult

	for _, item := range items {
		if _, ok := styleTypes[item.Type]; !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		files, dropped := readItemFiles(log, cfg, item)

		payload := stylePayload{
			Name:         item.Name,
			Type:         item.Type.String(),
			Description:  item.Description,
			Dependencies: normalizeDeps(item.Dependencies),
			Files:        files,
		}

		if err := registry.ValidateEntry(payload); err != nil {
			log.Warn("style payload failed validation, skipping item", "item", item.Name, "reason", err.Error())
			results = append(results, StyleResult{Name: item.Name, Status: StyleSkipped, Reason: err.Error(), Dropped: dropped})
			continue
		}

		artifact, err := JSONArtifact(path.Join(cfg.StylesDir, item.Name+".json"), payload)
		if err != nil {
			return nil, nil, err
		}
		artifacts = append(artifacts, artifact)
		results = append(results, StyleResult{Name: item.Name, Status: StyleWritten, Dropped: dropped})
	}

	return artifacts, results, nil
}

// readItemFiles reads every referenced file as a bounded concurrent batch.
// Each read fills its own slot of a pre-sized slice; completion order never
// affects output content.
func readItemFiles(log *logger.Logger, cfg config.Config, item registry.Item) ([]styleFile, []string) {
	root := cfg.ContentDir
	if item.Type == registry.TypeHook {
		root = cfg.HooksDir
	}

	slots := make([]*styleFile, len(item.Files))
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var wg sync.WaitGroup
	for i, ref := range item.Files {
		wg.Add(1)
		go func(i int, ref registry.FileReference) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			full := filepath.Join(root, filepath.FromSlash(ref.Path))
			data, err := os.ReadFile(full)
			if err != nil {
				log.Error(apperrors.NewReadError(full, err), "referenced file dropped", "item", item.Name)
				return
			}
			slots[i] = &styleFile{
				Path:    ref.Path,
				Type:    ref.Type,
				Target:  ref.Target,
				Content: string(data),
			}
		}(i, ref)
	}
	wg.Wait()

	files := make([]styleFile, 0, len(slots))
	var dropped []string
	for i, slot := range slots {
		if slot == nil {
			dropped = append(dropped, item.Files[i].Path)
			continue
		}
		files = append(files, *slot)
	}
	return files, dropped
}
