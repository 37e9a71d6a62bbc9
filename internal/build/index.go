package build

import (
	"bytes"
	"encoding/json"
	"path"
	"strconv"
	"text/template"

	"github.com/kalix127/inspira-ui/internal/config"
	"github.com/kalix127/inspira-ui/internal/registry"
	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

// indexTmpl renders the generated index modules. The same template serves
// both the full index and the block index; Raw toggles the raw-source
// loaders the block index adds per file and for the primary path.
var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Generated by registry-build. Do not edit directly.

export const {{ .Export }} = {
{{- range .Entries }}
  {{ quote .Name }}: {
    name: {{ quote .Name }},
    description: {{ quote .Description }},
    type: {{ quote .Type }},
    dependencies: {{ .Dependencies }},
    files: [
{{- range .Files }}
      {
        path: {{ quote .Path }},
        type: {{ quote .Type }},
        target: {{ quote .Target }},
{{- if $.Raw }}
        raw: () => import({{ quote (print .Path "?raw") }}).then((m) => m.default),
{{- end }}
      },
{{- end }}
    ],
    component: () => import({{ quote .ComponentPath }}).then((m) => m.default),
{{- if $.Raw }}
    raw: () => import({{ quote (print .ComponentPath "?raw") }}).then((m) => m.default),
{{- end }}
    source: {{ quote .Source }},
    category: {{ quote .Category }},
    subCategory: {{ quote .SubCategory }},
  },
{{- end }}
} as const`))

type indexDoc struct {
	Export  string
	Raw     bool
	Entries []indexEntry
}

type indexEntry struct {
	Name          string
	Description   string
	Type          string
	Dependencies  string
	Files         []indexFile
	ComponentPath string
	Source        string
	Category      string
	SubCategory   string
}

type indexFile struct {
	Path   string
	Type   string
	Target string
}

// RenderIndex produces the full name-to-descriptor index module. Items
// without file references are skipped silently.
func RenderIndex(cfg config.Config, items []registry.Item) (Artifact, int, error) {
	return renderIndexModule(cfg, cfg.IndexFile, "index", false, items)
}

// RenderBlockIndex produces the block-only index module with raw-source
// loaders alongside the component loaders.
func RenderBlockIndex(cfg config.Config, items []registry.Item) (Artifact, int, error) {
	blocks := make([]registry.Item, 0, len(items))
	for _, item := range items {
		if item.Type == registry.TypeBlock {
			blocks = append(blocks, item)
		}
	}
	return renderIndexModule(cfg, cfg.BlocksFile, "blocks", true, blocks)
}

func renderIndexModule(cfg config.Config, outPath, export string, raw bool, items []registry.Item) (Artifact, int, error) {
	doc := indexDoc{Export: export, Raw: raw}
	for _, item := range items {
		if len(item.Files) == 0 {
			continue
		}

		deps, err := json.Marshal(normalizeDeps(item.Dependencies))
		if err != nil {
			return Artifact{}, 0, apperrors.NewRenderError(outPath, err)
		}

		entry := indexEntry{
			Name:          item.Name,
			Description:   item.Description,
			Type:          item.Type.String(),
			Dependencies:  string(deps),
			ComponentPath: importPath(cfg, item, item.ComponentPath()),
			Category:      item.Category,
			SubCategory:   item.SubCategory,
		}
		for _, f := range item.Files {
			entry.Files = append(entry.Files, indexFile{
				Path:   importPath(cfg, item, f.Path),
				Type:   f.Type,
				Target: f.Target,
			})
		}
		doc.Entries = append(doc.Entries, entry)
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, doc); err != nil {
		return Artifact{}, 0, apperrors.NewRenderError(outPath, err)
	}

	return Artifact{Path: outPath, Data: Seal(buf.Bytes())}, len(doc.Entries), nil
}

// importPath resolves a file path relative to its item's source root into a
// project-relative module path.
func importPath(cfg config.Config, item registry.Item, rel string) string {
	root := cfg.ContentDir
	if item.Type == registry.TypeHook {
		root = cfg.HooksDir
	}
	return cfg.ImportAlias + path.Join(root, rel)
}

// normalizeDeps serializes an absent dependency list as an empty array. The
// upstream generator emitted a literal undefined here; consumers treat both
// as "no dependencies".
func normalizeDeps(deps []string) []string {
	if deps == nil {
		return []string{}
	}
	return deps
}
