package theme

import (
	"bytes"
	"encoding/json"
	"path"

	"github.com/kalix127/inspira-ui/internal/build"
	"github.com/kalix127/inspira-ui/internal/config"
)

// VarsObject marshals an ordered variable list as a JSON object, preserving
// the mapping order instead of Go's sorted map keys.
type VarsObject []Variable

// MarshalJSON implements ordered object encoding.
func (v VarsObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entry.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type modeVars struct {
	Light VarsObject `json:"light"`
	Dark  VarsObject `json:"dark"`
}

type baseDoc struct {
	Name                 string   `json:"name"`
	Label                string   `json:"label"`
	CSSVars              modeVars `json:"cssVars"`
	InlineColorsTemplate string   `json:"inlineColorsTemplate"`
	CSSVarsTemplate      string   `json:"cssVarsTemplate"`
}

type themeDoc struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	CSSVars modeVars `json:"cssVars"`
}

// RenderColors flattens the color table into the single colors document.
func RenderColors(cfg config.Config, p *Palette) (build.Artifact, error) {
	return build.JSONArtifact(cfg.ColorsFile, p.Flatten())
}

// RenderBaseStyles produces one document per base family bundling the two
// CSS templates and the raw resolved variable maps.
func RenderBaseStyles(cfg config.Config, p *Palette, m Mapping) ([]build.Artifact, error) {
	families := BaseFamilies()
	artifacts := make([]build.Artifact, 0, len(families))

	for _, family := range families {
		light := Resolve(m.Light, family, p)
		dark := Resolve(m.Dark, family, p)

		doc := baseDoc{
			Name:                 family,
			Label:                labelFor(family),
			CSSVars:              modeVars{Light: light, Dark: dark},
			InlineColorsTemplate: BaseStylesheet,
			CSSVarsTemplate:      VariableStylesheet(light, dark),
		}

		artifact, err := build.JSONArtifact(path.Join(cfg.ColorsDir, family+".json"), doc)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}

// RenderThemes produces the concatenated theme stylesheet plus one theme
// document per base family.
func RenderThemes(cfg config.Config, p *Palette, m Mapping) ([]build.Artifact, error) {
	themes := Themes(p, m)

	artifacts := make([]build.Artifact, 0, len(themes)+1)
	artifacts = append(artifacts, build.Artifact{
		Path: cfg.ThemesFile,
		Data: build.Seal([]byte(ThemesCSS(themes))),
	})

	for _, t := range themes {
		doc := themeDoc{
			Name:    t.Name,
			Label:   t.Label,
			CSSVars: modeVars{Light: t.Light, Dark: t.Dark},
		}
		artifact, err := build.JSONArtifact(path.Join(cfg.ThemesDir, t.Name+".json"), doc)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, nil
}
