package theme

import "strings"

// Theme is a named theme with fully resolved variables per mode.
type Theme struct {
	Name  string
	Label string
	Light []Variable
	Dark  []Variable
}

// Themes resolves every base family through the mapping into the fixed theme
// set. The base-stylesheet renderer and this path share Resolve, so both
// produce identical values for the same family.
func Themes(p *Palette, m Mapping) []Theme {
	families := BaseFamilies()
	themes := make([]Theme, 0, len(families))
	for _, family := range families {
		themes = append(themes, Theme{
			Name:  family,
			Label: labelFor(family),
			Light: Resolve(m.Light, family, p),
			Dark:  Resolve(m.Dark, family, p),
		})
	}
	return themes
}

// ThemesCSS renders the repeating light/dark rule pair for every theme into
// one concatenated stylesheet.
func ThemesCSS(themes []Theme) string {
	var b strings.Builder
	for i, t := range themes {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("  ")
		b.WriteString(VariableBlock(".theme-"+t.Name, t.Light))
		b.WriteString("\n\n  ")
		b.WriteString(VariableBlock(".dark .theme-"+t.Name, t.Dark))
		b.WriteString("\n")
	}
	return b.String()
}

func labelFor(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
