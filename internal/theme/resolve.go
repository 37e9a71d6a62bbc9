package theme

import "strings"

// Variable is one ordered CSS variable name/value pair.
type Variable struct {
	Name  string
	Value string
}

// Mapping holds the semantic variable lists for both UI modes. Order is
// significant: it is the order variables render in CSS blocks and documents.
type Mapping struct {
	Light []Variable
	Dark  []Variable
}

const basePlaceholder = "{{base}}"

// DefaultMapping returns the semantic color mapping shared by every base
// family. Values are either placeholder tokens carrying {{base}}, plain
// token names, or literal CSS values.
func DefaultMapping() Mapping {
	return Mapping{
		Light: []Variable{
			{"background", "white"},
			{"foreground", "{{base}}-950"},
			{"card", "white"},
			{"card-foreground", "{{base}}-950"},
			{"popover", "white"},
			{"popover-foreground", "{{base}}-950"},
			{"primary", "{{base}}-900"},
			{"primary-foreground", "{{base}}-50"},
			{"secondary", "{{base}}-100"},
			{"secondary-foreground", "{{base}}-900"},
			{"muted", "{{base}}-100"},
			{"muted-foreground", "{{base}}-500"},
			{"accent", "{{base}}-100"},
			{"accent-foreground", "{{base}}-900"},
			{"destructive", "red-500"},
			{"destructive-foreground", "{{base}}-50"},
			{"border", "{{base}}-200"},
			{"input", "{{base}}-200"},
			{"ring", "{{base}}-950"},
			{"radius", "0.5rem"},
		},
		Dark: []Variable{
			{"background", "{{base}}-950"},
			{"foreground", "{{base}}-50"},
			{"card", "{{base}}-950"},
			{"card-foreground", "{{base}}-50"},
			{"popover", "{{base}}-950"},
			{"popover-foreground", "{{base}}-50"},
			{"primary", "{{base}}-50"},
			{"primary-foreground", "{{base}}-900"},
			{"secondary", "{{base}}-800"},
			{"secondary-foreground", "{{base}}-50"},
			{"muted", "{{base}}-800"},
			{"muted-foreground", "{{base}}-400"},
			{"accent", "{{base}}-800"},
			{"accent-foreground", "{{base}}-50"},
			{"destructive", "red-900"},
			{"destructive-foreground", "{{base}}-50"},
			{"border", "{{base}}-800"},
			{"input", "{{base}}-800"},
			{"ring", "{{base}}-300"},
		},
	}
}

// Resolve substitutes the base family into every placeholder and looks the
// resulting tokens up in the palette. A substituted token with no matching
// palette entry leaves that variable unset for the mode. Non-placeholder
// values resolve through the palette when they name a token and pass through
// as literals otherwise.
func Resolve(vars []Variable, base string, p *Palette) []Variable {
	resolved := make([]Variable, 0, len(vars))
	for _, v := range vars {
		if strings.Contains(v.Value, basePlaceholder) {
			token := strings.ReplaceAll(v.Value, basePlaceholder, base)
			channel, ok := p.Channel(token)
			if !ok {
				continue
			}
			resolved = append(resolved, Variable{Name: v.Name, Value: channel})
			continue
		}

		if channel, ok := p.Channel(v.Value); ok {
			resolved = append(resolved, Variable{Name: v.Name, Value: channel})
			continue
		}

		resolved = append(resolved, v)
	}
	return resolved
}
