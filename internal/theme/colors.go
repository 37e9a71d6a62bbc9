package theme

import (
	"sort"
	"strconv"
	"strings"
)

// Shade is one step of a palette family.
type Shade struct {
	Scale      int    `json:"scale"`
	Hex        string `json:"hex"`
	RGB        string `json:"rgb"`
	HSL        string `json:"hsl"`
	RGBChannel string `json:"rgbChannel,omitempty"`
	HSLChannel string `json:"hslChannel,omitempty"`
}

// Color is a single-valued color entry without a scale.
type Color struct {
	Hex        string `json:"hex"`
	RGB        string `json:"rgb"`
	HSL        string `json:"hsl"`
	RGBChannel string `json:"rgbChannel,omitempty"`
	HSLChannel string `json:"hslChannel,omitempty"`
}

// Palette is the raw color table with channel strings computed once at
// construction. Families hold ordered shade lists; singles hold one value;
// scalars pass through untouched.
type Palette struct {
	Scalars  map[string]string
	Singles  map[string]Color
	Families map[string][]Shade
}

// BaseFamilies returns the five families a base stylesheet can be built on.
func BaseFamilies() []string {
	return []string{"slate", "gray", "zinc", "neutral", "stone"}
}

// DefaultPalette returns the full color table with channels computed.
func DefaultPalette() *Palette {
	p := &Palette{
		Scalars: map[string]string{
			"transparent": "transparent",
			"current":     "currentColor",
		},
		Singles: map[string]Color{
			"white": {Hex: "#ffffff", RGB: "rgb(255,255,255)", HSL: "hsl(0,0%,100%)"},
			"black": {Hex: "#000000", RGB: "rgb(0,0,0)", HSL: "hsl(0,0%,0%)"},
		},
		Families: map[string][]Shade{
			"slate": {
				{Scale: 50, Hex: "#f8fafc", RGB: "rgb(248,250,252)", HSL: "hsl(210,40%,98%)"},
				{Scale: 100, Hex: "#f1f5f9", RGB: "rgb(241,245,249)", HSL: "hsl(210,40%,96.1%)"},
				{Scale: 200, Hex: "#e2e8f0", RGB: "rgb(226,232,240)", HSL: "hsl(214.3,31.8%,91.4%)"},
				{Scale: 300, Hex: "#cbd5e1", RGB: "rgb(203,213,225)", HSL: "hsl(212.7,26.8%,83.9%)"},
				{Scale: 400, Hex: "#94a3b8", RGB: "rgb(148,163,184)", HSL: "hsl(215,20.2%,65.1%)"},
				{Scale: 500, Hex: "#64748b", RGB: "rgb(100,116,139)", HSL: "hsl(215.4,16.3%,46.9%)"},
				{Scale: 600, Hex: "#475569", RGB: "rgb(71,85,105)", HSL: "hsl(215.3,19.3%,34.5%)"},
				{Scale: 700, Hex: "#334155", RGB: "rgb(51,65,85)", HSL: "hsl(215.3,25%,26.7%)"},
				{Scale: 800, Hex: "#1e293b", RGB: "rgb(30,41,59)", HSL: "hsl(217.2,32.6%,17.5%)"},
				{Scale: 900, Hex: "#0f172a", RGB: "rgb(15,23,42)", HSL: "hsl(222.2,47.4%,11.2%)"},
				{Scale: 950, Hex: "#020617", RGB: "rgb(2,6,23)", HSL: "hsl(228.6,84%,4.9%)"},
			},
			"gray": {
				{Scale: 50, Hex: "#f9fafb", RGB: "rgb(249,250,251)", HSL: "hsl(210,20%,98%)"},
				{Scale: 100, Hex: "#f3f4f6", RGB: "rgb(243,244,246)", HSL: "hsl(220,14.3%,95.9%)"},
				{Scale: 200, Hex: "#e5e7eb", RGB: "rgb(229,231,235)", HSL: "hsl(220,13%,91%)"},
				{Scale: 300, Hex: "#d1d5db", RGB: "rgb(209,213,219)", HSL: "hsl(216,12.2%,83.9%)"},
				{Scale: 400, Hex: "#9ca3af", RGB: "rgb(156,163,175)", HSL: "hsl(217.9,10.6%,64.9%)"},
				{Scale: 500, Hex: "#6b7280", RGB: "rgb(107,114,128)", HSL: "hsl(220,8.9%,46.1%)"},
				{Scale: 600, Hex: "#4b5563", RGB: "rgb(75,85,99)", HSL: "hsl(215,13.8%,34.1%)"},
				{Scale: 700, Hex: "#374151", RGB: "rgb(55,65,81)", HSL: "hsl(216.9,19.1%,26.7%)"},
				{Scale: 800, Hex: "#1f2937", RGB: "rgb(31,41,55)", HSL: "hsl(215,27.9%,16.9%)"},
				{Scale: 900, Hex: "#111827", RGB: "rgb(17,24,39)", HSL: "hsl(220.9,39.3%,11%)"},
				{Scale: 950, Hex: "#030712", RGB: "rgb(3,7,18)", HSL: "hsl(224,71.4%,4.1%)"},
			},
			"zinc": {
				{Scale: 50, Hex: "#fafafa", RGB: "rgb(250,250,250)", HSL: "hsl(0,0%,98%)"},
				{Scale: 100, Hex: "#f4f4f5", RGB: "rgb(244,244,245)", HSL: "hsl(240,4.8%,95.9%)"},
				{Scale: 200, Hex: "#e4e4e7", RGB: "rgb(228,228,231)", HSL: "hsl(240,5.9%,90%)"},
				{Scale: 300, Hex: "#d4d4d8", RGB: "rgb(212,212,216)", HSL: "hsl(240,4.9%,83.9%)"},
				{Scale: 400, Hex: "#a1a1aa", RGB: "rgb(161,161,170)", HSL: "hsl(240,5%,64.9%)"},
				{Scale: 500, Hex: "#71717a", RGB: "rgb(113,113,122)", HSL: "hsl(240,3.8%,46.1%)"},
				{Scale: 600, Hex: "#52525b", RGB: "rgb(82,82,91)", HSL: "hsl(240,5.2%,33.9%)"},
				{Scale: 700, Hex: "#3f3f46", RGB: "rgb(63,63,70)", HSL: "hsl(240,5.3%,26.1%)"},
				{Scale: 800, Hex: "#27272a", RGB: "rgb(39,39,42)", HSL: "hsl(240,3.7%,15.9%)"},
				{Scale: 900, Hex: "#18181b", RGB: "rgb(24,24,27)", HSL: "hsl(240,5.9%,10%)"},
				{Scale: 950, Hex: "#09090b", RGB: "rgb(9,9,11)", HSL: "hsl(240,10%,3.9%)"},
			},
			"neutral": {
				{Scale: 50, Hex: "#fafafa", RGB: "rgb(250,250,250)", HSL: "hsl(0,0%,98%)"},
				{Scale: 100, Hex: "#f5f5f5", RGB: "rgb(245,245,245)", HSL: "hsl(0,0%,96.1%)"},
				{Scale: 200, Hex: "#e5e5e5", RGB: "rgb(229,229,229)", HSL: "hsl(0,0%,89.8%)"},
				{Scale: 300, Hex: "#d4d4d4", RGB: "rgb(212,212,212)", HSL: "hsl(0,0%,83.1%)"},
				{Scale: 400, Hex: "#a3a3a3", RGB: "rgb(163,163,163)", HSL: "hsl(0,0%,63.9%)"},
				{Scale: 500, Hex: "#737373", RGB: "rgb(115,115,115)", HSL: "hsl(0,0%,45.1%)"},
				{Scale: 600, Hex: "#525252", RGB: "rgb(82,82,82)", HSL: "hsl(0,0%,32.2%)"},
				{Scale: 700, Hex: "#404040", RGB: "rgb(64,64,64)", HSL: "hsl(0,0%,25.1%)"},
				{Scale: 800, Hex: "#262626", RGB: "rgb(38,38,38)", HSL: "hsl(0,0%,14.9%)"},
				{Scale: 900, Hex: "#171717", RGB: "rgb(23,23,23)", HSL: "hsl(0,0%,9%)"},
				{Scale: 950, Hex: "#0a0a0a", RGB: "rgb(10,10,10)", HSL: "hsl(0,0%,3.9%)"},
			},
			"stone": {
				{Scale: 50, Hex: "#fafaf9", RGB: "rgb(250,250,249)", HSL: "hsl(60,9.1%,97.8%)"},
				{Scale: 100, Hex: "#f5f5f4", RGB: "rgb(245,245,244)", HSL: "hsl(60,4.8%,95.9%)"},
				{Scale: 200, Hex: "#e7e5e4", RGB: "rgb(231,229,228)", HSL: "hsl(20,5.9%,90%)"},
				{Scale: 300, Hex: "#d6d3d1", RGB: "rgb(214,211,209)", HSL: "hsl(24,5.7%,82.9%)"},
				{Scale: 400, Hex: "#a8a29e", RGB: "rgb(168,162,158)", HSL: "hsl(24,5.4%,63.9%)"},
				{Scale: 500, Hex: "#78716c", RGB: "rgb(120,113,108)", HSL: "hsl(25,5.3%,44.7%)"},
				{Scale: 600, Hex: "#57534e", RGB: "rgb(87,83,78)", HSL: "hsl(33.3,5.5%,32.4%)"},
				{Scale: 700, Hex: "#44403c", RGB: "rgb(68,64,60)", HSL: "hsl(30,6.3%,25.1%)"},
				{Scale: 800, Hex: "#292524", RGB: "rgb(41,37,36)", HSL: "hsl(12,6.5%,15.1%)"},
				{Scale: 900, Hex: "#1c1917", RGB: "rgb(28,25,23)", HSL: "hsl(24,9.8%,10%)"},
				{Scale: 950, Hex: "#0c0a09", RGB: "rgb(12,10,9)", HSL: "hsl(20,14.3%,4.1%)"},
			},
			"red": {
				{Scale: 50, Hex: "#fef2f2", RGB: "rgb(254,242,242)", HSL: "hsl(0,85.7%,97.3%)"},
				{Scale: 100, Hex: "#fee2e2", RGB: "rgb(254,226,226)", HSL: "hsl(0,93.3%,94.1%)"},
				{Scale: 200, Hex: "#fecaca", RGB: "rgb(254,202,202)", HSL: "hsl(0,96.3%,89.4%)"},
				{Scale: 300, Hex: "#fca5a5", RGB: "rgb(252,165,165)", HSL: "hsl(0,93.5%,81.8%)"},
				{Scale: 400, Hex: "#f87171", RGB: "rgb(248,113,113)", HSL: "hsl(0,90.6%,70.8%)"},
				{Scale: 500, Hex: "#ef4444", RGB: "rgb(239,68,68)", HSL: "hsl(0,84.2%,60.2%)"},
				{Scale: 600, Hex: "#dc2626", RGB: "rgb(220,38,38)", HSL: "hsl(0,72.2%,50.6%)"},
				{Scale: 700, Hex: "#b91c1c", RGB: "rgb(185,28,28)", HSL: "hsl(0,73.7%,41.8%)"},
				{Scale: 800, Hex: "#991b1b", RGB: "rgb(153,27,27)", HSL: "hsl(0,70%,35.3%)"},
				{Scale: 900, Hex: "#7f1d1d", RGB: "rgb(127,29,29)", HSL: "hsl(0,62.8%,30.6%)"},
				{Scale: 950, Hex: "#450a0a", RGB: "rgb(69,10,10)", HSL: "hsl(0,74.7%,15.5%)"},
			},
		},
	}

	p.computeChannels()
	return p
}

// computeChannels fills the channel fields from the string forms. A string
// that does not match the expected pattern leaves its channel unset.
func (p *Palette) computeChannels() {
	for name, color := range p.Singles {
		if ch, ok := RGBChannel(color.RGB); ok {
			color.RGBChannel = ch
		}
		if ch, ok := HSLChannel(color.HSL); ok {
			color.HSLChannel = ch
		}
		p.Singles[name] = color
	}

	for _, shades := range p.Families {
		for i := range shades {
			if ch, ok := RGBChannel(shades[i].RGB); ok {
				shades[i].RGBChannel = ch
			}
			if ch, ok := HSLChannel(shades[i].HSL); ok {
				shades[i].HSLChannel = ch
			}
		}
	}
}

// Flatten renders the whole table as one document: families as shade arrays,
// singles as objects, scalars as plain strings.
func (p *Palette) Flatten() map[string]any {
	flat := make(map[string]any, len(p.Scalars)+len(p.Singles)+len(p.Families))
	for name, value := range p.Scalars {
		flat[name] = value
	}
	for name, color := range p.Singles {
		flat[name] = color
	}
	for name, shades := range p.Families {
		flat[name] = shades
	}
	return flat
}

// Channel resolves a token name like "slate-500" or "white" to its HSL
// channel string.
func (p *Palette) Channel(token string) (string, bool) {
	family, scale, scaled := splitToken(token)
	if scaled {
		for _, shade := range p.Families[family] {
			if shade.Scale == scale {
				return shade.HSLChannel, shade.HSLChannel != ""
			}
		}
		return "", false
	}

	if color, ok := p.Singles[token]; ok {
		return color.HSLChannel, color.HSLChannel != ""
	}
	return "", false
}

// FamilyNames returns every palette family, sorted.
func (p *Palette) FamilyNames() []string {
	names := make([]string, 0, len(p.Families))
	for name := range p.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// splitToken separates "slate-500" into family and scale. Tokens without a
// numeric suffix report scaled=false.
func splitToken(token string) (family string, scale int, scaled bool) {
	idx := strings.LastIndex(token, "-")
	if idx < 0 {
		return token, 0, false
	}
	n, err := strconv.Atoi(token[idx+1:])
	if err != nil {
		return token, 0, false
	}
	return token[:idx], n, true
}
