package registry

// StaticItems returns the hand-maintained part of the registry. The content
// crawler supplements this list with discovered example items.
func StaticItems() []Item {
	return []Item{
		{
			Name:        "button",
			Type:        TypeUI,
			Description: "A clickable button with variant and size presets.",
			Category:    "buttons",
			Files: []FileReference{
				{Path: "ui/button/Button.vue", Type: "registry:ui"},
			},
		},
		{
			Name:        "card",
			Type:        TypeUI,
			Description: "A content card with header, body and footer slots.",
			Category:    "cards",
			Files: []FileReference{
				{Path: "ui/card/Card.vue", Type: "registry:ui"},
				{Path: "ui/card/CardHeader.vue", Type: "registry:ui"},
			},
		},
		{
			Name:         "spotlight",
			Type:         TypeUI,
			Description:  "A radial spotlight that follows the pointer.",
			Category:     "backgrounds",
			SubCategory:  "interactive",
			Dependencies: []string{"@vueuse/core"},
			Files: []FileReference{
				{Path: "ui/spotlight/Spotlight.vue", Type: "registry:ui"},
			},
		},
		{
			Name:        "hero-section",
			Type:        TypeBlock,
			Description: "A landing page hero with headline and call to action.",
			Category:    "marketing",
			Files: []FileReference{
				{Path: "blocks/hero-section/HeroSection.vue", Type: "registry:block"},
				{Path: "blocks/hero-section/HeroContent.vue", Type: "registry:block"},
			},
		},
		{
			Name:         "use-mouse",
			Type:         TypeHook,
			Description:  "Tracks the pointer position as reactive state.",
			Dependencies: []string{"vue"},
			Files: []FileReference{
				{Path: "use-mouse.ts", Type: "registry:hook"},
			},
		},
	}
}
