package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestComponentPath(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "first file wins when files are present",
			item: Item{
				Name: "button",
				Type: TypeUI,
				Files: []FileReference{
					{Path: "ui/button/Button.vue"},
					{Path: "ui/button/ButtonGroup.vue"},
				},
			},
			want: "ui/button/Button.vue",
		},
		{
			name: "conventional path when files are absent",
			item: Item{Name: "marquee", Type: TypeUI},
			want: "ui/marquee",
		},
		{
			name: "block convention uses blocks dir",
			item: Item{Name: "pricing", Type: TypeBlock},
			want: "blocks/pricing",
		},
		{
			name: "hook convention uses hooks dir",
			item: Item{Name: "use-idle", Type: TypeHook},
			want: "hooks/use-idle",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.item.ComponentPath())
		})
	}
}

func TestFileReferenceUnmarshalJSON(t *testing.T) {
	t.Parallel()

	var bare FileReference
	require.NoError(t, json.Unmarshal([]byte(`"ui/button/Button.vue"`), &bare))
	require.Equal(t, FileReference{Path: "ui/button/Button.vue"}, bare)

	var structured FileReference
	data := `{"path":"ui/card/Card.vue","type":"registry:ui","target":"components/Card.vue"}`
	require.NoError(t, json.Unmarshal([]byte(data), &structured))
	require.Equal(t, "ui/card/Card.vue", structured.Path)
	require.Equal(t, "registry:ui", structured.Type)
	require.Equal(t, "components/Card.vue", structured.Target)
}

func TestFileReferenceUnmarshalYAML(t *testing.T) {
	t.Parallel()

	var item Item
	doc := `name: card
type: ui
files:
  - ui/card/Card.vue
  - path: ui/card/CardHeader.vue
    type: registry:ui
`
	require.NoError(t, yaml.Unmarshal([]byte(doc), &item))
	require.Len(t, item.Files, 2)
	require.Equal(t, FileReference{Path: "ui/card/Card.vue"}, item.Files[0])
	require.Equal(t, "registry:ui", item.Files[1].Type)
}

func TestItemTypeValid(t *testing.T) {
	t.Parallel()

	for _, typ := range []ItemType{TypeUI, TypeBlock, TypeExample, TypeHook} {
		require.True(t, typ.Valid())
	}
	require.False(t, ItemType("widget").Valid())
}

func TestItemMap(t *testing.T) {
	t.Parallel()

	items := []Item{{Name: "a", Type: TypeUI}, {Name: "b", Type: TypeBlock}}
	m := ItemMap(items)
	require.Len(t, m, 2)
	require.Equal(t, TypeBlock, m["b"].Type)
}
