package registry

import (
	"encoding/json"
	"path"

	"gopkg.in/yaml.v3"
)

// ItemType tags a registry item with its kind.
type ItemType string

const (
	TypeUI      ItemType = "ui"
	TypeBlock   ItemType = "block"
	TypeExample ItemType = "example"
	TypeHook    ItemType = "hook"
)

// Valid reports whether the type is one of the fixed tags.
func (t ItemType) Valid() bool {
	switch t {
	case TypeUI, TypeBlock, TypeExample, TypeHook:
		return true
	}
	return false
}

// Dir returns the conventional source directory for the type, used when an
// item carries no file references.
func (t ItemType) Dir() string {
	switch t {
	case TypeBlock:
		return "blocks"
	case TypeExample:
		return "examples"
	case TypeHook:
		return "hooks"
	default:
		return "ui"
	}
}

// String returns the string representation of the type.
func (t ItemType) String() string {
	return string(t)
}

// Item describes one registry entry. Items are read-only snapshots built once
// per run; only their rendered projections persist.
type Item struct {
	Name         string          `json:"name" yaml:"name"`
	Type         ItemType        `json:"type" yaml:"type"`
	Description  string          `json:"description,omitempty" yaml:"description,omitempty"`
	Category     string          `json:"category,omitempty" yaml:"category,omitempty"`
	SubCategory  string          `json:"subCategory,omitempty" yaml:"sub_category,omitempty"`
	Files        []FileReference `json:"files,omitempty" yaml:"files,omitempty"`
	Dependencies []string        `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

// ComponentPath resolves the item's primary source path: the first file's
// path when files are present, else the conventional type/name path.
func (i Item) ComponentPath() string {
	if len(i.Files) > 0 {
		return i.Files[0].Path
	}
	return path.Join(i.Type.Dir(), i.Name)
}

// FileReference points at one source file owned by exactly one item. It
// decodes from either a bare relative path or a {path, type, target} record.
type FileReference struct {
	Path   string `json:"path"`
	Type   string `json:"type,omitempty"`
	Target string `json:"target,omitempty"`
}

// UnmarshalJSON accepts both the bare-string and the structured form.
func (f *FileReference) UnmarshalJSON(data []byte) error {
	var bare string
	if err := json.Unmarshal(data, &bare); err == nil {
		*f = FileReference{Path: bare}
		return nil
	}

	type structured FileReference
	var s structured
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = FileReference(s)
	return nil
}

// UnmarshalYAML mirrors the JSON decoding for YAML sources.
func (f *FileReference) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*f = FileReference{Path: value.Value}
		return nil
	}

	type structured FileReference
	var s structured
	if err := value.Decode(&s); err != nil {
		return err
	}
	*f = FileReference(s)
	return nil
}

// ItemMap builds a lookup table for items by name.
func ItemMap(items []Item) map[string]Item {
	out := make(map[string]Item, len(items))
	for _, item := range items {
		out[item.Name] = item
	}
	return out
}
