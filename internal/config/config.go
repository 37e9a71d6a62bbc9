package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

// Config holds every path and knob the build pipeline needs. Values come from
// defaults, then an optional YAML file, then environment overrides.
type Config struct {
	// ContentDir is the root holding ui/, blocks/ and examples/ sources.
	ContentDir string `yaml:"content_dir" env:"REGISTRY_CONTENT_DIR" validate:"required"`
	// HooksDir is the root hook files resolve against.
	HooksDir string `yaml:"hooks_dir" env:"REGISTRY_HOOKS_DIR" validate:"required"`
	// OutputDir receives every generated artifact.
	OutputDir string `yaml:"output_dir" env:"REGISTRY_OUTPUT_DIR" validate:"required"`

	IndexFile  string `yaml:"index_file" env:"REGISTRY_INDEX_FILE" validate:"required"`
	BlocksFile string `yaml:"blocks_file" env:"REGISTRY_BLOCKS_FILE" validate:"required"`
	StylesDir  string `yaml:"styles_dir" env:"REGISTRY_STYLES_DIR" validate:"required"`
	ColorsFile string `yaml:"colors_file" env:"REGISTRY_COLORS_FILE" validate:"required"`
	ColorsDir  string `yaml:"colors_dir" env:"REGISTRY_COLORS_DIR" validate:"required"`
	ThemesFile string `yaml:"themes_file" env:"REGISTRY_THEMES_FILE" validate:"required"`
	ThemesDir  string `yaml:"themes_dir" env:"REGISTRY_THEMES_DIR" validate:"required"`

	// ImportAlias prefixes every module path in the generated index files.
	ImportAlias string `yaml:"import_alias" env:"REGISTRY_IMPORT_ALIAS" validate:"required,import_alias"`

	// Workers bounds concurrent file reads during style emission.
	Workers int `yaml:"workers" env:"REGISTRY_WORKERS" validate:"min=1,max=32"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		ContentDir:  "components/content/inspira",
		HooksDir:    "composables",
		OutputDir:   "public/registry",
		IndexFile:   "__registry__/index.ts",
		BlocksFile:  "__registry__/blocks.ts",
		StylesDir:   "styles",
		ColorsFile:  "colors.json",
		ColorsDir:   "colors",
		ThemesFile:  "themes.css",
		ThemesDir:   "themes",
		ImportAlias: "@/",
		Workers:     8,
	}
}

// Load builds the effective configuration. The file path may be empty, in
// which case only defaults and environment variables apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, apperrors.NewReadError(path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, apperrors.NewSchemaError(path, "invalid configuration syntax", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, apperrors.NewSchemaError("", "invalid environment override", err)
	}

	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
