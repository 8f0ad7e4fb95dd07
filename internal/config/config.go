package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds corrnet configuration.
type Config struct {
	Data   DataConfig   `toml:"data"`
	Graph  GraphConfig  `toml:"graph"`
	Layout LayoutConfig `toml:"layout"`
	Render RenderConfig `toml:"render"`
}

// DataConfig controls dataset loading and filtering.
type DataConfig struct {
	Input        string  `toml:"input"`
	GeneColumn   string  `toml:"gene_column"`
	TissueColumn string  `toml:"tissue_column"`
	ScoreColumn  string  `toml:"score_column"`
	Threshold    float64 `toml:"threshold"`
}

// GraphConfig controls graph construction.
type GraphConfig struct {
	Central           string `toml:"central"`
	MaxGenesPerTissue int    `toml:"max_genes_per_tissue"`
}

// LayoutConfig controls node placement.
type LayoutConfig struct {
	Radius float64 `toml:"radius"`
	Seed   int64   `toml:"seed"` // 0 = derive from current time
}

// RenderConfig controls HTML output.
type RenderConfig struct {
	Output string `toml:"output"`
	Title  string `toml:"title"` // empty = generated from central + threshold
	Open   bool   `toml:"open"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Input:        "data/normal.csv",
			GeneColumn:   "Gene Symbol",
			TissueColumn: "Tumor",
			ScoreColumn:  "PCC",
			Threshold:    0.8,
		},
		Graph: GraphConfig{
			Central:           "GCH1",
			MaxGenesPerTissue: 150,
		},
		Layout: LayoutConfig{
			Radius: 400,
			Seed:   0,
		},
		Render: RenderConfig{
			Output: "network_visualization.html",
			Open:   false,
		},
	}
}

// ConfigDir returns the corrnet config directory path.
func ConfigDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "corrnet")
}

func configPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, falling back to defaults if it doesn't exist.
func Load() *Config {
	cfg := Default()
	path := configPath()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = toml.Unmarshal(data, cfg)
	return cfg
}

// Save writes the config to disk.
func Save(cfg *Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
