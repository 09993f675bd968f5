package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/mmynk/fintrack/internal/ledger"
	"github.com/mmynk/fintrack/internal/models"
)

//go:embed seeds.yaml
var defaultSeeds []byte

type seedFile struct {
	Categories []seedCategory `yaml:"categories"`
}

type seedCategory struct {
	Name  string `yaml:"name"`
	Type  string `yaml:"type"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// SeedCategories returns the categories created for new users, read from
// c.SeedFile or the built-in list.
func (c *Config) SeedCategories() ([]ledger.CategoryTemplate, error) {
	data, source := defaultSeeds, "built-in seeds"
	if c.SeedFile != "" {
		var err error
		data, err = os.ReadFile(c.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("unable to read %s: %w", c.SeedFile, err)
		}
		source = c.SeedFile
	}
	return parseSeeds(data, source)
}

func parseSeeds(data []byte, source string) ([]ledger.CategoryTemplate, error) {
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", source, err)
	}

	seeds := make([]ledger.CategoryTemplate, len(file.Categories))
	for i, c := range file.Categories {
		if c.Name == "" {
			return nil, fmt.Errorf("seed category at index %d missing name", i)
		}
		typ := models.TransactionType(c.Type)
		if !typ.Valid() {
			return nil, fmt.Errorf("seed category %q has invalid type %q", c.Name, c.Type)
		}
		seeds[i] = ledger.CategoryTemplate{Name: c.Name, Type: typ, Icon: c.Icon, Color: c.Color}
	}
	return seeds, nil
}
