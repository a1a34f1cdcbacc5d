package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"navmenu/internal/lookup"
	"navmenu/internal/validation"
)

// LookupFile represents the structure of the optional lookup overrides file.
// Each present section replaces the built-in table of the same axis.
type LookupFile struct {
	Regions      []lookup.Entry `yaml:"regions"`
	States       []lookup.Entry `yaml:"states"`
	Continents   []lookup.Entry `yaml:"continents"`
	ListingTypes []lookup.Entry `yaml:"listing_types"`
}

// LoadLookupTables returns the built-in tables with any overrides from path applied.
// A missing file is not an error.
func LoadLookupTables(path string) (lookup.Tables, error) {
	tables := lookup.Default()
	if path == "" {
		return tables, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Overrides are optional
			return tables, nil
		}
		return lookup.Tables{}, err
	}

	return ParseLookupTables(data)
}

// ParseLookupTables applies YAML overrides on top of the built-in tables.
func ParseLookupTables(data []byte) (lookup.Tables, error) {
	tables := lookup.Default()

	var file LookupFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return lookup.Tables{}, fmt.Errorf("parse lookup file: %w", err)
	}

	overrides := []struct {
		name    string
		entries []lookup.Entry
		target  *lookup.Table
	}{
		{"regions", file.Regions, &tables.Regions},
		{"states", file.States, &tables.States},
		{"continents", file.Continents, &tables.Continents},
		{"listing_types", file.ListingTypes, &tables.ListingTypes},
	}
	for _, o := range overrides {
		if len(o.entries) == 0 {
			continue
		}
		for _, e := range o.entries {
			if !validation.ValidateCollectionID(e.ID) {
				return lookup.Tables{}, fmt.Errorf("%s: invalid id %q", o.name, e.ID)
			}
			if e.Label == "" {
				return lookup.Tables{}, fmt.Errorf("%s: empty label for id %q", o.name, e.ID)
			}
		}
		t, err := lookup.NewTable(o.entries...)
		if err != nil {
			return lookup.Tables{}, fmt.Errorf("%s: %w", o.name, err)
		}
		*o.target = t
	}

	return tables, nil
}
