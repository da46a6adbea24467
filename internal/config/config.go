// Package config handles loading and parsing kitchen.toml seed files.
//
// A seed file describes the kitchen's opening state: the stations in
// fallback order, the recipes and where they are assigned, the backup
// ingredient pool, and any orders already waiting when the service starts.
// The composition root replays the file through the regular command
// handlers, so seeded state obeys the same rules as state created over
// the API.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Kitchen is the top-level seed configuration.
type Kitchen struct {
	Stations []Station `toml:"stations"`
	Recipes  []Recipe  `toml:"recipes"`
	Backup   []Lot     `toml:"backup,omitempty"`
	Orders   []Order   `toml:"orders,omitempty"`
}

// Station defines one kitchen station. Stations are registered in file
// order, which becomes the fulfillment fallback order.
type Station struct {
	Name  string `toml:"name"`
	Stock []Lot  `toml:"stock,omitempty"`
}

// Recipe defines a dish and names the stations it is assigned to.
type Recipe struct {
	Name        string        `toml:"name"`
	Ingredients []Requirement `toml:"ingredients"`
	PrepMinutes int           `toml:"prep_minutes"`
	Price       float64       `toml:"price"`
	Cuisine     string        `toml:"cuisine"`
	Stations    []string      `toml:"stations"`
}

// Requirement is one ingredient line of a recipe.
type Requirement struct {
	Name      string  `toml:"name"`
	Quantity  int     `toml:"quantity"`
	UnitPrice float64 `toml:"unit_price,omitempty"`
}

// Lot is a quantity of one ingredient held in stock.
type Lot struct {
	Name      string  `toml:"name"`
	Quantity  int     `toml:"quantity"`
	UnitPrice float64 `toml:"unit_price,omitempty"`
}

// Order queues one ticket at startup. Exclusions name ingredients to
// strip from the ticket's copy of the recipe.
type Order struct {
	Recipe     string   `toml:"recipe"`
	Exclusions []string `toml:"exclusions,omitempty"`
}

// Load reads and parses a kitchen.toml file at the given path.
func Load(path string) (*Kitchen, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes TOML data into a Kitchen config.
func Parse(data []byte) (*Kitchen, error) {
	var cfg Kitchen
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
