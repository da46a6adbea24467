package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"bistro/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedFile = `
[[stations]]
name = "Grill Station"

[[stations]]
name = "Pasta Station"

  [[stations.stock]]
  name = "Spaghetti"
  quantity = 2
  unit_price = 1.5

[[recipes]]
name = "Spaghetti Bolognese"
prep_minutes = 20
price = 12.99
cuisine = "Italian"
stations = ["Pasta Station"]

  [[recipes.ingredients]]
  name = "Spaghetti"
  quantity = 1
  unit_price = 1.5

  [[recipes.ingredients]]
  name = "Tomato Sauce"
  quantity = 1
  unit_price = 0.75

[[backup]]
name = "Spaghetti"
quantity = 5
unit_price = 1.5

[[orders]]
recipe = "Spaghetti Bolognese"

[[orders]]
recipe = "Spaghetti Bolognese"
exclusions = ["Tomato Sauce"]
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(seedFile))
	require.NoError(t, err)

	require.Len(t, cfg.Stations, 2)
	assert.Equal(t, "Grill Station", cfg.Stations[0].Name)
	assert.Empty(t, cfg.Stations[0].Stock)
	assert.Equal(t, "Pasta Station", cfg.Stations[1].Name)
	require.Len(t, cfg.Stations[1].Stock, 1)
	assert.Equal(t, "Spaghetti", cfg.Stations[1].Stock[0].Name)
	assert.Equal(t, 2, cfg.Stations[1].Stock[0].Quantity)
	assert.InDelta(t, 1.5, cfg.Stations[1].Stock[0].UnitPrice, 0.001)

	require.Len(t, cfg.Recipes, 1)
	rcp := cfg.Recipes[0]
	assert.Equal(t, "Spaghetti Bolognese", rcp.Name)
	assert.Equal(t, 20, rcp.PrepMinutes)
	assert.InDelta(t, 12.99, rcp.Price, 0.001)
	assert.Equal(t, "Italian", rcp.Cuisine)
	assert.Equal(t, []string{"Pasta Station"}, rcp.Stations)
	require.Len(t, rcp.Ingredients, 2)
	assert.Equal(t, "Tomato Sauce", rcp.Ingredients[1].Name)
	assert.Equal(t, 1, rcp.Ingredients[1].Quantity)

	require.Len(t, cfg.Backup, 1)
	assert.Equal(t, 5, cfg.Backup[0].Quantity)

	require.Len(t, cfg.Orders, 2)
	assert.Empty(t, cfg.Orders[0].Exclusions)
	assert.Equal(t, []string{"Tomato Sauce"}, cfg.Orders[1].Exclusions)
}

func TestParse_InvalidTOML(t *testing.T) {
	_, err := config.Parse([]byte("[[stations]\nname ="))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchen.toml")
	require.NoError(t, os.WriteFile(path, []byte(seedFile), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Stations, 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}
