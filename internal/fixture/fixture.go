// Package fixture holds the sample records written by the seeder. The
// default table is embedded; a YAML file with the same shape can replace it.
package fixture

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"evseed/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Set is a complete fixture table. Chargers are templates created once per
// station.
type Set struct {
	Stations     []model.Station     `yaml:"stations"`
	Chargers     []model.Charger     `yaml:"chargers"`
	Users        []model.User        `yaml:"users"`
	Transactions []model.Transaction `yaml:"transactions"`
}

// Default returns the embedded fixture table.
func Default() (*Set, error) {
	return parse(defaultFixtures)
}

// Load reads a fixture table from a YAML file.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read file: %w", err)
	}
	return parse(data)
}

// FromConfig returns the table at path, or the embedded one when path is empty.
func FromConfig(path string) (*Set, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

func parse(data []byte) (*Set, error) {
	var s Set
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("fixture: decode yaml: %w", err)
	}
	if len(s.Stations) == 0 && len(s.Users) == 0 && len(s.Transactions) == 0 {
		return nil, errors.New("fixture: table is empty")
	}
	return &s, nil
}

// ChargersFor builds the chargers of one station. Each charger carries the
// store-assigned station id and a copy of the station's price at this moment.
func (s *Set) ChargersFor(stationID string, station model.Station) []model.Charger {
	chargers := make([]model.Charger, 0, len(s.Chargers))
	for _, tmpl := range s.Chargers {
		c := tmpl
		c.StationID = stationID
		c.PricePerKWh = station.PricePerKWh
		chargers = append(chargers, c)
	}
	return chargers
}

// ExpectedDocuments is the number of documents a full run creates.
func (s *Set) ExpectedDocuments() int {
	return len(s.Stations)*(1+len(s.Chargers)) + len(s.Users) + len(s.Transactions)
}
