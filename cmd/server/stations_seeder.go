package main

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/chargepoint/internal/stations"
)

//go:embed seeds/*.json
var seedFiles embed.FS

func init() {
	registerSeeder(&StationSeeder{})
}

// StationSeedData represents the JSON structure for station seed files.
type StationSeedData struct {
	Stations []stations.SeedStation `json:"stations"`
}

// StationSeeder loads charging stations from an embedded file or an external path.
type StationSeeder struct {
	file string
}

func (s *StationSeeder) Name() string {
	return "stations"
}

func (s *StationSeeder) Description() string {
	return "Seeds the charging station directory"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *StationSeeder) SetFile(path string) {
	s.file = path
}

// Seed saves every station with insert-or-update semantics.
func (s *StationSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.load()
	if err != nil {
		return err
	}

	for _, st := range data.Stations {
		if err := stations.Save(ctx, tx, st); err != nil {
			return fmt.Errorf("save station %s (%s): %w", st.Name, st.City, err)
		}
	}
	return nil
}

func (s *StationSeeder) load() (*StationSeedData, error) {
	var (
		content []byte
		err     error
	)

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/stations.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data StationSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}
