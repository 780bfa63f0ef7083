package stations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/JaimeStill/chargepoint/pkg/repository"
)

// SeedStation is the JSON shape of a station in seed files.
type SeedStation struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Connectors int     `json:"connectors"`
	PowerKW    float64 `json:"power_kw"`
	Available  int     `json:"available"`
}

// Validate checks the seed record against the table constraints.
func (s SeedStation) Validate() error {
	switch {
	case s.Name == "" || s.City == "":
		return fmt.Errorf("station name and city are required")
	case s.Connectors <= 0:
		return fmt.Errorf("station %s: connectors must be positive", s.Name)
	case s.PowerKW <= 0:
		return fmt.Errorf("station %s: power_kw must be positive", s.Name)
	case s.Available < 0 || s.Available > s.Connectors:
		return fmt.Errorf("station %s: available must be between 0 and connectors", s.Name)
	}
	return nil
}

// Save inserts or updates the station identified by name and city.
func Save(ctx context.Context, tx *sql.Tx, s SeedStation) error {
	if err := s.Validate(); err != nil {
		return err
	}

	q := `
		INSERT INTO stations (name, address, city, connectors, power_kw, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name, city) DO UPDATE
		SET address = EXCLUDED.address,
			connectors = EXCLUDED.connectors,
			power_kw = EXCLUDED.power_kw,
			available = EXCLUDED.available,
			updated_at = NOW()`

	return repository.ExecExpectOne(ctx, tx, q, s.Name, s.Address, s.City, s.Connectors, s.PowerKW, s.Available)
}
