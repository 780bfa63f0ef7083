// Package stations provides read access to the charging station directory.
package stations

import (
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/pkg/query"
)

// Station is a charging location listed on the stations view.
type Station struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	Connectors int       `json:"connectors"`
	PowerKW    float64   `json:"power_kw"`
	Available  int       `json:"available"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasCapacity reports whether at least one connector is free.
func (s Station) HasCapacity() bool {
	return s.Available > 0
}

// Filters narrows a station listing. A zero MinPowerKW means no power floor.
type Filters struct {
	City          string
	AvailableOnly bool
	MinPowerKW    float64
}

// FiltersFromQuery reads filters from url query values.
// A min_power that is malformed, non-finite or not positive is ignored.
func FiltersFromQuery(values url.Values) Filters {
	return Filters{
		City:          strings.TrimSpace(values.Get("city")),
		AvailableOnly: values.Get("available") == "true",
		MinPowerKW:    parseMinPower(values.Get("min_power")),
	}
}

func parseMinPower(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Apply adds the filter conditions to b.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereEqualsFold("city", f.City)
	if f.AvailableOnly {
		b.WhereGreater("available", 0)
	}
	if f.MinPowerKW > 0 {
		b.WhereAtLeast("power_kw", f.MinPowerKW)
	}
	return b
}
