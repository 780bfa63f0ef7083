package api

import "github.com/JaimeStill/chargepoint/internal/stations"

// Domain holds the domain systems exposed through the API.
type Domain struct {
	Stations stations.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Stations: stations.New(
			runtime.Database.Connection(),
			runtime.Logger,
			runtime.Pagination,
		),
	}
}
