package stations

import "github.com/JaimeStill/chargepoint/pkg/query"

const defaultSort = "city,name"

var projection = query.NewProjectionMap("public", "stations", "s").
	Project("id", "id").
	Project("name", "name").
	Project("address", "address").
	Project("city", "city").
	Project("connectors", "connectors").
	Project("power_kw", "power_kw").
	Project("available", "available").
	Project("updated_at", "updated_at")
