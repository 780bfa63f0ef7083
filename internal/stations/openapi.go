package stations

import "github.com/JaimeStill/chargepoint/pkg/openapi"

type spec struct {
	List *openapi.Operation
	Find *openapi.Operation
}

// Spec contains OpenAPI operation definitions for the station endpoints.
var Spec = spec{
	List: &openapi.Operation{
		OperationID: "listStations",
		Summary:     "List stations",
		Description: "Returns a page of charging stations with optional filtering, search and sorting",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)"),
			openapi.QueryParam("page_size", "integer", "Results per page"),
			openapi.QueryParam("search", "string", "Matches name, address or city"),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending"),
			openapi.QueryParam("city", "string", "Exact city, case-insensitive"),
			openapi.QueryParam("available", "boolean", "Only stations with a free connector"),
			openapi.QueryParam("min_power", "number", "Minimum charging power in kW, inclusive"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Page of stations", "StationPage"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Find: &openapi.Operation{
		OperationID: "findStation",
		Summary:     "Find station by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Station UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Station", "Station"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by Spec.
func Schemas() map[string]*openapi.Schema {
	station := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"id":         {Type: "string", Format: "uuid"},
			"name":       {Type: "string", Example: "Harbor Point"},
			"address":    {Type: "string"},
			"city":       {Type: "string", Example: "Portsmouth"},
			"connectors": {Type: "integer"},
			"power_kw":   {Type: "number", Format: "double"},
			"available":  {Type: "integer", Description: "Free connectors"},
			"updated_at": {Type: "string", Format: "date-time"},
		},
		Required: []string{"id", "name", "city", "connectors", "power_kw", "available"},
	}

	page := &openapi.Schema{
		Type: "object",
		Properties: map[string]*openapi.Schema{
			"data":        {Type: "array", Items: openapi.SchemaRef("Station")},
			"total":       {Type: "integer"},
			"page":        {Type: "integer"},
			"page_size":   {Type: "integer"},
			"total_pages": {Type: "integer"},
		},
		Required: []string{"data", "total", "page", "page_size", "total_pages"},
	}

	return map[string]*openapi.Schema{
		"Station":     station,
		"StationPage": page,
	}
}
