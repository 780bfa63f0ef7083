package stations

import (
	"math"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/JaimeStill/chargepoint/pkg/pagination"
	"github.com/JaimeStill/chargepoint/pkg/query"
)

func TestListQuery(t *testing.T) {
	tests := []struct {
		name      string
		filters   Filters
		wantWhere string
		wantArgs  []any
	}{
		{"no filters", Filters{}, "", nil},
		{"city", Filters{City: "Leeds"}, "WHERE LOWER(s.city) = LOWER($1)", []any{"Leeds"}},
		{"available", Filters{AvailableOnly: true}, "WHERE s.available > $1", []any{0}},
		{"min power", Filters{MinPowerKW: 150}, "WHERE s.power_kw >= $1", []any{150.0}},
		{
			"all",
			Filters{City: "Leeds", AvailableOnly: true, MinPowerKW: 50},
			"WHERE LOWER(s.city) = LOWER($1) AND s.available > $2 AND s.power_kw >= $3",
			[]any{"Leeds", 0, 50.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, args := listQuery(tt.filters)

			if !strings.HasPrefix(q, "SELECT "+projection.Columns()+" FROM public.stations s") {
				t.Errorf("query = %q", q)
			}
			if !strings.HasSuffix(q, "ORDER BY s.city ASC, s.name ASC") {
				t.Errorf("query = %q, want city, name ordering", q)
			}
			if tt.wantWhere == "" && strings.Contains(q, "WHERE") {
				t.Errorf("query = %q, want no WHERE", q)
			}
			if tt.wantWhere != "" && !strings.Contains(q, tt.wantWhere) {
				t.Errorf("query = %q, want %q", q, tt.wantWhere)
			}
			if len(args) != len(tt.wantArgs) || (len(args) > 0 && !reflect.DeepEqual(args, tt.wantArgs)) {
				t.Errorf("args = %v, want %v", args, tt.wantArgs)
			}
		})
	}
}

func TestSearchBuilder(t *testing.T) {
	search := "park"
	page := pagination.PageRequest{
		Page:     2,
		PageSize: 10,
		Search:   &search,
		Sort:     []query.SortField{{Field: "power_kw", Descending: true}, {Field: "secret"}},
	}

	q, args := searchBuilder(Filters{City: "York"}, page).BuildPage(page.PageSize, page.Offset())

	wantWhere := `WHERE LOWER(s.city) = LOWER($1) AND (s.name ILIKE $2 ESCAPE '\' OR s.address ILIKE $3 ESCAPE '\' OR s.city ILIKE $4 ESCAPE '\')`
	if !strings.Contains(q, wantWhere) {
		t.Errorf("query = %q, want %q", q, wantWhere)
	}
	if !strings.HasSuffix(q, "ORDER BY s.power_kw DESC LIMIT 10 OFFSET 10") {
		t.Errorf("query = %q, want power ordering and page window", q)
	}

	wantArgs := []any{"York", "%park%", "%park%", "%park%"}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}
}

func TestListQuery_MinPowerFromQuery(t *testing.T) {
	q, args := listQuery(FiltersFromQuery(url.Values{"min_power": {"150"}}))

	if !strings.Contains(q, "WHERE s.power_kw >= $1") {
		t.Errorf("query = %q, want power floor", q)
	}
	if !reflect.DeepEqual(args, []any{150.0}) {
		t.Errorf("args = %v, want [150]", args)
	}
}

func TestSearchBuilder_HugePage(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}
	page := pagination.PageRequestFromQuery(url.Values{
		"page":      {"9223372036854775807"},
		"page_size": {"20"},
	}, cfg)

	q, _ := searchBuilder(Filters{}, page).BuildPage(page.PageSize, page.Offset())

	if strings.Contains(q, "OFFSET -") {
		t.Errorf("query = %q, want non-negative offset", q)
	}
	if page.Offset() > math.MaxInt-page.PageSize {
		t.Errorf("Offset() = %d leaves no room for the page", page.Offset())
	}
}
