package stations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/pkg/pagination"
	"github.com/JaimeStill/chargepoint/pkg/query"
	"github.com/JaimeStill/chargepoint/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a PostgreSQL-backed stations System.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "stations"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, filters Filters) ([]Station, error) {
	q, args := listQuery(filters)

	stations, err := repository.QueryMany(ctx, r.db, q, args, scanStation)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	return stations, nil
}

func (r *repo) Search(ctx context.Context, filters Filters, page pagination.PageRequest) (*pagination.PageResult[Station], error) {
	page.Normalize(r.pagination)

	qb := searchBuilder(filters, page)

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count stations: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.PageSize, page.Offset())
	stations, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanStation)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}

	result := pagination.NewPageResult(stations, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Station, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildSingle("id", id)

	s, err := repository.QueryOne(ctx, r.db, q, args, scanStation)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &s, nil
}

func listQuery(f Filters) (string, []any) {
	return f.Apply(query.NewBuilder(projection, defaultSort)).BuildList()
}

func searchBuilder(f Filters, page pagination.PageRequest) *query.Builder {
	return f.Apply(query.NewBuilder(projection, defaultSort)).
		WhereSearch(page.Search, "name", "address", "city").
		OrderBy(page.Sort...)
}

func scanStation(s repository.Scanner) (Station, error) {
	var st Station
	err := s.Scan(&st.ID, &st.Name, &st.Address, &st.City, &st.Connectors, &st.PowerKW, &st.Available, &st.UpdatedAt)
	return st, err
}
