package stations

import (
	"context"

	"github.com/google/uuid"

	"github.com/JaimeStill/chargepoint/pkg/pagination"
)

// System defines the interface for station retrieval.
type System interface {
	List(ctx context.Context, filters Filters) ([]Station, error)
	Search(ctx context.Context, filters Filters, page pagination.PageRequest) (*pagination.PageResult[Station], error)
	Find(ctx context.Context, id uuid.UUID) (*Station, error)
}
