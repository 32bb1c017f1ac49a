package weather

import (
	"context"

	"github.com/namefreezers/weather-console/internal/weather/types"
)

// Fetcher retrieves the current weather for a city. Failures are
// *types.FetchError values; match them with errors.Is against the
// sentinels in the types package.
type Fetcher interface {
	FetchCurrent(ctx context.Context, city string) (types.Record, error)
}
