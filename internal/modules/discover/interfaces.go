package discover

import (
	"context"

	"tripmark/internal/gateway/mistral"
)

// Generator produces state and place lists from the external
// text-generation service. Both calls degrade to empty results instead
// of failing; see the mistral package.
type Generator interface {
	ListStates(ctx context.Context) mistral.StatesResult
	ListPlaces(ctx context.Context, state, category string) mistral.PlacesResult
}
