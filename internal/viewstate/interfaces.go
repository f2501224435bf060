package viewstate

import (
	"context"
	"image"

	"github.com/pokeget/poke-viewer/internal/model"
)

// Fetcher defines the data source for the controller.
type Fetcher interface {
	FetchPokemon(ctx context.Context, species string) (*model.Pokemon, error)
	FetchSprite(ctx context.Context, url string) (image.Image, error)
}
