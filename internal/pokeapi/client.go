package pokeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"time"

	// Sprite formats served by the API; PNG in practice, the others as a
	// fallback since the format is determined by content.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"go.uber.org/zap"

	"github.com/pokeget/poke-viewer/internal/model"
)

// DefaultBaseURL is the public PokeAPI endpoint
const DefaultBaseURL = "https://pokeapi.co/api/v2"

// Client fetches Pokemon records and sprites from the PokeAPI
type Client struct {
	baseURL string
	client  *http.Client
	sugar   *zap.SugaredLogger
}

// NewClient creates a client for the given base URL. A zero timeout keeps
// the platform default (no deadline).
func NewClient(baseURL string, timeout time.Duration, sugar *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		sugar:   sugar,
	}
}

// FetchPokemon fetches a single Pokemon record by species name. The species
// is used verbatim as the API path segment; an unrecognized name surfaces
// as an HTTP error. Unknown JSON fields are ignored.
func (c *Client) FetchPokemon(ctx context.Context, species string) (*model.Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, species)
	c.sugar.Infow("fetching pokemon", "species", species, "url", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var pokemon model.Pokemon
	if err := json.Unmarshal(body, &pokemon); err != nil {
		return nil, &Error{Kind: ErrorKindDecode, URL: url, Err: err}
	}
	return &pokemon, nil
}

// FetchSprite downloads the sprite at url and decodes it into a bitmap.
// The image format is detected from the content.
func (c *Client) FetchSprite(ctx context.Context, url string) (image.Image, error) {
	c.sugar.Infow("fetching sprite", "url", url)

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: ErrorKindDecode, URL: url, Err: err}
	}
	return img, nil
}

// get performs a single GET and returns the full response body. No retries.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: ErrorKindNetwork, URL: url, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Kind: ErrorKindNetwork, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &Error{Kind: ErrorKindHTTP, Status: resp.StatusCode, URL: url}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: ErrorKindNetwork, URL: url, Err: err}
	}
	return body, nil
}
