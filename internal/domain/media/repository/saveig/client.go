// Package saveig contains the Instagram metadata API client
package saveig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Conte777/MediaGrab/config"
	"github.com/Conte777/MediaGrab/internal/domain/media/deps"
	"github.com/Conte777/MediaGrab/internal/domain/media/entities"
	mediaerrors "github.com/Conte777/MediaGrab/internal/domain/media/errors"
)

const (
	statusOK     = "ok"
	maxBodyBytes = 5 * 1024 * 1024
	contentType  = "application/x-www-form-urlencoded; charset=UTF-8"
	searchMode   = "home"
)

type searchResponse struct {
	Status string                 `json:"status"`
	Medias []entities.RemoteMedia `json:"medias"`
}

// Client queries the saveig search endpoint
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new metadata client
func NewClient(cfg *config.SaveIGConfig, logger zerolog.Logger) deps.MediaFetcher {
	return &Client{
		apiURL: cfg.APIURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger.With().Str("component", "saveig_client").Logger(),
	}
}

// Fetch returns the media descriptors of an Instagram post.
// Every failure wraps ErrRemoteMediaUnavailable.
func (c *Client) Fetch(ctx context.Context, postURL string) ([]entities.RemoteMedia, error) {
	form := url.Values{}
	form.Set("q", postURL)
	form.Set("vt", searchMode)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", mediaerrors.ErrRemoteMediaUnavailable, err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", mediaerrors.ErrRemoteMediaUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: api returned status %d", mediaerrors.ErrRemoteMediaUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", mediaerrors.ErrRemoteMediaUnavailable, err)
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", mediaerrors.ErrRemoteMediaUnavailable, err)
	}

	if result.Status != statusOK {
		return nil, fmt.Errorf("%w: api status %q", mediaerrors.ErrRemoteMediaUnavailable, result.Status)
	}

	if len(result.Medias) == 0 {
		return nil, fmt.Errorf("%w: no media in response", mediaerrors.ErrRemoteMediaUnavailable)
	}

	c.logger.Debug().
		Int("media_count", len(result.Medias)).
		Msg("Fetched media descriptors")

	return result.Medias, nil
}
