// Package cms fetches the menu source collections from the Webflow CMS.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"resty.dev/v3"

	"navmenu/internal/metrics"
	"navmenu/internal/models"
	"navmenu/internal/validation"
)

// Collection names used in logs and metrics.
const (
	IndianDestinations = "indian_destinations"
	IndianExperiences  = "indian_experiences"
	WorldDestinations  = "world_destinations"
)

var (
	// ErrUpstreamStatus is returned when the CMS answers with a non-2xx status.
	ErrUpstreamStatus = errors.New("cms returned error status")
	// ErrInvalidCollectionID is returned for ids that are not CMS identifiers.
	ErrInvalidCollectionID = errors.New("invalid collection id")
)

// CollectionIDs identifies the three source collections.
type CollectionIDs struct {
	IndianDestinations string
	IndianExperiences  string
	WorldDestinations  string
}

// DefaultCollectionIDs are the collections of the production site.
var DefaultCollectionIDs = CollectionIDs{
	IndianDestinations: "6838717a173af359c44a98a7",
	IndianExperiences:  "620b8a0b09a316e5cedde038",
	WorldDestinations:  "620b8a0b09a3167a92dde043",
}

// Options configures a Client.
type Options struct {
	BaseURL     string
	Token       string
	Timeout     time.Duration
	LogCurl     bool
	Collections CollectionIDs
}

// Client reads collection listings from the CMS.
type Client struct {
	http    *resty.Client
	baseURL string
	ids     CollectionIDs
	logCurl bool
}

// NewClient creates a CMS client. Every request carries the bearer token.
func NewClient(opts Options) (*Client, error) {
	if valid, msg := validation.ValidateURL(opts.BaseURL); !valid {
		return nil, fmt.Errorf("cms base url: %s", msg)
	}

	ids := opts.Collections
	if ids == (CollectionIDs{}) {
		ids = DefaultCollectionIDs
	}
	for _, id := range []string{ids.IndianDestinations, ids.IndianExperiences, ids.WorldDestinations} {
		if !validation.ValidateCollectionID(id) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCollectionID, id)
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	if opts.Token == "" {
		slog.Warn("cms token is empty, upstream requests will likely be rejected")
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(opts.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:    client,
		baseURL: opts.BaseURL,
		ids:     ids,
		logCurl: opts.LogCurl,
	}, nil
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// FetchCollections fetches the three collections concurrently.
// It never fails as a whole: a source that cannot be fetched is left nil.
func (c *Client) FetchCollections(ctx context.Context) models.Collections {
	var (
		out models.Collections
		g   errgroup.Group
	)

	g.Go(func() error {
		out.IndianDestinations = fetchList[models.DestinationList](ctx, c, IndianDestinations, c.ids.IndianDestinations)
		return nil
	})
	g.Go(func() error {
		out.IndianExperiences = fetchList[models.WorldList](ctx, c, IndianExperiences, c.ids.IndianExperiences)
		return nil
	})
	g.Go(func() error {
		out.WorldDestinations = fetchList[models.WorldList](ctx, c, WorldDestinations, c.ids.WorldDestinations)
		return nil
	})

	// Branches record their own outcome and never return an error.
	_ = g.Wait()
	return out
}

// fetchList fetches one collection, returning nil on any failure.
func fetchList[T any](ctx context.Context, c *Client, name, collectionID string) *T {
	start := time.Now()
	list, err := getItems[T](ctx, c, collectionID)
	metrics.RecordFetch(name, err, time.Since(start))
	if err != nil {
		slog.Error("cms fetch failed", "collection", name, "collection_id", collectionID, "error", err)
		return nil
	}
	return list
}

func getItems[T any](ctx context.Context, c *Client, collectionID string) (*T, error) {
	path := "/collections/" + collectionID + "/items"
	if c.logCurl {
		slog.Info("cms request", "curl", curlCommand(c.baseURL+path))
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("fetch collection %s: %w", collectionID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode(), resp.Status())
	}

	var list T
	if err := json.Unmarshal([]byte(resp.String()), &list); err != nil {
		return nil, fmt.Errorf("decode collection %s: %w", collectionID, err)
	}
	return &list, nil
}

// curlCommand renders an equivalent curl invocation with the token masked.
func curlCommand(url string) string {
	return fmt.Sprintf(`curl -X GET "%s" -H "Authorization: Bearer ***" -H "Content-Type: application/json"`, url)
}
