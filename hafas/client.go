package hafas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a HAFAS REST API client. It is stateless and safe for
// concurrent use; construct one per process and share it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient creates a new client for the given API base URL.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// LocationsOptions bounds a station search.
type LocationsOptions struct {
	Results int
}

// BoardOptions selects the time window of a departure/arrival board.
type BoardOptions struct {
	When            *time.Time
	DurationMinutes int
}

// JourneysOptions tunes a journey search. MaxTransfers below zero leaves
// the transfer count to the provider.
type JourneysOptions struct {
	Departure    *time.Time
	MaxTransfers int
	Results      int
	Stopovers    bool
	Products     []string
}

// allProducts is the full product-class set of the DB profile. Products
// not requested in JourneysOptions are explicitly disabled.
var allProducts = []string{
	"nationalExpress", "national", "regionalExpress", "regional",
	"suburban", "subway", "tram", "bus", "ferry", "taxi",
}

// SearchStations queries /locations for entities matching the query.
func (c *Client) SearchStations(ctx context.Context, query string, opts LocationsOptions) ([]Location, error) {
	q := url.Values{}
	q.Set("query", query)
	if opts.Results > 0 {
		q.Set("results", strconv.Itoa(opts.Results))
	}
	var out []Location
	if err := c.get(ctx, "/locations", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Departures fetches the departure board for a station.
func (c *Client) Departures(ctx context.Context, stationID string, opts BoardOptions) (*Board, error) {
	return c.board(ctx, stationID, "departures", opts)
}

// Arrivals fetches the arrival board for a station.
func (c *Client) Arrivals(ctx context.Context, stationID string, opts BoardOptions) (*Board, error) {
	return c.board(ctx, stationID, "arrivals", opts)
}

func (c *Client) board(ctx context.Context, stationID, kind string, opts BoardOptions) (*Board, error) {
	q := url.Values{}
	if opts.When != nil {
		q.Set("when", opts.When.Format(time.RFC3339))
	}
	if opts.DurationMinutes > 0 {
		q.Set("duration", strconv.Itoa(opts.DurationMinutes))
	}
	var out Board
	path := "/stops/" + url.PathEscape(stationID) + "/" + kind
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Journeys queries /journeys for itineraries between two stations.
func (c *Client) Journeys(ctx context.Context, from, to string, opts JourneysOptions) (*JourneysResponse, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	if opts.Departure != nil {
		q.Set("departure", opts.Departure.Format(time.RFC3339))
	}
	if opts.MaxTransfers >= 0 {
		q.Set("transfers", strconv.Itoa(opts.MaxTransfers))
	}
	if opts.Results > 0 {
		q.Set("results", strconv.Itoa(opts.Results))
	}
	if opts.Stopovers {
		q.Set("stopovers", "true")
	}
	if len(opts.Products) > 0 {
		enabled := map[string]bool{}
		for _, p := range opts.Products {
			enabled[p] = true
		}
		for _, p := range allProducts {
			q.Set(p, strconv.FormatBool(enabled[p]))
		}
	}
	var out JourneysResponse
	if err := c.get(ctx, "/journeys", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
