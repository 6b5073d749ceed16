package bahncopilot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bahn-copilot/bahn-copilot/hafas"
)

// Provider is the journey data source the gateway queries. *hafas.Client
// implements it; tests substitute a fake.
type Provider interface {
	SearchStations(ctx context.Context, query string, opts hafas.LocationsOptions) ([]hafas.Location, error)
	Departures(ctx context.Context, stationID string, opts hafas.BoardOptions) (*hafas.Board, error)
	Arrivals(ctx context.Context, stationID string, opts hafas.BoardOptions) (*hafas.Board, error)
	Journeys(ctx context.Context, from, to string, opts hafas.JourneysOptions) (*hafas.JourneysResponse, error)
}

// CacheDirective is the advisory freshness policy attached to successful
// responses. Enforcement is a downstream HTTP cache's job.
type CacheDirective struct {
	FreshForSeconds             int
	StaleWhileRevalidateSeconds int
}

func (d CacheDirective) String() string {
	return fmt.Sprintf("s-maxage=%d, stale-while-revalidate=%d",
		d.FreshForSeconds, d.StaleWhileRevalidateSeconds)
}

var (
	cacheStations = CacheDirective{FreshForSeconds: 30, StaleWhileRevalidateSeconds: 300}
	cacheBoards   = CacheDirective{FreshForSeconds: 15, StaleWhileRevalidateSeconds: 120}
)

const (
	stationResultLimit = 8
	boardWindowMinutes = 60
	journeyResultLimit = 5
)

// journeyProducts restricts journey search to long-distance and regional
// rail product classes.
var journeyProducts = []string{"nationalExpress", "national", "regional"}

// Gateway validates incoming query parameters, calls the provider, and
// classifies failures. It holds no per-request state.
type Gateway struct {
	provider Provider
	log      *logrus.Logger
}

func NewGateway(p Provider, log *logrus.Logger) *Gateway {
	return &Gateway{provider: p, log: log}
}

// SearchStations resolves a free-text station query to station records.
func (g *Gateway) SearchStations(ctx context.Context, query string) ([]StationRecord, CacheDirective, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, CacheDirective{}, &ValidationError{Msg: "query required"}
	}
	locs, err := g.provider.SearchStations(ctx, q, hafas.LocationsOptions{Results: stationResultLimit})
	if err != nil {
		return nil, CacheDirective{}, g.providerFailure("locations", err)
	}
	return ResolveStations(locs), cacheStations, nil
}

// Departures fetches the departure board for a station over a fixed
// 60-minute window starting at when (default: now).
func (g *Gateway) Departures(ctx context.Context, evaID, when string) (*hafas.Board, CacheDirective, error) {
	return g.board(ctx, evaID, when, "departures", g.provider.Departures)
}

// Arrivals is the arrival-board counterpart of Departures.
func (g *Gateway) Arrivals(ctx context.Context, evaID, when string) (*hafas.Board, CacheDirective, error) {
	return g.board(ctx, evaID, when, "arrivals", g.provider.Arrivals)
}

func (g *Gateway) board(ctx context.Context, evaID, when, op string,
	fetch func(context.Context, string, hafas.BoardOptions) (*hafas.Board, error)) (*hafas.Board, CacheDirective, error) {

	if strings.TrimSpace(evaID) == "" {
		return nil, CacheDirective{}, &ValidationError{Msg: "evaId required"}
	}
	w, err := parseWhen("when", when, time.Now())
	if err != nil {
		return nil, CacheDirective{}, err
	}
	board, err := fetch(ctx, evaID, hafas.BoardOptions{When: &w, DurationMinutes: boardWindowMinutes})
	if err != nil {
		return nil, CacheDirective{}, g.providerFailure(op, err)
	}
	return board, cacheBoards, nil
}

// JourneyQuery carries the raw journey search parameters.
type JourneyQuery struct {
	FromID    string
	ToID      string
	Departure string
	Transfers string
}

// Journeys runs a journey search between two stations, restricted to
// national-express/national/regional products, with stopovers included.
func (g *Gateway) Journeys(ctx context.Context, q JourneyQuery) (*hafas.JourneysResponse, CacheDirective, error) {
	if strings.TrimSpace(q.FromID) == "" || strings.TrimSpace(q.ToID) == "" {
		return nil, CacheDirective{}, &ValidationError{Msg: "from & to required (EVA-IDs)"}
	}
	dep, err := parseWhen("departure", q.Departure, time.Now())
	if err != nil {
		return nil, CacheDirective{}, err
	}
	transfers, err := parseTransfers(q.Transfers)
	if err != nil {
		return nil, CacheDirective{}, err
	}
	res, err := g.provider.Journeys(ctx, q.FromID, q.ToID, hafas.JourneysOptions{
		Departure:    &dep,
		MaxTransfers: transfers,
		Results:      journeyResultLimit,
		Stopovers:    true,
		Products:     journeyProducts,
	})
	if err != nil {
		return nil, CacheDirective{}, g.providerFailure("journeys", err)
	}
	return res, cacheBoards, nil
}

// providerFailure logs the full cause and returns the opaque error the
// caller may see.
func (g *Gateway) providerFailure(op string, err error) error {
	g.log.WithFields(logrus.Fields{
		"operation": op,
		"error":     err,
	}).Error("provider call failed")
	return &ProviderError{Op: op, Err: err}
}
