package main

import (
	"context"
	"fmt"
	"time"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	bahncopilot "github.com/bahn-copilot/bahn-copilot"
	"github.com/bahn-copilot/bahn-copilot/config"
	"github.com/bahn-copilot/bahn-copilot/hafas"
)

var CLI struct {
	Config string `help:"Path to config file" default:"config.yml" type:"path"`
	Debug  bool   `help:"Enable debug logging"`

	Serve     ServeCmd     `cmd:"" default:"1" help:"Run the HTTP API server."`
	Itinerary ItineraryCmd `cmd:"" help:"Render an itinerary for one connection to stdout."`
}

type runContext struct {
	cfg     *config.AppConfig
	gateway *bahncopilot.Gateway
	logger  *logrus.Logger
}

type ServeCmd struct{}

func (c *ServeCmd) Run(rc *runContext) error {
	app := bahncopilot.NewApp(rc.gateway)
	srv := bahncopilot.NewServer(rc.cfg.Server.Port, app, rc.logger)
	srv.Start()
	srv.WaitForShutdown()
	return nil
}

type ItineraryCmd struct {
	From      string `help:"Origin EVA id" required:""`
	To        string `help:"Destination EVA id" required:""`
	FromName  string `help:"Origin display name"`
	ToName    string `help:"Destination display name"`
	Departure string `help:"Departure timestamp (RFC 3339, default now)"`
	Transfers string `help:"Maximum number of transfers"`
}

func (c *ItineraryCmd) Run(rc *runContext) error {
	res, _, err := rc.gateway.Journeys(context.Background(), bahncopilot.JourneyQuery{
		FromID:    c.From,
		ToID:      c.To,
		Departure: c.Departure,
		Transfers: c.Transfers,
	})
	if err != nil {
		return err
	}

	opts := bahncopilot.ReportOptions{FromName: c.From, ToName: c.To}
	if c.FromName != "" {
		opts.FromName = c.FromName
	}
	if c.ToName != "" {
		opts.ToName = c.ToName
	}
	if c.Departure != "" {
		if t, err := time.Parse(time.RFC3339, c.Departure); err == nil {
			opts.Departure = &t
		}
	}
	fmt.Println(bahncopilot.RenderItinerary(res.Journeys, opts))
	return nil
}

func main() {
	ctx := kong.Parse(&CLI)

	logger := bahncopilot.NewLogger()
	if CLI.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logger.WithField("error", err).Fatal("failed to load config")
	}

	client := hafas.NewClient(cfg.HAFAS.BaseURL, cfg.HAFAS.UserAgent,
		time.Duration(cfg.HAFAS.TimeoutMS)*time.Millisecond)
	rc := &runContext{
		cfg:     cfg,
		gateway: bahncopilot.NewGateway(client, logger),
		logger:  logger,
	}
	ctx.FatalIfErrorf(ctx.Run(rc))
}
