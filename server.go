package bahncopilot

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Server is the HTTP front of the service.
type Server struct {
	httpServer *http.Server
	log        *logrus.Logger
}

func NewServer(port int, app *App, log *logrus.Logger) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/locations", withCORS(app.handleLocations))
	mux.HandleFunc("/api/boards/departures", withCORS(app.handleDepartures))
	mux.HandleFunc("/api/boards/arrivals", withCORS(app.handleArrivals))
	mux.HandleFunc("/api/journeys", withCORS(app.handleJourneys))
	mux.HandleFunc("/api/itinerary", withCORS(app.handleItinerary))

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		log: log,
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.WithField("error", err).Fatal("server error")
		}
	}()
	s.log.WithField("addr", s.httpServer.Addr).Info("server listening")
}

// WaitForShutdown blocks until SIGINT/SIGTERM, then drains the server.
func (s *Server) WaitForShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigs
	s.log.WithField("signal", sig).Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.log.WithField("error", err).Error("server shutdown error")
		return
	}
	s.log.Info("server shut down")
}
