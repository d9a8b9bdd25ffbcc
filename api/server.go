// Package api serves the operational endpoints of a running game: the
// prometheus metrics and a health check.
package api

import (
	"net/http"

	"github.com/battlesnakeio/snek/version"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Server wraps the http server and its router.
type Server struct {
	hs *http.Server
}

// New creates a server listening on addr. Nothing is served until
// WaitForExit is called.
func New(addr string) *Server {
	return &Server{
		hs: &http.Server{
			Addr:    addr,
			Handler: newRouter(),
		},
	}
}

func newRouter() *httprouter.Router {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())
	router.GET("/healthz", health)
	return router
}

func health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("ok " + version.Version + "\n")); err != nil {
		log.WithError(err).Warn("unable to write health response")
	}
}

// WaitForExit serves until the server fails or is closed.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("metrics server listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Close stops the server immediately.
func (s *Server) Close() error {
	return s.hs.Close()
}
