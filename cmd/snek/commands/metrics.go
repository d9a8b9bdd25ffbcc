package commands

import (
	"github.com/battlesnakeio/snek/api"
	log "github.com/sirupsen/logrus"
)

var metricsListen string

func startMetrics() {
	if metricsListen == "" {
		log.Debug("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", metricsListen).Info("starting prometheus exporter")
	srv := api.New(metricsListen)
	go func() {
		if err := srv.WaitForExit(); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
