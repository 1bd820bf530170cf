package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"herohud/internal/game"
)

var (
	commandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herohud_commands_total",
			Help: "Total number of player commands by command and result.",
		},
		[]string{"command", "result"},
	)

	levelUpsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "herohud_level_ups_total",
		Help: "Total number of level-ups granted by the rules pass.",
	})

	deathsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "herohud_deaths_total",
		Help: "Total number of player deaths.",
	})

	awardsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "herohud_awards_granted_total",
			Help: "Total number of threshold awards granted, by award.",
		},
		[]string{"award"},
	)

	sessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "herohud_sessions_active",
		Help: "Number of sessions currently held in memory.",
	})

	streamsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "herohud_streams_active",
			Help: "Number of open renderer streams by transport.",
		},
		[]string{"transport"},
	)
)

func observeUpdate(u game.Update, err error) {
	result := "ok"
	if err != nil {
		result = errorKind(err)
	}
	commandsTotal.WithLabelValues(string(u.Command), result).Inc()
	for _, ev := range u.Events {
		switch ev.Kind {
		case game.EventLevelUp:
			levelUpsTotal.Inc()
		case game.EventDied:
			deathsTotal.Inc()
		case game.EventAwardWon:
			awardsTotal.WithLabelValues(ev.Award).Inc()
		}
	}
}
