// Package metrics exports simulation counters to Prometheus.
package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kassicus/colorsurvivor/internal/application/system"
)

const namespace = "survivor"

// Simulation collects per-tick statistics from the world
type Simulation struct {
	registry *prometheus.Registry

	ticks        prometheus.Counter
	tickDuration prometheus.Histogram
	entities     *prometheus.GaugeVec
	kills        *prometheus.CounterVec
	drops        *prometheus.CounterVec
	pickups      *prometheus.CounterVec
	shots        prometheus.Counter
	hits         prometheus.Counter
	expired      prometheus.Counter
	damage       prometheus.Counter
	playerDamage prometheus.Counter
}

// New creates collectors on a private registry
func New() *Simulation {
	s := &Simulation{
		registry: prometheus.NewRegistry(),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks completed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tick_duration_seconds",
			Help:      "Wall time spent inside one world update.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		entities: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entities",
			Help:      "Entities per container after the last tick.",
		}, []string{"container"}),
		kills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "enemies_killed_total",
			Help:      "Enemies killed, by kind.",
		}, []string{"kind"}),
		drops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_spawned_total",
			Help:      "Loot dropped by dying enemies, by item.",
		}, []string{"item"}),
		pickups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drops_picked_total",
			Help:      "Ground items picked up by the player, by item.",
		}, []string{"item"}),
		shots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_fired_total",
			Help:      "Projectiles spawned by ranged weapons.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectile_hits_total",
			Help:      "Projectiles that struck an enemy.",
		}),
		expired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectiles_expired_total",
			Help:      "Projectiles removed by age or bounds.",
		}),
		damage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "projectile_damage_total",
			Help:      "Damage dealt by projectiles.",
		}),
		playerDamage: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "player_damage_total",
			Help:      "Contact damage taken by the player.",
		}),
	}
	s.registry.MustRegister(
		s.ticks, s.tickDuration, s.entities, s.kills, s.drops,
		s.pickups, s.shots, s.hits, s.expired, s.damage, s.playerDamage,
	)
	return s
}

// Registry exposes the private registry
func (s *Simulation) Registry() *prometheus.Registry {
	return s.registry
}

// ObserveTick records one world update
func (s *Simulation) ObserveTick(events []system.Event, counts map[string]int, elapsed time.Duration) {
	s.ticks.Inc()
	s.tickDuration.Observe(elapsed.Seconds())
	for name, n := range counts {
		s.entities.WithLabelValues(name).Set(float64(n))
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case system.EnemyKilled:
			s.kills.WithLabelValues(e.Kind.String()).Inc()
			if e.Dropped {
				s.drops.WithLabelValues(e.Drop.String()).Inc()
			}
		case system.DropPicked:
			s.pickups.WithLabelValues(e.Kind.String()).Inc()
		case system.ProjectileFired:
			s.shots.Inc()
		case system.ProjectileHit:
			s.hits.Inc()
			s.damage.Add(float64(e.Damage))
		case system.ProjectileExpired:
			s.expired.Inc()
		case system.PlayerDamaged:
			s.playerDamage.Add(float64(e.Damage))
		}
	}
}

// Handler returns the /metrics HTTP handler for this registry
func (s *Simulation) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}

// Serve runs a metrics endpoint on addr until ctx is cancelled
func (s *Simulation) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics endpoint listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
