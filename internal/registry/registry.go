// Package registry holds the published set of per-league estimators. A
// replacement set is built off to the side by the loader and swapped in as
// a whole, so readers never observe a partially loaded registry.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	applogger "github.com/yourusername/footy-edge/internal/logger"
	"github.com/yourusername/footy-edge/internal/models"
)

const refreshTimeout = 5 * time.Minute

// LoaderFunc builds the complete set of per-league estimators along with a
// version tag for the snapshot.
type LoaderFunc func(ctx context.Context) (map[string]models.Estimator, string, error)

type snapshot struct {
	estimators map[string]models.Estimator
	version    string
	loadedAt   time.Time
}

// Registry publishes estimator snapshots atomically and can refresh them
// on a cron schedule.
type Registry struct {
	loader   LoaderFunc
	current  atomic.Pointer[snapshot]
	logger   *logrus.Logger
	auditLog *applogger.AuditLogger

	mu        sync.Mutex
	cron      *cron.Cron
	isRunning bool
}

// New creates an empty registry. Lookup misses until the first Load.
func New(loader LoaderFunc, logger *logrus.Logger) *Registry {
	return &Registry{
		loader:   loader,
		logger:   logger,
		auditLog: applogger.NewAuditLogger(logger),
	}
}

// Load builds a fresh snapshot through the loader and publishes it. On
// failure the previously published snapshot stays live.
func (r *Registry) Load(ctx context.Context) error {
	estimators, version, err := r.loader(ctx)
	if err != nil {
		return fmt.Errorf("loading model registry: %w", err)
	}

	snap := &snapshot{
		estimators: make(map[string]models.Estimator, len(estimators)),
		version:    version,
		loadedAt:   time.Now().UTC(),
	}
	for league, est := range estimators {
		snap.estimators[league] = est
	}

	r.current.Store(snap)

	r.auditLog.LogRegistryPublish(version, len(snap.estimators), snap.loadedAt)

	return nil
}

// Lookup returns the estimator registered for a league.
func (r *Registry) Lookup(league string) (models.Estimator, bool) {
	snap := r.current.Load()
	if snap == nil {
		return nil, false
	}
	est, ok := snap.estimators[league]
	return est, ok
}

// Resolve returns the estimator registered for a league, failing with
// ErrNoModelForLeague when none is published. Callers able to degrade to
// a fallback model use Lookup instead.
func (r *Registry) Resolve(league string) (models.Estimator, error) {
	est, ok := r.Lookup(league)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrNoModelForLeague, league)
	}
	return est, nil
}

// Version returns the published snapshot's version tag, or the empty
// string before the first successful load.
func (r *Registry) Version() string {
	snap := r.current.Load()
	if snap == nil {
		return ""
	}
	return snap.version
}

// LoadedAt returns when the published snapshot was built.
func (r *Registry) LoadedAt() time.Time {
	snap := r.current.Load()
	if snap == nil {
		return time.Time{}
	}
	return snap.loadedAt
}

// Leagues returns the leagues with a registered estimator, sorted.
func (r *Registry) Leagues() []string {
	snap := r.current.Load()
	if snap == nil {
		return nil
	}
	leagues := make([]string, 0, len(snap.estimators))
	for league := range snap.estimators {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)
	return leagues
}

// Len returns the number of registered estimators.
func (r *Registry) Len() int {
	snap := r.current.Load()
	if snap == nil {
		return 0
	}
	return len(snap.estimators)
}

// StartRefresh reloads the registry on the given cron schedule until Stop
// is called. Failed refreshes are logged and the old snapshot stays live.
func (r *Registry) StartRefresh(schedule string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isRunning {
		return fmt.Errorf("registry refresh is already running")
	}

	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if err := r.Load(ctx); err != nil {
			r.logger.WithError(err).Error("Scheduled registry refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	c.Start()
	r.cron = c
	r.isRunning = true
	r.logger.WithField("schedule", schedule).Info("Registry refresh scheduled")

	return nil
}

// Stop halts scheduled refreshes and waits for an in-flight refresh to
// finish. Safe to call when no refresh was started.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isRunning {
		return
	}

	<-r.cron.Stop().Done()
	r.cron = nil
	r.isRunning = false
	r.logger.Info("Registry refresh stopped")
}

// IsRunning reports whether scheduled refreshes are active.
func (r *Registry) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.isRunning
}
