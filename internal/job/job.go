// Package job defines the performer capability: one named unit of work per
// job type, invoked by the cron schedule or an HTTP trigger. Dependencies
// are injected into each performer at construction; there is no shared base
// type.
package job

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Params struct {
	// SinceDate optionally pins the sync watermark ("YYYY-MM-DD").
	SinceDate string `json:"since_date,omitempty"`
}

type Performer interface {
	Name() string
	Perform(ctx context.Context, params Params) (any, error)
}

// Runner executes a performer once, tagging its logs with a run id.
type Runner struct {
	Logger *zap.Logger
}

func (r *Runner) Run(ctx context.Context, p Performer, params Params) (any, error) {
	runID := uuid.NewString()
	started := time.Now()

	log := zap.NewNop()
	if r != nil && r.Logger != nil {
		log = r.Logger
	}
	log = log.With(zap.String("job", p.Name()), zap.String("run_id", runID))

	log.Info("job started")
	result, err := p.Perform(ctx, params)
	if err != nil {
		log.Warn("job failed",
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err),
		)
		return nil, err
	}
	log.Info("job finished", zap.Duration("elapsed", time.Since(started)))
	return result, nil
}
