package jobs

import (
	"context"
	"log/slog"
	"time"

	"insurance/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// policyLapseSchedule runs the sweep daily at 02:00 server time.
const policyLapseSchedule = "0 0 2 * * *"

// PolicyLapseJob manages the scheduled lapsing of expired policies.
// Runs daily to transition Active policies past their end date to Lapsed.
type PolicyLapseJob struct {
	handler commands.LapseExpiredPoliciesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPolicyLapseJob creates a new job for lapsing expired policies.
func NewPolicyLapseJob(handler commands.LapseExpiredPoliciesCommandHandler, logger *slog.Logger) *PolicyLapseJob {
	return &PolicyLapseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "policy_lapse_job"),
	}
}

// Start schedules the daily sweep.
func (j *PolicyLapseJob) Start() error {
	_, err := j.cron.AddFunc(policyLapseSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Policy lapse job started (running daily)")
	return nil
}

// Stop stops the policy lapse job.
func (j *PolicyLapseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Policy lapse job stopped")
}

// Run executes one sweep immediately. Exposed so the sweep can also be
// triggered at startup or from an operational endpoint.
func (j *PolicyLapseJob) Run(ctx context.Context) error {
	cmd, err := commands.NewLapseExpiredPoliciesCommand(time.Now().UTC())
	if err != nil {
		return err
	}

	return j.handler.Handle(ctx, cmd)
}

func (j *PolicyLapseJob) run() {
	ctx := context.Background()

	if err := j.Run(ctx); err != nil {
		// Sweep errors are per-holder and joined; the next run retries them.
		j.logger.ErrorContext(ctx, "Policy lapse job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Policy lapse sweep completed")
}
