package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/mileusna/crontab"

	"lingkod-server/services/assistant-api/internal/config"
	"lingkod-server/services/assistant-api/internal/domain/faq"
	"lingkod-server/services/assistant-api/internal/infrastructure/logger"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

const (
	DefaultRefreshInterval = 15              // in minutes
	CronJobTimeout         = 2 * time.Minute // Timeout for each cron job execution
)

type Crontab struct {
	ctab   *crontab.Crontab
	search *faq.SearchService
}

func NewCrontab(search *faq.SearchService) *Crontab {
	return &Crontab{
		ctab:   crontab.New(),
		search: search,
	}
}

func (c *Crontab) Run(ctx context.Context) error {
	log := logger.GetLogger()
	// execute once on server start so the fuzzy tier never starts cold
	c.refreshSnapshot(ctx)

	cfg := config.GetGlobal()
	if cfg != nil && cfg.FAQRefreshEnabled {
		interval := cfg.FAQRefreshIntervalMinutes
		if interval <= 0 {
			interval = DefaultRefreshInterval
		}

		cronExpr := fmt.Sprintf("*/%d * * * *", interval)
		if err := c.ctab.AddJob(cronExpr, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), CronJobTimeout)
			defer cancel()
			c.refreshSnapshot(jobCtx)
		}); err != nil {
			return platformerrors.AsError(ctx, platformerrors.LayerInfrastructure, err, "failed to add faq refresh job")
		}
		log.Info().Msgf("FAQ snapshot refresh scheduled: every %d minute(s)", interval)
	}

	<-ctx.Done()
	c.ctab.Shutdown()
	return nil
}

func (c *Crontab) refreshSnapshot(ctx context.Context) {
	log := logger.GetLogger()
	if err := c.search.Refresh(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh FAQ snapshot")
	}
}
