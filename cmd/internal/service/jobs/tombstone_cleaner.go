package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/Svathna/KG-ALL-backend/cmd/internal/utils"
)

const (
	// TombstoneTTLMillis is how long soft-deleted rows stay recoverable
	// before the sweeper removes them for good.
	TombstoneTTLMillis = 30 * 24 * 60 * 60 * 1000
	SweepInterval      = 24 * time.Hour
)

type MaintenanceRepository interface {
	PurgeTombstones(before int64) (int64, error)
}

type TombstoneCleaner struct {
	maintenanceRepo MaintenanceRepository
}

func NewTombstoneCleaner(repo MaintenanceRepository) *TombstoneCleaner {
	return &TombstoneCleaner{maintenanceRepo: repo}
}

func (t *TombstoneCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	log.Info("Tombstone cleaner cron started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping tombstone cleaner...")
			return
		case <-ticker.C:
			t.cleanup()
		}
	}
}

func (t *TombstoneCleaner) cleanup() {
	cutoff := utils.NowUTC() - TombstoneTTLMillis

	purged, err := t.maintenanceRepo.PurgeTombstones(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to purge tombstoned rows: %v", err)
		return
	}

	if purged > 0 {
		log.Infof("Cleaner: purged %d tombstoned rows older than %d", purged, cutoff)
	}
}
