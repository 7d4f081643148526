package postgres

import (
	"context"
	"errors"

	"shiptrack/internal/adapters/out/postgres/statusrepo"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' tracker dependency outside a unit
// of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, any) {}

// SeedSystemStatuses inserts the built-in statuses that the transition rules
// depend on. Already-present codes are left untouched, including their labels
// and sort orders, so the seed is safe to run on every startup.
func SeedSystemStatuses(ctx context.Context, db *gorm.DB) error {
	repo := statusrepo.NewGormStatusRepository(db, noopTracker{})

	for _, def := range status.SystemDefaults() {
		_, err := repo.GetByCode(ctx, def.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		entry, err := status.RestoreStatus(
			kernel.NewUUID(), def.Code, def.Label, def.Description, true, def.SortOrder)
		if err != nil {
			return err
		}

		if err = repo.Add(ctx, entry); err != nil {
			return err
		}
	}

	return nil
}
