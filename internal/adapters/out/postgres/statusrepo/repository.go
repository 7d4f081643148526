package statusrepo

import (
	"context"
	"errors"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormStatusRepository implements StatusRepository using GORM.
type GormStatusRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormStatusRepository creates a new GORM status repository.
func NewGormStatusRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusRepository {
	return &GormStatusRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new status to the database. A duplicate code surfaces as a
// conflict error.
func (r *GormStatusRepository) Add(ctx context.Context, aggregate *status.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"code", dto.Code, "status code already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing status to the database.
func (r *GormStatusRepository) Update(ctx context.Context, aggregate *status.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&StatusDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "code", "is_system").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("statusId", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Delete removes a status by id.
func (r *GormStatusRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&StatusDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("statusId", id.String())
	}

	return nil
}

// Get retrieves a status by id.
func (r *GormStatusRepository) Get(ctx context.Context, id kernel.UUID) (*status.Status, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("statusId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a status by its canonical code.
func (r *GormStatusRepository) GetByCode(ctx context.Context, code string) (*status.Status, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto StatusDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the whole registry by sort order, ties broken by code.
func (r *GormStatusRepository) GetAll(ctx context.Context) ([]*status.Status, error) {
	var dtos []StatusDTO
	if err := r.db.WithContext(ctx).Order("sort_order, code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	statuses := make([]*status.Status, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, s)
	}

	return statuses, nil
}
