package orderrepo

import (
	"context"
	"errors"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database. A taken tracking id surfaces as a
// conflict error.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause(
				"trackingId", dto.TrackingID, "tracking id already exists", err)
		}
		return err
	}

	r.tracker.TrackAggregate(dto.TrackingID, aggregate)
	return nil
}

// Update saves an existing order to the database. The write covers every
// column in one statement; nullable columns clear when the aggregate cleared
// them.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").
		Omit("tracking_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("trackingId", dto.TrackingID)
	}

	r.tracker.TrackAggregate(dto.TrackingID, aggregate)
	return nil
}

// Get retrieves an order by tracking id within a company scope. An order
// belonging to another company reads as not found.
func (r *GormOrderRepository) Get(
	ctx context.Context, trackingID kernel.TrackingID, companyID kernel.UUID,
) (*order.Order, error) {
	return r.get(ctx, r.db, trackingID, &companyID)
}

// GetAny retrieves an order by tracking id regardless of company.
func (r *GormOrderRepository) GetAny(ctx context.Context, trackingID kernel.TrackingID) (*order.Order, error) {
	return r.get(ctx, r.db, trackingID, nil)
}

// GetForUpdate is Get with a SELECT ... FOR UPDATE row lock. The lock is held
// until the surrounding transaction commits or rolls back.
func (r *GormOrderRepository) GetForUpdate(
	ctx context.Context, trackingID kernel.TrackingID, companyID kernel.UUID,
) (*order.Order, error) {
	return r.get(ctx, r.locking(), trackingID, &companyID)
}

// GetAnyForUpdate is GetAny with a row lock.
func (r *GormOrderRepository) GetAnyForUpdate(
	ctx context.Context, trackingID kernel.TrackingID,
) (*order.Order, error) {
	return r.get(ctx, r.locking(), trackingID, nil)
}

func (r *GormOrderRepository) locking() *gorm.DB {
	return r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
}

func (r *GormOrderRepository) get(
	ctx context.Context, db *gorm.DB, trackingID kernel.TrackingID, companyID *kernel.UUID,
) (*order.Order, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	query := db.WithContext(ctx).Where("tracking_id = ?", trackingID.String())
	if companyID != nil {
		query = query.Where("company_id = ?", companyID.Bytes())
	}

	var dto OrderDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackingId", trackingID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByShareToken retrieves an order by its public share token.
func (r *GormOrderRepository) GetByShareToken(
	ctx context.Context, token kernel.ShareToken,
) (*order.Order, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "share_token = ?", token.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shareToken", token.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForCompany retrieves every order owned by the company, newest first.
func (r *GormOrderRepository) GetAllForCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*order.Order, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID.Bytes()).
		Order("created_at DESC, tracking_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// CountByStatus returns how many orders currently reference the status.
func (r *GormOrderRepository) CountByStatus(ctx context.Context, statusID kernel.UUID) (int64, error) {
	if err := statusID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status_id = ?", statusID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// GetStaleInStatuses retrieves orders last updated before cutoff whose
// current status is one of statusIDs, oldest first.
func (r *GormOrderRepository) GetStaleInStatuses(
	ctx context.Context, statusIDs []kernel.UUID, cutoff time.Time,
) ([]*order.Order, error) {
	if len(statusIDs) == 0 {
		return []*order.Order{}, nil
	}

	raw := make([]uuid.UUID, 0, len(statusIDs))
	for _, id := range statusIDs {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status_id IN ? AND updated_at < ?", raw, cutoff).
		Order("updated_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
