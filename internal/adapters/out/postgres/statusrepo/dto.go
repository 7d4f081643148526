// Package statusrepo provides data transfer objects and mapping functions for
// status registry persistence.
package statusrepo

import (
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// StatusDTO represents the database structure for persisting registry
// entries. The code carries a unique index; duplicate codes fail at the
// constraint and surface as conflicts.
type StatusDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code        string    `gorm:"uniqueIndex;size:64"`
	Label       string    `gorm:"size:255"`
	Description string    `gorm:"size:1024"`
	IsSystem    bool
	SortOrder   int
}

// TableName specifies the database table name for status entities.
func (StatusDTO) TableName() string {
	return "statuses"
}

// fromDomain converts a status aggregate to its database representation.
func fromDomain(aggregate *status.Status) StatusDTO {
	return StatusDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code(),
		Label:       aggregate.Label(),
		Description: aggregate.Description(),
		IsSystem:    aggregate.IsSystem(),
		SortOrder:   aggregate.SortOrder(),
	}
}

// toDomain converts a database row to a status aggregate via RestoreStatus.
func toDomain(dto StatusDTO) (*status.Status, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return status.RestoreStatus(id, dto.Code, dto.Label, dto.Description, dto.IsSystem, dto.SortOrder)
}
