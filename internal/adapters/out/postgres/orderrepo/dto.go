// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The tracking id is the primary key; company and status columns are indexed
// for the scoped listings and the stale-order sweep.
type OrderDTO struct {
	TrackingID       string     `gorm:"primaryKey;size:64"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;index"`
	CustomerName     string     `gorm:"size:255"`
	CustomerEmail    string     `gorm:"size:255"`
	CustomerPhone    string     `gorm:"size:64"`
	PickupAddress    string     `gorm:"size:512"`
	PickupLat        float64
	PickupLng        float64
	DropoffAddress   string     `gorm:"size:512"`
	DropoffLat       float64
	DropoffLng       float64
	Instructions     string     `gorm:"size:2048"`
	CurrentLat       *float64
	CurrentLng       *float64
	DeliveryPersonID *uuid.UUID `gorm:"type:uuid;index"`
	StatusID         uuid.UUID  `gorm:"type:uuid;index"`
	ShareToken       string     `gorm:"uniqueIndex;size:64"`
	CreatedAt        time.Time
	UpdatedAt        time.Time  `gorm:"index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var deliveryPersonID *uuid.UUID
	if id := aggregate.DeliveryPersonID(); id != nil {
		raw := id.Bytes()
		deliveryPersonID = &raw
	}

	var currentLat, currentLng *float64
	if loc := aggregate.CurrentLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		currentLat, currentLng = &lat, &lng
	}

	return OrderDTO{
		TrackingID:       aggregate.TrackingID().String(),
		CompanyID:        aggregate.CompanyID().Bytes(),
		CustomerName:     aggregate.CustomerName(),
		CustomerEmail:    aggregate.CustomerEmail(),
		CustomerPhone:    aggregate.CustomerPhone(),
		PickupAddress:    aggregate.Pickup().Address(),
		PickupLat:        aggregate.Pickup().Point().Lat(),
		PickupLng:        aggregate.Pickup().Point().Lng(),
		DropoffAddress:   aggregate.Dropoff().Address(),
		DropoffLat:       aggregate.Dropoff().Point().Lat(),
		DropoffLng:       aggregate.Dropoff().Point().Lng(),
		Instructions:     aggregate.Instructions(),
		CurrentLat:       currentLat,
		CurrentLng:       currentLng,
		DeliveryPersonID: deliveryPersonID,
		StatusID:         aggregate.StatusID().Bytes(),
		ShareToken:       aggregate.ShareToken().String(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	trackingID, err := kernel.NewTrackingID(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	statusID, err := kernel.UUIDFromBytes(dto.StatusID[:])
	if err != nil {
		return nil, err
	}

	shareToken, err := kernel.ShareTokenFromString(dto.ShareToken)
	if err != nil {
		return nil, err
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	pickup, err := order.NewWaypoint(dto.PickupAddress, pickupPoint)
	if err != nil {
		return nil, err
	}

	dropoffPoint, err := kernel.NewGeoPoint(dto.DropoffLat, dto.DropoffLng)
	if err != nil {
		return nil, err
	}
	dropoff, err := order.NewWaypoint(dto.DropoffAddress, dropoffPoint)
	if err != nil {
		return nil, err
	}

	var currentLocation *kernel.GeoPoint
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		point, locErr := kernel.NewGeoPoint(*dto.CurrentLat, *dto.CurrentLng)
		if locErr != nil {
			return nil, locErr
		}
		currentLocation = &point
	}

	var deliveryPersonID *kernel.UUID
	if dto.DeliveryPersonID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.DeliveryPersonID)[:])
		if idErr != nil {
			return nil, idErr
		}
		deliveryPersonID = &id
	}

	return order.RestoreOrder(
		trackingID,
		companyID,
		dto.CustomerName,
		dto.CustomerEmail,
		dto.CustomerPhone,
		pickup,
		dropoff,
		dto.Instructions,
		currentLocation,
		deliveryPersonID,
		statusID,
		shareToken,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
