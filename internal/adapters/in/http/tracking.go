package http

import (
	"net/http"
	"time"

	"shiptrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// TrackingBody is the public order projection: no customer contact details,
// no share token, no company reference.
type TrackingBody struct {
	TrackingID     string             `json:"trackingId"`
	StatusCode     string             `json:"statusCode"`
	StatusLabel    string             `json:"statusLabel"`
	PickupAddress  string             `json:"pickupAddress"`
	DropoffAddress string             `json:"dropoffAddress"`
	CurrentLat     *float64           `json:"currentLat,omitempty"`
	CurrentLng     *float64           `json:"currentLng,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
	History        []HistoryEntryBody `json:"history"`
}

func trackingBodyFromResponse(resp queries.TrackOrderQueryResponse) TrackingBody {
	return TrackingBody{
		TrackingID:     resp.TrackingID,
		StatusCode:     resp.StatusCode,
		StatusLabel:    resp.StatusLabel,
		PickupAddress:  resp.PickupAddress,
		DropoffAddress: resp.DropoffAddress,
		CurrentLat:     resp.CurrentLat,
		CurrentLng:     resp.CurrentLng,
		CreatedAt:      resp.CreatedAt,
		UpdatedAt:      resp.UpdatedAt,
		History:        historyBodiesFromResponse(resp.History),
	}
}

// TrackByToken handles GET /api/v1/track/:shareToken.
func (s *Server) TrackByToken(ctx echo.Context) error {
	query, err := queries.NewTrackOrderByTokenQuery(ctx.Param("shareToken"))
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingBodyFromResponse(resp))
}

// TrackByID handles GET /api/v1/track?trackingId=...&email=...; the email
// must match the one on the order whenever the order carries one.
func (s *Server) TrackByID(ctx echo.Context) error {
	query, err := queries.NewTrackOrderByIDQuery(
		ctx.QueryParam("trackingId"), ctx.QueryParam("email"))
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingBodyFromResponse(resp))
}
