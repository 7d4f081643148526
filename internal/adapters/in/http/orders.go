package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// WaypointBody is the pickup/dropoff shape in order requests.
type WaypointBody struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	TrackingID    string       `json:"trackingId"`
	CustomerName  string       `json:"customerName"`
	CustomerEmail string       `json:"customerEmail"`
	CustomerPhone string       `json:"customerPhone"`
	Pickup        WaypointBody `json:"pickup"`
	Dropoff       WaypointBody `json:"dropoff"`
	Instructions  string       `json:"instructions"`
}

// OrderBody is the authenticated order projection returned by the order
// endpoints.
type OrderBody struct {
	TrackingID       string       `json:"trackingId"`
	CompanyID        string       `json:"companyId"`
	CustomerName     string       `json:"customerName"`
	CustomerEmail    string       `json:"customerEmail,omitempty"`
	CustomerPhone    string       `json:"customerPhone,omitempty"`
	Pickup           WaypointBody `json:"pickup"`
	Dropoff          WaypointBody `json:"dropoff"`
	Instructions     string       `json:"instructions,omitempty"`
	CurrentLat       *float64     `json:"currentLat,omitempty"`
	CurrentLng       *float64     `json:"currentLng,omitempty"`
	DeliveryPersonID *string      `json:"deliveryPersonId,omitempty"`
	StatusCode       string       `json:"statusCode"`
	StatusLabel      string       `json:"statusLabel"`
	ShareToken       string       `json:"shareToken"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// HistoryEntryBody is one timeline entry on the wire.
type HistoryEntryBody struct {
	StatusCode  string    `json:"statusCode"`
	StatusLabel string    `json:"statusLabel"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	RecordedAt  time.Time `json:"recordedAt"`
}

func orderBodyFromResponse(resp queries.OrderResponse) OrderBody {
	return OrderBody{
		TrackingID:       resp.TrackingID,
		CompanyID:        resp.CompanyID,
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		CustomerPhone:    resp.CustomerPhone,
		Pickup:           WaypointBody{Address: resp.PickupAddress, Lat: resp.PickupLat, Lng: resp.PickupLng},
		Dropoff:          WaypointBody{Address: resp.DropoffAddress, Lat: resp.DropoffLat, Lng: resp.DropoffLng},
		Instructions:     resp.Instructions,
		CurrentLat:       resp.CurrentLat,
		CurrentLng:       resp.CurrentLng,
		DeliveryPersonID: resp.DeliveryPersonID,
		StatusCode:       resp.StatusCode,
		StatusLabel:      resp.StatusLabel,
		ShareToken:       resp.ShareToken,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}

func historyBodiesFromResponse(entries []queries.HistoryEntryResponse) []HistoryEntryBody {
	bodies := make([]HistoryEntryBody, len(entries))
	for i, entry := range entries {
		bodies[i] = HistoryEntryBody{
			StatusCode:  entry.StatusCode,
			StatusLabel: entry.StatusLabel,
			Lat:         entry.Lat,
			Lng:         entry.Lng,
			RecordedAt:  entry.RecordedAt,
		}
	}
	return bodies
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	trackingID, err := kernel.NewTrackingID(req.TrackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	pickup, err := waypointFromBody(req.Pickup)
	if err != nil {
		return writeError(ctx, err)
	}
	dropoff, err := waypointFromBody(req.Dropoff)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, trackingID,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		pickup, dropoff, req.Instructions)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.logger.Info("order created",
		zap.String("trackingId", created.TrackingID().String()),
		zap.String("companyId", created.CompanyID().String()))

	return s.respondWithOrder(ctx, http.StatusCreated, actor, created.TrackingID())
}

// GetOrder handles GET /api/v1/orders/:trackingId.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, actor, trackingID)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	bodies := make([]OrderBody, len(orders))
	for i, resp := range orders {
		bodies[i] = orderBodyFromResponse(resp)
	}
	return ctx.JSON(http.StatusOK, bodies)
}

// UpdateOrder handles PATCH /api/v1/orders/:trackingId. The body is a sparse
// change set: absent fields stay untouched, explicit null clears a field, and
// lat/lng must arrive as a pair.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, err)
	}

	changes, err := changeSetFromBody(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(actor, trackingID, changes)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	s.logger.Info("order updated",
		zap.String("trackingId", updated.TrackingID().String()),
		zap.Strings("fields", fieldNames(changes)))

	return s.respondWithOrder(ctx, http.StatusOK, actor, updated.TrackingID())
}

// GetOrderHistory handles GET /api/v1/orders/:trackingId/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "missing actor")
	}

	trackingID, err := kernel.NewTrackingID(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(actor, trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, historyBodiesFromResponse(entries))
}

// respondWithOrder reads the order back through the query side so every order
// endpoint returns the same projection, status code and label resolved.
func (s *Server) respondWithOrder(
	ctx echo.Context, code int, actor kernel.Actor, trackingID kernel.TrackingID,
) error {
	query, err := queries.NewGetOrderQuery(actor, trackingID)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(code, orderBodyFromResponse(resp))
}

func waypointFromBody(body WaypointBody) (order.Waypoint, error) {
	point, err := kernel.NewGeoPoint(body.Lat, body.Lng)
	if err != nil {
		return order.Waypoint{}, err
	}
	return order.NewWaypoint(body.Address, point)
}

func fieldNames(changes *order.ChangeSet) []string {
	fields := changes.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}

// changeSetFromBody decodes the sparse update body. Raw JSON is inspected
// key by key because the null/absent distinction matters: null clears a
// field, absence leaves it alone.
func changeSetFromBody(ctx echo.Context) (*order.ChangeSet, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(ctx.Request().Body).Decode(&raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	changes := order.NewChangeSet()
	var lat, lng *float64

	for key, value := range raw {
		switch order.Field(key) {
		case order.FieldStatusCode:
			code, err := stringValue(key, value)
			if err != nil {
				return nil, err
			}
			changes.SetStatusCode(code)
		case order.FieldLat:
			v, err := floatValue(key, value)
			if err != nil {
				return nil, err
			}
			lat = &v
		case order.FieldLng:
			v, err := floatValue(key, value)
			if err != nil {
				return nil, err
			}
			lng = &v
		case order.FieldCustomerName, order.FieldCustomerEmail,
			order.FieldCustomerPhone, order.FieldPickupAddress,
			order.FieldDropoffAddress, order.FieldInstructions:
			s, err := nullableString(key, value)
			if err != nil {
				return nil, err
			}
			setStringField(changes, order.Field(key), s)
		case order.FieldDeliveryPersonID:
			if isNull(value) {
				changes.ClearDeliveryPerson()
				continue
			}
			s, err := stringValue(key, value)
			if err != nil {
				return nil, err
			}
			id, err := kernel.UUIDFromString(s)
			if err != nil {
				return nil, err
			}
			changes.SetDeliveryPerson(id)
		default:
			return nil, errs.NewValueIsInvalidError(key)
		}
	}

	if (lat == nil) != (lng == nil) {
		return nil, errs.NewValueIsRequiredError("lat and lng must be supplied together")
	}
	if lat != nil {
		point, err := kernel.NewGeoPoint(*lat, *lng)
		if err != nil {
			return nil, err
		}
		changes.SetLocation(point)
	}

	return changes, nil
}

func isNull(value json.RawMessage) bool {
	return string(value) == "null"
}

// nullableString maps JSON null to the empty string, which the change set
// treats as an explicit clear.
func nullableString(key string, value json.RawMessage) (string, error) {
	if isNull(value) {
		return "", nil
	}
	return stringValue(key, value)
}

func setStringField(changes *order.ChangeSet, field order.Field, value string) {
	switch field {
	case order.FieldCustomerName:
		changes.SetCustomerName(value)
	case order.FieldCustomerEmail:
		changes.SetCustomerEmail(value)
	case order.FieldCustomerPhone:
		changes.SetCustomerPhone(value)
	case order.FieldPickupAddress:
		changes.SetPickupAddress(value)
	case order.FieldDropoffAddress:
		changes.SetDropoffAddress(value)
	case order.FieldInstructions:
		changes.SetInstructions(value)
	}
}

// stringValue decodes a JSON string. null is rejected here; callers that
// accept it (nullableString, the delivery person clear) handle it first.
func stringValue(key string, value json.RawMessage) (string, error) {
	if isNull(value) {
		return "", errs.NewValueIsInvalidErrorWithCause(key,
			errors.New("null is not a valid value"))
	}
	var s string
	if err := json.Unmarshal(value, &s); err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return s, nil
}

// floatValue decodes a JSON number. json.Unmarshal leaves the target zero on
// null, so null must be rejected up front or it would read as coordinate 0.
func floatValue(key string, value json.RawMessage) (float64, error) {
	if isNull(value) {
		return 0, errs.NewValueIsInvalidErrorWithCause(key,
			errors.New("null is not a valid value"))
	}
	var f float64
	if err := json.Unmarshal(value, &f); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(key, err)
	}
	return f, nil
}
