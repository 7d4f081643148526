package http

import (
	"net/http"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	logger *zap.Logger

	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	createStatusHandler    commands.CreateStatusCommandHandler
	updateStatusHandler    commands.UpdateStatusCommandHandler
	deleteStatusHandler    commands.DeleteStatusCommandHandler
	reorderStatusesHandler commands.ReorderStatusesCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	listOrdersHandler      queries.ListOrdersQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler
	listStatusesHandler    queries.ListStatusesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	logger *zap.Logger,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	createStatusHandler commands.CreateStatusCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	deleteStatusHandler commands.DeleteStatusCommandHandler,
	reorderStatusesHandler commands.ReorderStatusesCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	listStatusesHandler queries.ListStatusesQueryHandler,
) *Server {
	return &Server{
		logger:                 logger,
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		createStatusHandler:    createStatusHandler,
		updateStatusHandler:    updateStatusHandler,
		deleteStatusHandler:    deleteStatusHandler,
		reorderStatusesHandler: reorderStatusesHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		trackOrderHandler:      trackOrderHandler,
		listStatusesHandler:    listStatusesHandler,
	}
}

// RegisterRoutes mounts every endpoint on the echo instance. The tracking
// endpoints and the health check stay outside the auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	e.GET("/api/v1/track/:shareToken", s.TrackByToken)
	e.GET("/api/v1/track", s.TrackByID)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:trackingId", s.GetOrder)
	api.PATCH("/orders/:trackingId", s.UpdateOrder)
	api.GET("/orders/:trackingId/history", s.GetOrderHistory)

	api.GET("/statuses", s.ListStatuses)
	api.POST("/statuses", s.CreateStatus)
	api.PATCH("/statuses/:statusId", s.UpdateStatus)
	api.DELETE("/statuses/:statusId", s.DeleteStatus)
	api.PUT("/statuses/reorder", s.ReorderStatuses)
}
