// Package http exposes the order lifecycle over a thin REST surface.
// One POST route per transition, one GET per read model; all business rules
// live in the command and query handlers.
package http

import (
	"net/http"
	"time"

	"tanker/internal/core/application/usecases/commands"
	"tanker/internal/core/application/usecases/queries"
	"tanker/internal/core/domain/model/kernel"
	"tanker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	placeBidHandler     commands.PlaceBidCommandHandler
	acceptBidHandler    commands.AcceptBidCommandHandler
	assignDriverHandler commands.AssignDriverCommandHandler
	confirmOrderHandler commands.ConfirmOrderCommandHandler
	rejectOrderHandler  commands.RejectOrderCommandHandler
	startRideHandler    commands.StartRideCommandHandler
	markReachedHandler  commands.MarkReachedCommandHandler
	finishOrderHandler  commands.FinishOrderCommandHandler
	submitRatingHandler commands.SubmitRatingCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler

	// Query handlers
	getOpenOrdersHandler          queries.GetOpenOrdersQueryHandler
	getOrderHandler               queries.GetOrderQueryHandler
	getSupplierOrdersHandler      queries.GetSupplierOrdersQueryHandler
	getDriverOfferStatusesHandler queries.GetDriverOfferStatusesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	placeBidHandler commands.PlaceBidCommandHandler,
	acceptBidHandler commands.AcceptBidCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	startRideHandler commands.StartRideCommandHandler,
	markReachedHandler commands.MarkReachedCommandHandler,
	finishOrderHandler commands.FinishOrderCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getSupplierOrdersHandler queries.GetSupplierOrdersQueryHandler,
	getDriverOfferStatusesHandler queries.GetDriverOfferStatusesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		placeBidHandler:               placeBidHandler,
		acceptBidHandler:              acceptBidHandler,
		assignDriverHandler:           assignDriverHandler,
		confirmOrderHandler:           confirmOrderHandler,
		rejectOrderHandler:            rejectOrderHandler,
		startRideHandler:              startRideHandler,
		markReachedHandler:            markReachedHandler,
		finishOrderHandler:            finishOrderHandler,
		submitRatingHandler:           submitRatingHandler,
		cancelOrderHandler:            cancelOrderHandler,
		getOpenOrdersHandler:          getOpenOrdersHandler,
		getOrderHandler:               getOrderHandler,
		getSupplierOrdersHandler:      getSupplierOrdersHandler,
		getDriverOfferStatusesHandler: getDriverOfferStatusesHandler,
	}
}

// RegisterRoutes mounts every route under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.POST("/orders/:orderID/bids", s.PlaceBid)
	v1.POST("/bids/:bidID/accept", s.AcceptBid)
	v1.POST("/orders/:orderID/offers", s.AssignDriver)
	v1.POST("/orders/:orderID/confirm", s.ConfirmOrder)
	v1.POST("/orders/:orderID/reject", s.RejectOrder)
	v1.POST("/orders/:orderID/start", s.StartRide)
	v1.POST("/orders/:orderID/reached", s.MarkReached)
	v1.POST("/orders/:orderID/finish", s.FinishOrder)
	v1.POST("/orders/:orderID/rating", s.SubmitRating)
	v1.POST("/orders/:orderID/cancel", s.CancelOrder)

	v1.GET("/orders/open", s.GetOpenOrders)
	v1.GET("/orders/:orderID", s.GetOrder)
	v1.GET("/suppliers/:supplierID/orders", s.GetSupplierOrders)
	v1.GET("/suppliers/:supplierID/orders/:orderID/driver-statuses", s.GetDriverOfferStatuses)
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrder handles POST /api/v1/orders - opens a new delivery order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		CustomerID string `json:"customerId"`
		Address    string `json:"address"`
		Quantity   int    `json:"quantity"`
		BidPrice   int64  `json:"bidPrice"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	location, err := kernel.NewLocation(req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	bidPrice, err := kernel.NewMoney(req.BidPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, location, req.Quantity, bidPrice)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// PlaceBid handles POST /api/v1/orders/:orderID/bids - a supplier bids on an open order.
func (s *Server) PlaceBid(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		SupplierID string `json:"supplierId"`
		Price      int64  `json:"price"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	bidID := kernel.NewUUID()
	cmd, err := commands.NewPlaceBidCommand(bidID, orderID, supplierID, price)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.placeBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"bidId": bidID.String()})
}

// AcceptBid handles POST /api/v1/bids/:bidID/accept - the customer picks a bid.
func (s *Server) AcceptBid(ctx echo.Context) error {
	bidID, err := pathUUID(ctx, "bidID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		CustomerID string `json:"customerId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptBidCommand(bidID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.acceptBidHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/orders/:orderID/offers - the holding
// supplier offers the order to a roster driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		SupplierID string `json:"supplierId"`
		DriverID   string `json:"driverId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromString(req.SupplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(orderID, supplierID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) bindDriverTransition(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var req struct {
		DriverID string `json:"driverId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return orderID, driverID, nil
}

// ConfirmOrder handles POST /api/v1/orders/:orderID/confirm - a driver takes
// the order. Losers of the confirmation race receive 409.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverTransition(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject - a driver declines
// their pending offer.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverTransition(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartRide handles POST /api/v1/orders/:orderID/start.
func (s *Server) StartRide(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverTransition(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartRideCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.startRideHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReached handles POST /api/v1/orders/:orderID/reached.
func (s *Server) MarkReached(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverTransition(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkReachedCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.markReachedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishOrder handles POST /api/v1/orders/:orderID/finish - completes the
// delivery and archives it.
func (s *Server) FinishOrder(ctx echo.Context) error {
	orderID, driverID, err := s.bindDriverTransition(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewFinishOrderCommand(orderID, driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.finishOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitRating handles POST /api/v1/orders/:orderID/rating - the customer
// rates a finished delivery.
func (s *Server) SubmitRating(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		CustomerID string `json:"customerId"`
		Rating     int    `json:"rating"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitRatingCommand(orderID, customerID, req.Rating)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.submitRatingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	var req struct {
		CallerID string `json:"callerId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	callerID, err := kernel.UUIDFromString(req.CallerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, callerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return respondError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenOrder is one bidding-stage order in the marketplace feed.
type OpenOrder struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customerId"`
	Address          string    `json:"address"`
	Quantity         int       `json:"quantity"`
	CustomerBidPrice int64     `json:"customerBidPrice"`
	CreatedAt        time.Time `json:"createdAt"`
}

// GetOpenOrders handles GET /api/v1/orders/open - the supplier marketplace feed.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenOrder, len(orders))
	for i, ord := range orders {
		response[i] = OpenOrder{
			ID:               ord.ID.String(),
			CustomerID:       ord.CustomerID.String(),
			Address:          ord.Address,
			Quantity:         ord.Quantity,
			CustomerBidPrice: ord.CustomerBidPrice,
			CreatedAt:        ord.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderDetails is the full view of one live order.
type OrderDetails struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customerId"`
	SupplierID       *string    `json:"supplierId,omitempty"`
	DriverID         *string    `json:"driverId,omitempty"`
	Address          string     `json:"address"`
	Quantity         int        `json:"quantity"`
	CustomerBidPrice int64      `json:"customerBidPrice"`
	AcceptedPrice    *int64     `json:"acceptedPrice,omitempty"`
	Status           string     `json:"status"`
	SupplierDeadline *time.Time `json:"supplierDeadline,omitempty"`
	ConfirmedAt      *time.Time `json:"confirmedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// GetOrder handles GET /api/v1/orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	ord, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := OrderDetails{
		ID:               ord.ID.String(),
		CustomerID:       ord.CustomerID.String(),
		Address:          ord.Address,
		Quantity:         ord.Quantity,
		CustomerBidPrice: ord.CustomerBidPrice,
		AcceptedPrice:    ord.AcceptedPrice,
		Status:           ord.Status,
		SupplierDeadline: ord.SupplierDeadline,
		ConfirmedAt:      ord.ConfirmedAt,
		CreatedAt:        ord.CreatedAt,
	}
	if ord.SupplierID != nil {
		s := ord.SupplierID.String()
		response.SupplierID = &s
	}
	if ord.DriverID != nil {
		d := ord.DriverID.String()
		response.DriverID = &d
	}

	return ctx.JSON(http.StatusOK, response)
}

// SupplierOrder is one live order held or bid on by the supplier.
type SupplierOrder struct {
	ID            string     `json:"id"`
	CustomerID    string     `json:"customerId"`
	Address       string     `json:"address"`
	Quantity      int        `json:"quantity"`
	AcceptedPrice int64      `json:"acceptedPrice"`
	Status        string     `json:"status"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// SupplierHistoryEntry is one archived delivery outcome for the supplier.
type SupplierHistoryEntry struct {
	OrderID    string    `json:"orderId"`
	Outcome    string    `json:"outcome"`
	Price      int64     `json:"price"`
	Quantity   int       `json:"quantity"`
	Rating     *int      `json:"rating,omitempty"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// SupplierOrders bundles a supplier's live work and archived history.
type SupplierOrders struct {
	Active  []SupplierOrder        `json:"active"`
	History []SupplierHistoryEntry `json:"history"`
}

// GetSupplierOrders handles GET /api/v1/suppliers/:supplierID/orders.
func (s *Server) GetSupplierOrders(ctx echo.Context) error {
	supplierID, err := pathUUID(ctx, "supplierID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetSupplierOrdersQuery(supplierID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.getSupplierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := SupplierOrders{
		Active:  make([]SupplierOrder, len(result.Active)),
		History: make([]SupplierHistoryEntry, len(result.History)),
	}
	for i, ord := range result.Active {
		response.Active[i] = SupplierOrder{
			ID:            ord.ID.String(),
			CustomerID:    ord.CustomerID.String(),
			Address:       ord.Address,
			Quantity:      ord.Quantity,
			AcceptedPrice: ord.AcceptedPrice,
			Status:        ord.Status,
			Deadline:      ord.Deadline,
		}
	}
	for i, entry := range result.History {
		response.History[i] = SupplierHistoryEntry{
			OrderID:    entry.OrderID.String(),
			Outcome:    entry.Outcome,
			Price:      entry.Price,
			Quantity:   entry.Quantity,
			Rating:     entry.Rating,
			ArchivedAt: entry.ArchivedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// DriverOfferStatus is one roster driver's derived standing on an order.
type DriverOfferStatus struct {
	DriverID string `json:"driverId"`
	Status   string `json:"status"`
}

// GetDriverOfferStatuses handles
// GET /api/v1/suppliers/:supplierID/orders/:orderID/driver-statuses.
func (s *Server) GetDriverOfferStatuses(ctx echo.Context) error {
	supplierID, err := pathUUID(ctx, "supplierID")
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverOfferStatusesQuery(supplierID, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	statuses, err := s.getDriverOfferStatusesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]DriverOfferStatus, len(statuses))
	for i, st := range statuses {
		response[i] = DriverOfferStatus{
			DriverID: st.DriverID.String(),
			Status:   st.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
