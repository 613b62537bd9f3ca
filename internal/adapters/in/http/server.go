// Package http provides the echo HTTP adapter. It translates requests into
// commands and queries, and domain errors into the JSON error envelope.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/core/application/usecases/queries"
	"orderdelivery/internal/core/domain/model/order"
	"orderdelivery/internal/core/domain/model/proof"
	"orderdelivery/internal/core/domain/services"
	"orderdelivery/internal/core/ports"
	"orderdelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Error is the JSON error envelope returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Order is the JSON representation of an order.
type Order struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	DelivererID   *int64 `json:"delivererId"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
}

// OrderDetail is the JSON representation of one order line.
type OrderDetail struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"orderId"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// DeliveryProof is the JSON representation of a proof record.
type DeliveryProof struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	DelivererID int64  `json:"delivererId"`
	ImageURL    string `json:"imageUrl"`
	Notes       string `json:"notes"`
}

// Deliverer is the JSON representation of a deliverer account.
type Deliverer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	assignDelivererHandler      commands.AssignDelivererCommandHandler
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler
	uploadDeliveryProofHandler  commands.UploadDeliveryProofCommandHandler
	createOrderHandler          commands.CreateOrderCommandHandler
	updateOrderHandler          commands.UpdateOrderCommandHandler
	deleteOrderHandler          commands.DeleteOrderCommandHandler

	getDeliverersHandler      queries.GetDeliverersQueryHandler
	getOrdersHandler          queries.GetOrdersQueryHandler
	getOrderByIDHandler       queries.GetOrderByIDQueryHandler
	getUserOrdersHandler      queries.GetUserOrdersQueryHandler
	getOrderDetailsHandler    queries.GetOrderDetailsQueryHandler
	getDelivererOrdersHandler queries.GetDelivererOrdersQueryHandler

	identity DelivererIdentity

	// strictOwnership reports ownership failures as 403. The original
	// service folded them into 404 so a deliverer cannot probe which order
	// IDs exist; that remains the default.
	strictOwnership bool
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	assignDelivererHandler commands.AssignDelivererCommandHandler,
	updateDeliveryStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	uploadDeliveryProofHandler commands.UploadDeliveryProofCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getDeliverersHandler queries.GetDeliverersQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getUserOrdersHandler queries.GetUserOrdersQueryHandler,
	getOrderDetailsHandler queries.GetOrderDetailsQueryHandler,
	getDelivererOrdersHandler queries.GetDelivererOrdersQueryHandler,
	identity DelivererIdentity,
	strictOwnership bool,
) *Server {
	return &Server{
		assignDelivererHandler:      assignDelivererHandler,
		updateDeliveryStatusHandler: updateDeliveryStatusHandler,
		uploadDeliveryProofHandler:  uploadDeliveryProofHandler,
		createOrderHandler:          createOrderHandler,
		updateOrderHandler:          updateOrderHandler,
		deleteOrderHandler:          deleteOrderHandler,
		getDeliverersHandler:        getDeliverersHandler,
		getOrdersHandler:            getOrdersHandler,
		getOrderByIDHandler:         getOrderByIDHandler,
		getUserOrdersHandler:        getUserOrdersHandler,
		getOrderDetailsHandler:      getOrderDetailsHandler,
		getDelivererOrdersHandler:   getDelivererOrdersHandler,
		identity:                    identity,
		strictOwnership:             strictOwnership,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(middleware.CORS())

	v1 := e.Group("/api/v1")

	v1.GET("/deliverers", s.GetDeliverers)
	v1.GET("/deliverers/:delivererId/orders", s.GetDelivererOrders)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:orderId", s.GetOrderByID)
	v1.PUT("/orders/:orderId", s.UpdateOrder)
	v1.DELETE("/orders/:orderId", s.DeleteOrder)
	v1.GET("/orders/:orderId/details", s.GetOrderDetails)
	v1.GET("/users/:userId/orders", s.GetUserOrders)

	v1.POST("/orders/:orderId/assign", s.AssignDeliverer)
	v1.POST("/orders/:orderId/delivery-status", s.UpdateDeliveryStatus)
	v1.POST("/orders/:orderId/delivery-proof", s.UploadDeliveryProof)
}

// GetDeliverers handles GET /api/v1/deliverers.
func (s *Server) GetDeliverers(c echo.Context) error {
	deliverers, err := s.getDeliverersHandler.Handle(c.Request().Context(), queries.NewGetDeliverersQuery())
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]Deliverer, len(deliverers))
	for i, d := range deliverers {
		response[i] = Deliverer{ID: d.ID, Name: d.Name, Email: d.Email}
	}
	return c.JSON(http.StatusOK, response)
}

// GetDelivererOrders handles GET /api/v1/deliverers/{delivererId}/orders.
func (s *Server) GetDelivererOrders(c echo.Context) error {
	delivererID, err := pathID(c, "delivererId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetDelivererOrdersQuery(delivererID)
	if err != nil {
		return s.writeError(c, err)
	}

	orders, err := s.getDelivererOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromReadModel(orders))
}

type createOrderRequest struct {
	UserID        int64              `json:"userId"`
	Address       string             `json:"address"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"paymentStatus"`
	OrderDetails  []orderDetailInput `json:"orderDetails"`
}

type orderDetailInput struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	details := make([]order.Detail, 0, len(req.OrderDetails))
	for _, line := range req.OrderDetails {
		detail, err := order.NewDetail(line.ProductID, line.Quantity, line.Price)
		if err != nil {
			return s.writeError(c, err)
		}
		details = append(details, detail)
	}

	cmd, err := commands.NewCreateOrderCommand(
		req.UserID, req.Address, order.Status(req.Status), req.PaymentStatus, details)
	if err != nil {
		return s.writeError(c, err)
	}

	created, err := s.createOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	orders, err := s.getOrdersHandler.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromReadModel(orders))
}

// GetOrderByID handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderByID(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	found, err := s.getOrderByIDHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromReadModel(found))
}

type updateOrderRequest struct {
	Address string `json:"address"`
	Status  string `json:"status"`
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}. This is the legacy
// generic update: the status moves wherever the caller says, bypassing the
// lifecycle table, but the value must be one of the defined statuses.
func (s *Server) UpdateOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateOrderRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, req.Address, order.Status(req.Status))
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.updateOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	if err = s.deleteOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrderDetails handles GET /api/v1/orders/{orderId}/details.
func (s *Server) GetOrderDetails(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetOrderDetailsQuery(orderID)
	if err != nil {
		return s.writeError(c, err)
	}

	details, err := s.getOrderDetailsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}

	response := make([]OrderDetail, len(details))
	for i, d := range details {
		response[i] = OrderDetail{
			ID:        d.ID,
			OrderID:   d.OrderID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     d.Price,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetUserOrders handles GET /api/v1/users/{userId}/orders.
func (s *Server) GetUserOrders(c echo.Context) error {
	userID, err := pathID(c, "userId")
	if err != nil {
		return s.writeError(c, err)
	}

	query, err := queries.NewGetUserOrdersQuery(userID)
	if err != nil {
		return s.writeError(c, err)
	}

	orders, err := s.getUserOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, ordersFromReadModel(orders))
}

type assignDelivererRequest struct {
	DelivererID int64 `json:"delivererId"`
}

// AssignDeliverer handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignDeliverer(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req assignDelivererRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignDelivererCommand(orderID, req.DelivererID)
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.assignDelivererHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

type updateDeliveryStatusRequest struct {
	DelivererID int64  `json:"delivererId"`
	Status      string `json:"status"`
}

// UpdateDeliveryStatus handles POST /api/v1/orders/{orderId}/delivery-status.
func (s *Server) UpdateDeliveryStatus(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var req updateDeliveryStatusRequest
	if err = c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	delivererID, err := s.identity.Resolve(c, req.DelivererID)
	if err != nil {
		return s.writeError(c, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(orderID, delivererID, order.Status(req.Status))
	if err != nil {
		return s.writeError(c, err)
	}

	updated, err := s.updateDeliveryStatusHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, orderFromAggregate(updated))
}

type uploadProofResponse struct {
	DeliveryProof DeliveryProof `json:"deliveryProof"`
	Order         Order         `json:"order"`
}

// UploadDeliveryProof handles POST /api/v1/orders/{orderId}/delivery-proof.
// Expects multipart form data with an `image` file part plus optional
// `notes` and `delivererId` fields.
func (s *Server) UploadDeliveryProof(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return s.writeError(c, err)
	}

	var bodyDelivererID int64
	if raw := c.FormValue("delivererId"); raw != "" {
		if bodyDelivererID, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return s.writeError(c, errs.NewValueIsInvalidErrorWithCause("delivererId", err))
		}
	}

	delivererID, err := s.identity.Resolve(c, bodyDelivererID)
	if err != nil {
		return s.writeError(c, err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return s.writeError(c, errs.NewValueIsRequiredErrorWithCause("image", err))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return s.writeError(c, err)
	}
	defer file.Close()

	upload := ports.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	}

	cmd, err := commands.NewUploadDeliveryProofCommand(orderID, delivererID, c.FormValue("notes"), upload)
	if err != nil {
		return s.writeError(c, err)
	}

	record, updated, err := s.uploadDeliveryProofHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, uploadProofResponse{
		DeliveryProof: proofFromAggregate(record),
		Order:         orderFromAggregate(updated),
	})
}

// writeError maps domain errors onto the HTTP error envelope. Unrecognized
// errors become a generic 500 so internals never leak to clients.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotAssignedToDeliverer):
		if s.strictOwnership {
			return c.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Order is not assigned to this deliverer",
			})
		}
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(http.StatusRequestEntityTooLarge, Error{
			Code:    http.StatusRequestEntityTooLarge,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectIsStale):
		return c.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order was modified concurrently, retry with fresh state",
		})
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(name,
			errors.New("path parameter must be a positive integer"))
	}
	return id, nil
}

func orderFromAggregate(aggregate *order.Order) Order {
	return Order{
		ID:            aggregate.ID(),
		UserID:        aggregate.UserID(),
		DelivererID:   aggregate.Deliverer(),
		Address:       aggregate.Address(),
		Status:        aggregate.Status().String(),
		PaymentStatus: aggregate.PaymentStatus(),
		PaymentMethod: aggregate.PaymentMethod(),
	}
}

func orderFromReadModel(m queries.OrderResponse) Order {
	return Order{
		ID:            m.ID,
		UserID:        m.UserID,
		DelivererID:   m.DelivererID,
		Address:       m.Address,
		Status:        m.Status,
		PaymentStatus: m.PaymentStatus,
		PaymentMethod: m.PaymentMethod,
	}
}

func ordersFromReadModel(models []queries.OrderResponse) []Order {
	response := make([]Order, len(models))
	for i, m := range models {
		response[i] = orderFromReadModel(m)
	}
	return response
}

func proofFromAggregate(aggregate *proof.Proof) DeliveryProof {
	return DeliveryProof{
		ID:          aggregate.ID(),
		OrderID:     aggregate.OrderID(),
		DelivererID: aggregate.DelivererID(),
		ImageURL:    aggregate.ImageRef(),
		Notes:       aggregate.Notes(),
	}
}
