package http

import (
	"context"
	"net/http"

	"storeadmin/internal/core/application/usecases/commands"
	"storeadmin/internal/core/application/usecases/queries"
	"storeadmin/internal/core/domain/model/kernel"
	"storeadmin/internal/core/domain/model/notification"
	"storeadmin/internal/core/domain/model/order"
	"storeadmin/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

type (
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	DeleteProductHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) (queries.ListOrdersQueryResponse, error)
	}
	GetOrderDetailsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.GetOrderDetailsQueryResponse, error)
		Describe(o *order.Order) (queries.GetOrderDetailsQueryResponse, error)
	}
	ListProductsHandler interface {
		Handle(ctx context.Context, query queries.ListProductsQuery) (queries.ListProductsQueryResponse, error)
	}
	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) (queries.ListCustomersQueryResponse, error)
	}
	DashboardSummaryHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardSummaryQuery) (queries.DashboardSummary, error)
	}
	ListNotificationsHandler interface {
		Handle(ctx context.Context, query queries.ListNotificationsQuery) ([]notification.Notification, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ChangeOrderStatus ChangeOrderStatusHandler
	DeleteProduct     DeleteProductHandler
	ListOrders        ListOrdersHandler
	GetOrderDetails   GetOrderDetailsHandler
	ListProducts      ListProductsHandler
	ListCustomers     ListCustomersHandler
	DashboardSummary  DashboardSummaryHandler
	ListNotifications ListNotificationsHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return writeError(ctx, err, http.StatusBadRequest, "Invalid status filter")
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(deref(params.Search), status)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid order query")
	}

	resp, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	out := servers.OrderList{
		Orders:       make([]servers.OrderSummary, len(resp.Orders)),
		Shown:        resp.Shown,
		Total:        resp.Total,
		StatusCounts: make(map[string]int, len(resp.StatusCounts)),
	}
	for i, o := range resp.Orders {
		out.Orders[i] = servers.OrderSummary{
			Id:        o.ID.String(),
			Customer:  o.Customer,
			Date:      o.PlacedAt,
			Total:     o.Total.String(),
			Status:    servers.OrderStatus(o.Status.String()),
			Badge:     toBadge(o.Badge),
			ItemCount: o.ItemCount,
			Version:   o.Version,
		}
	}
	for st, n := range resp.StatusCounts {
		out.StatusCounts[st.String()] = n
	}

	return ctx.JSON(http.StatusOK, out)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	details, err := s.orderDetails(ctx.Request().Context(), orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to retrieve order")
	}
	return ctx.JSON(http.StatusOK, details)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	id, err := kernel.NewID(orderID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid order id")
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid status")
	}
	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid status change")
	}

	updated, err := s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err, http.StatusBadGateway, "Failed to update order status")
	}

	d, err := s.h.GetOrderDetails.Describe(updated)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to describe order")
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(d))
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	resp, err := s.h.ListProducts.Handle(ctx.Request().Context(), queries.NewListProductsQuery(deref(params.Search)))
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to retrieve products")
	}

	out := servers.ProductList{
		Products: make([]servers.Product, len(resp.Products)),
		Shown:    resp.Shown,
		Total:    resp.Total,
	}
	for i, p := range resp.Products {
		out.Products[i] = servers.Product{
			Id:           p.ID.String(),
			Name:         p.Name,
			Description:  optional(p.Description),
			Price:        p.Price.String(),
			Quantity:     p.Quantity,
			Category:     optional(p.Category),
			Image:        optional(p.Image),
			Availability: servers.ProductAvailability(p.Availability),
			LowStock:     p.LowStock,
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

// DeleteProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) DeleteProduct(ctx echo.Context, productID string) error {
	id, err := kernel.NewID(productID)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid product id")
	}
	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid product id")
	}

	if err = s.h.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err, http.StatusBadGateway, "Failed to delete product")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context, params servers.ListCustomersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListCustomersQuery(deref(params.Search), status)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid customer query")
	}

	resp, err := s.h.ListCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to retrieve customers")
	}

	out := servers.CustomerList{
		Customers: make([]servers.Customer, len(resp.Customers)),
		Shown:     resp.Shown,
		Total:     resp.Total,
	}
	for i, c := range resp.Customers {
		out.Customers[i] = servers.Customer{
			Id:            c.ID.String(),
			Name:          c.Name,
			Initials:      c.Initials,
			Email:         c.Email,
			RegisteredAt:  c.RegisteredAt,
			TotalSpending: c.TotalSpending.String(),
			Status:        servers.CustomerStatus(c.Status),
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	summary, err := s.h.DashboardSummary.Handle(ctx.Request().Context(), queries.NewGetDashboardSummaryQuery())
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to compute dashboard")
	}

	return ctx.JSON(http.StatusOK, servers.DashboardSummary{
		TotalProducts:  summary.TotalProducts,
		TotalStock:     summary.TotalStock,
		LowStockAlerts: summary.LowStockAlerts,
		TotalSales:     summary.TotalSales.String(),
		TotalOrders:    summary.TotalOrders,
		TotalCustomers: summary.TotalCustomers,
		ComputedAt:     summary.ComputedAt,
	})
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context, params servers.ListNotificationsParams) error {
	var limit int
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListNotificationsQuery(limit)
	if err != nil {
		return writeError(ctx, err, http.StatusBadRequest, "Invalid limit")
	}

	recent, err := s.h.ListNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err, http.StatusInternalServerError, "Failed to retrieve notifications")
	}

	out := make([]servers.Notification, len(recent))
	for i, n := range recent {
		out[i] = servers.Notification{
			Id:          n.ID.String(),
			Kind:        servers.NotificationKind(n.Kind),
			Title:       n.Title,
			Description: optional(n.Description),
			Cause:       optional(n.Cause),
			CreatedAt:   n.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

func (s *Server) orderDetails(ctx context.Context, orderID string) (servers.OrderDetails, error) {
	id, err := kernel.NewID(orderID)
	if err != nil {
		return servers.OrderDetails{}, err
	}
	query, err := queries.NewGetOrderDetailsQuery(id)
	if err != nil {
		return servers.OrderDetails{}, err
	}

	d, err := s.h.GetOrderDetails.Handle(ctx, query)
	if err != nil {
		return servers.OrderDetails{}, err
	}
	return toOrderDetails(d), nil
}

func toOrderDetails(d queries.GetOrderDetailsQueryResponse) servers.OrderDetails {
	lines := make([]servers.OrderLine, len(d.Lines))
	for i, l := range d.Lines {
		lines[i] = servers.OrderLine{
			ProductId:   l.ProductID.String(),
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price.String(),
			LineTotal:   l.LineTotal.String(),
		}
	}

	segments := make([]servers.ProgressSegment, len(d.Progress.Segments))
	for i, seg := range d.Progress.Segments {
		segments[i] = servers.ProgressSegment{Label: seg.Label, Filled: seg.Filled}
	}

	return servers.OrderDetails{
		Id:       d.ID.String(),
		Customer: d.Customer,
		Date:     d.PlacedAt,
		Total:    d.Total.String(),
		Status:   servers.OrderStatus(d.Status.String()),
		Version:  d.Version,
		Badge:    toBadge(d.Badge),
		Progress: servers.Progress{
			Position:  d.Progress.Position,
			Segments:  segments,
			Cancelled: d.Progress.Cancelled,
		},
		Items: lines,
	}
}
