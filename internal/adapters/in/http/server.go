// Package http exposes the local ordering API. Status values cross this
// boundary as the localized labels only; canonical status names never leave
// the process.
package http

import (
	"errors"
	"net/http"
	"time"

	"homebar/internal/core/application/usecases/commands"
	"homebar/internal/core/application/usecases/queries"
	"homebar/internal/core/domain/model/kernel"
	"homebar/internal/core/domain/model/order"
	"homebar/internal/core/ports"
	"homebar/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	cancelQueuedOrderHandler commands.CancelQueuedOrderCommandHandler

	// Query handlers
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler
	getAllCocktailsHandler queries.GetAllCocktailsQueryHandler
	getCocktailHandler     queries.GetCocktailQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	cancelQueuedOrderHandler commands.CancelQueuedOrderCommandHandler,
	getOrdersByUserHandler queries.GetOrdersByUserQueryHandler,
	getAllCocktailsHandler queries.GetAllCocktailsQueryHandler,
	getCocktailHandler queries.GetCocktailQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		cancelQueuedOrderHandler: cancelQueuedOrderHandler,
		getOrdersByUserHandler:   getOrdersByUserHandler,
		getAllCocktailsHandler:   getAllCocktailsHandler,
		getCocktailHandler:       getCocktailHandler,
	}
}

// RegisterRoutes binds all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	e.POST("/orders", s.PlaceOrder)
	e.GET("/orders", s.GetOrders)
	e.PATCH("/orders/:id", s.ChangeOrderStatus)
	e.DELETE("/orders/:id", s.CancelOrder)

	e.GET("/cocktails", s.GetCocktails)
	e.GET("/cocktails/:id", s.GetCocktail)
}

type errorResponse struct {
	Error string `json:"error"`
}

type placeOrderRequest struct {
	UserID     string `json:"userId"`
	CocktailID string `json:"cocktailId"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

type orderResponse struct {
	ID                    string    `json:"id"`
	UserID                string    `json:"userId"`
	CocktailID            string    `json:"cocktailId"`
	Status                string    `json:"status"`
	NotificationMessageID *int64    `json:"notificationMessageId"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type orderListItemResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	CocktailID   string    `json:"cocktailId"`
	CocktailName string    `json:"cocktailName"`
	Strength     int       `json:"strength"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ingredientResponse struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

type cocktailResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	PhotoURL    string               `json:"photoUrl"`
	Description string               `json:"description"`
	Ingredients []ingredientResponse `json:"ingredients"`
	Recipe      string               `json:"recipe"`
	Strength    int                  `json:"strength"`
}

func orderToResponse(o *order.Order) orderResponse {
	return orderResponse{
		ID:                    o.ID().String(),
		UserID:                o.UserID(),
		CocktailID:            o.CocktailID().String(),
		Status:                o.Status().Label(),
		NotificationMessageID: o.NotificationMessageID(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
	}
}

func cocktailToResponse(c queries.CocktailResponse) cocktailResponse {
	ingredients := make([]ingredientResponse, 0, len(c.Ingredients))
	for _, ing := range c.Ingredients {
		ingredients = append(ingredients, ingredientResponse{Name: ing.Name, Amount: ing.Amount})
	}

	return cocktailResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		PhotoURL:    c.PhotoURL,
		Description: c.Description,
		Ingredients: ingredients,
		Recipe:      c.Recipe,
		Strength:    c.Strength,
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// PlaceOrder handles POST /orders - places a new order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	if req.UserID == "" || req.CocktailID == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "userId and cocktailId are required"})
	}

	cocktailID, err := kernel.UUIDFromString(req.CocktailID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid cocktailId"})
	}

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), req.UserID, cocktailID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

// GetOrders handles GET /orders?userId= - one customer's order history.
func (s *Server) GetOrders(ctx echo.Context) error {
	userID := ctx.QueryParam("userId")
	if userID == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "userId is required"})
	}

	query, err := queries.NewGetOrdersByUserQuery(userID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	orders, err := s.getOrdersByUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]orderListItemResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderListItemResponse{
			ID:           o.ID.String(),
			UserID:       o.UserID,
			CocktailID:   o.CocktailID.String(),
			CocktailName: o.CocktailName,
			Strength:     o.Strength,
			Status:       o.StatusLabel,
			CreatedAt:    o.CreatedAt,
			UpdatedAt:    o.UpdatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PATCH /orders/:id - applies a lifecycle transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid order id"})
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	}

	if req.Status == "" {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "status is required"})
	}

	target, err := order.ParseStatusLabel(req.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid status"})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return s.mapError(ctx, err)
	}

	updated, err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CancelOrder handles DELETE /orders/:id - cancels a still-queued order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid order id"})
	}

	cmd, err := commands.NewCancelQueuedOrderCommand(orderID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	cancelled, err := s.cancelQueuedOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(cancelled))
}

// GetCocktails handles GET /cocktails - the full menu.
func (s *Server) GetCocktails(ctx echo.Context) error {
	cocktails, err := s.getAllCocktailsHandler.Handle(ctx.Request().Context(), queries.NewGetAllCocktailsQuery())
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]cocktailResponse, 0, len(cocktails))
	for _, c := range cocktails {
		response = append(response, cocktailToResponse(c))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCocktail handles GET /cocktails/:id - one menu entry.
func (s *Server) GetCocktail(ctx echo.Context) error {
	cocktailID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid cocktail id"})
	}

	query, err := queries.NewGetCocktailQuery(cocktailID)
	if err != nil {
		return s.mapError(ctx, err)
	}

	c, err := s.getCocktailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cocktailToResponse(c))
}

// mapError translates use case rejections into HTTP status codes.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, ports.ErrOrderStatusConflict),
		errors.Is(err, commands.ErrOrderNotCancellable),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
