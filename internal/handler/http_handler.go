package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/nikolayk812/storefront/internal/repository"
	"go.uber.org/zap"
)

// CatalogState reports the current catalog load state.
type CatalogState interface {
	State() catalog.State
}

type HTTPHandler struct {
	catalog CatalogState
	carts   port.CartRepository
	log     *zap.Logger
}

func NewHTTPHandler(state CatalogState, carts port.CartRepository, logger *zap.Logger) *HTTPHandler {
	return &HTTPHandler{
		catalog: state,
		carts:   carts,
		log:     logger,
	}
}

func (h *HTTPHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(h.log))

	router.GET("/health", h.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/categories", h.ListCategories)
		api.GET("/products", h.ListProducts)

		api.POST("/sessions", h.CreateSession)
		api.DELETE("/sessions/:id", h.DeleteSession)

		api.GET("/sessions/:id/cart", h.GetCart)
		api.DELETE("/sessions/:id/cart", h.ClearCart)
		api.POST("/sessions/:id/cart/items", h.AddItem)
		api.DELETE("/sessions/:id/cart/items/:productID", h.RemoveItem)
	}

	return router
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HTTPHandler) ListCategories(c *gin.Context) {
	categories := domain.Categories()

	result := make([]CategoryResponse, 0, len(categories))
	for _, name := range categories {
		result = append(result, CategoryResponse{Name: name, Label: domain.Label(name)})
	}

	c.JSON(http.StatusOK, result)
}

func (h *HTTPHandler) ListProducts(c *gin.Context) {
	products, ok := h.products(c)
	if !ok {
		return
	}

	category := c.DefaultQuery("category", domain.CategoryAll)

	c.JSON(http.StatusOK, mapProductsToResponse(domain.Filter(products, category)))
}

func (h *HTTPHandler) CreateSession(c *gin.Context) {
	sessionID := uuid.NewString()

	if _, err := h.carts.CreateCart(c.Request.Context(), sessionID); err != nil {
		h.writeError(c, err)
		return
	}

	h.log.Debug("session started", zap.String("session", sessionID))
	c.JSON(http.StatusCreated, SessionResponse{SessionID: sessionID})
}

func (h *HTTPHandler) DeleteSession(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	deleted, err := h.carts.DeleteCart(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		return
	}

	h.log.Debug("session ended", zap.String("session", sessionID))
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) GetCart(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	cart, err := h.carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapCartToResponse(cart))
}

func (h *HTTPHandler) ClearCart(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	if err := h.carts.ClearCart(c.Request.Context(), sessionID); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) AddItem(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	products, ok := h.products(c)
	if !ok {
		return
	}

	product, found := findProduct(products, domain.ProductID(req.ProductID))
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	entry, err := h.carts.AddItem(c.Request.Context(), sessionID, product)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, AddItemResponse{ProductID: int(entry.Product.ID), Quantity: entry.Quantity})
}

func (h *HTTPHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := sessionParam(c)
	if !ok {
		return
	}

	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product ID"})
		return
	}

	quantity, err := h.carts.RemoveItem(c.Request.Context(), sessionID, domain.ProductID(productID))
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, RemoveItemResponse{ProductID: productID, Quantity: quantity})
}

// products writes the loading or failure response and reports false unless
// the catalog is loaded.
func (h *HTTPHandler) products(c *gin.Context) ([]domain.Product, bool) {
	switch state := h.catalog.State().(type) {
	case catalog.Loaded:
		return state.Products, true
	case catalog.Failed:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: state.Message})
	default:
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "catalog is loading"})
	}
	return nil, false
}

func (h *HTTPHandler) writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, repository.ErrCartNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
	case errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not in cart"})
	case errors.Is(err, repository.ErrCartExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "session already exists"})
	default:
		h.log.Error("cart operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func sessionParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if err := uuid.Validate(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return "", false
	}
	return id, true
}

func findProduct(products []domain.Product, id domain.ProductID) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
