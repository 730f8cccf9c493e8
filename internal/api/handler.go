package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/store"
	"storefront/internal/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers. The session layer in front of this
// service resolves credentials to a user ID and forwards it in X-User-ID;
// handlers never see passwords or tokens.
type Handler struct {
	catalog   *service.CatalogService
	cart      *service.CartService
	favorites *service.FavoriteService
	orders    *service.OrderService
	users     *service.UserService
	admin     *service.AdminService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *service.CatalogService,
	cart *service.CartService,
	favorites *service.FavoriteService,
	orders *service.OrderService,
	users *service.UserService,
	admin *service.AdminService,
) *Handler {
	return &Handler{
		catalog:   catalog,
		cart:      cart,
		favorites: favorites,
		orders:    orders,
		users:     users,
		admin:     admin,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", h.listCategories)
		v1.GET("/categories/:slug", h.getCategory)
		v1.GET("/products", h.listProducts)
		v1.GET("/products/featured", h.listFeatured)
		v1.GET("/products/search", h.searchProducts)
		v1.GET("/products/:slug", h.getProduct)

		v1.POST("/register", h.register)

		auth := v1.Group("", h.requireUser)
		{
			auth.GET("/cart", h.getCart)
			auth.GET("/cart/count", h.cartCount)
			auth.GET("/cart/summary", h.cartSummary)
			auth.POST("/cart", h.addToCart)
			auth.PUT("/cart", h.setCartQuantity)
			auth.DELETE("/cart/:productID", h.removeFromCart)
			auth.DELETE("/cart", h.clearCart)

			auth.GET("/favorites", h.listFavorites)
			auth.GET("/favorites/count", h.favoritesCount)
			auth.POST("/favorites/toggle", h.toggleFavorite)

			auth.POST("/checkout", h.checkout)
			auth.GET("/orders", h.listOrders)
			auth.GET("/orders/:id", h.getOrder)

			auth.GET("/profile", h.getProfile)
			auth.PATCH("/profile", h.updateProfile)

			auth.POST("/products/:slug/reviews", h.addReview)
		}

		adminGroup := v1.Group("/admin", h.requireUser, h.requireAdmin)
		{
			adminGroup.GET("/stats", h.adminStats)
			adminGroup.GET("/orders", h.adminListOrders)
			adminGroup.POST("/orders/:id/status", h.adminChangeOrderStatus)
			adminGroup.GET("/products", h.adminListProducts)
			adminGroup.POST("/products", h.adminCreateProduct)
			adminGroup.PATCH("/products/:id", h.adminUpdateProduct)
			adminGroup.DELETE("/products/:id", h.adminDeleteProduct)
			adminGroup.GET("/users", h.adminListUsers)
		}
	}
}

const userIDKey = "user_id"

// requireUser resolves the caller's user ID from the X-User-ID header
func (h *Handler) requireUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64)
	if err != nil || userID <= 0 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid user identity"})
		return
	}
	c.Set(userIDKey, userID)
	c.Next()
}

// requireAdmin checks the resolved user's admin flag
func (h *Handler) requireAdmin(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil || !user.IsAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		return
	}
	c.Next()
}

func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "time": time.Now().Unix()})
}

func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "time": time.Now().Unix()})
}

func (h *Handler) listCategories(c *gin.Context) {
	categories, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *Handler) getCategory(c *gin.Context) {
	category, err := h.catalog.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

func (h *Handler) listProducts(c *gin.Context) {
	var f store.ProductFilter

	if v, err := strconv.ParseInt(c.Query("category_id"), 10, 64); err == nil {
		f.CategoryID = &v
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		f.MaxPrice = &v
	}
	f.Search = c.Query("search")
	f.Sort = c.Query("sort")
	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	f.Offset, _ = strconv.Atoi(c.Query("offset"))

	products, err := h.catalog.ListProducts(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
}

func (h *Handler) listFeatured(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.catalog.ListFeatured(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list featured products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) searchProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.catalog.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, reviews, err := h.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product, "reviews": reviews})
}

type cartMutationRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity"`
}

func (h *Handler) getCart(c *gin.Context) {
	lines, err := h.cart.Lines(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lines": lines})
}

func (h *Handler) cartCount(c *gin.Context) {
	count, err := h.cart.Count(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) cartSummary(c *gin.Context) {
	summary, err := h.cart.Summary(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) addToCart(c *gin.Context) {
	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	err := h.cart.Add(c.Request.Context(), c.GetInt64(userIDKey), req.ProductID, req.Quantity)
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}
	h.cartCount(c)
}

func (h *Handler) setCartQuantity(c *gin.Context) {
	var req cartMutationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.cart.SetQuantity(c.Request.Context(), c.GetInt64(userIDKey), req.ProductID, req.Quantity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}
	h.cartCount(c)
}

func (h *Handler) removeFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.cart.Remove(c.Request.Context(), c.GetInt64(userIDKey), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from cart"})
		return
	}
	h.cartCount(c)
}

func (h *Handler) clearCart(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context(), c.GetInt64(userIDKey)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": 0})
}

func (h *Handler) favoritesCount(c *gin.Context) {
	count, err := h.favorites.Count(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *Handler) listFavorites(c *gin.Context) {
	favorites, err := h.favorites.List(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	added, err := h.favorites.Toggle(c.Request.Context(), c.GetInt64(userIDKey), req.ProductID)
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added})
}

func (h *Handler) checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.orders.Checkout(c.Request.Context(), c.GetInt64(userIDKey), &req)
	if errors.Is(err, store.ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty, no order created"})
		return
	}
	if errors.Is(err, store.ErrInsufficientStock) {
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock", "details": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Checkout failed"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListUserOrders(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) getOrder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), orderID)
	if errors.Is(err, service.ErrOrderNotFound) || (err == nil && order.UserID != c.GetInt64(userIDKey)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.users.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if errors.Is(err, service.ErrEmailTaken) {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user_id": id})
}

func (h *Handler) getProfile(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), c.GetInt64(userIDKey))
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) updateProfile(c *gin.Context) {
	var patch models.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.users.UpdateProfile(c.Request.Context(), c.GetInt64(userIDKey), patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) addReview(c *gin.Context) {
	product, _, err := h.catalog.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	var req struct {
		Rating int     `json:"rating" binding:"required"`
		Text   *string `json:"text,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.catalog.AddReview(c.Request.Context(), c.GetInt64(userIDKey), product.ID, req.Rating, req.Text)
	if errors.Is(err, service.ErrInvalidRating) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review_id": id})
}

func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) adminListOrders(c *gin.Context) {
	var status *models.OrderStatus
	if v := c.Query("status"); v != "" {
		s := models.OrderStatus(v)
		status = &s
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	orders, err := h.admin.ListOrders(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handler) adminChangeOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		Status models.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	err = h.admin.ChangeOrderStatus(c.Request.Context(), orderID, req.Status)
	if errors.Is(err, service.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if errors.Is(err, service.ErrInvalidTransition) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change order status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) adminListProducts(c *gin.Context) {
	products, err := h.admin.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) adminCreateProduct(c *gin.Context) {
	var req store.NewProduct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.admin.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product_id": id})
}

func (h *Handler) adminUpdateProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	err = h.admin.UpdateProduct(c.Request.Context(), productID, patch)
	if errors.Is(err, service.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": true})
}

func (h *Handler) adminDeleteProduct(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.admin.DeleteProduct(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) adminListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
