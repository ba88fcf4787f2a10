package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"shopfront/api/internal/cache"
	"shopfront/api/internal/config"
	"shopfront/api/internal/middleware"
	"shopfront/api/internal/models"
	"shopfront/api/internal/repository"
	"shopfront/api/internal/service"
)

// ProductStore is the slice of the product repository the handlers need.
type ProductStore interface {
	Create(ctx context.Context, product models.Product) error
	List(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (models.Product, error)
	Update(ctx context.Context, product models.Product) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

// CatalogCache fronts the public product listing.
type CatalogCache interface {
	GetList(ctx context.Context) ([]models.Product, bool)
	SetList(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

type HandlerSet struct {
	log          zerolog.Logger
	cfg          *config.AppConfig
	authService  *service.AuthService
	orderService *service.OrderService
	products     ProductStore
	productCache CatalogCache
	db           *pgxpool.Pool
	cache        *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cacheClient *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	return HandlerSet{
		log:          log,
		cfg:          cfg,
		authService:  service.NewAuthService(userRepo, cfg, log),
		orderService: service.NewOrderService(orderRepo, log),
		products:     productRepo,
		productCache: cache.NewProductCache(cacheClient, cfg.Cache.ProductTTL, log),
		db:           db,
		cache:        cacheClient,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	router.GET("/products", h.ListProducts)
	router.GET("/products/:id", h.GetProduct)

	router.POST("/register", h.RegisterUser)
	router.POST("/login", h.Login)

	router.POST("/orders", h.CreateOrder)
	// Status updates stay public so customers can cancel or track by order
	// id; admin privilege guards only list and delete.
	router.PUT("/orders/:id", h.UpdateOrderStatus)

	protected := router.Group("")
	protected.Use(
		middleware.Auth(h.cfg),
		middleware.RequireAdmin(),
	)
	protected.POST("/products", h.CreateProduct)
	protected.PUT("/products/:id", h.UpdateProduct)
	protected.DELETE("/products/:id", h.DeleteProduct)
	protected.GET("/orders", h.ListOrders)
	protected.DELETE("/orders/:id", h.DeleteOrder)

	admin := router.Group("/admin")
	admin.Use(
		middleware.Auth(h.cfg),
		middleware.RequireAdmin(),
	)
	admin.POST("/create-user", h.CreateUser)
	admin.PUT("/users/:id/role", h.SetUserRole)
}
