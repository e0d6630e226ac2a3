package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/store"
)

type Server struct {
	router *gin.Engine
	store  *store.Store
	mutate *mutate.Service
	log    *zap.SugaredLogger
}

// NewServer creates a new server instance
func NewServer(st *store.Store, mut *mutate.Service, log *zap.SugaredLogger) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		store:  st,
		mutate: mut,
		log:    log.With("component", "server"),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)

		api.GET("/customers", s.listCustomers)
		api.POST("/customers", s.createCustomer)
		api.POST("/customers/bulk", s.bulkCreateCustomers)

		api.GET("/products", s.listProducts)
		api.POST("/products", s.createProduct)

		api.GET("/orders", s.listOrders)
		api.POST("/orders", s.createOrder)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "crmd",
	})
}

// Router exposes the gin engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
