package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sales_tracker/internal/auth"
	"sales_tracker/internal/catalog"
	"sales_tracker/internal/config"
	"sales_tracker/internal/sales"
)

// InitRoutes registers all sales endpoints on the given Gin engine. It wires
// the catalog client, token validator, service, and handler from the
// supplied configuration, then binds each HTTP method and path to the
// appropriate handler function.
func InitRoutes(e *gin.Engine, cfg config.Config, storage sales.Storage, logger *zap.Logger) {
	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey, logger)
	salesService := sales.NewService(storage, catalogClient, logger)
	salesHandler := NewSalesHandler(salesService, logger)
	validator := auth.NewValidator(cfg.JWTSecret)

	e.Use(cors.Default())
	e.Use(RequestID())

	authorized := e.Group("/", AuthRequired(validator, logger))
	authorized.GET("/sales", salesHandler.handleListSales)
	authorized.POST("/sales", salesHandler.handleCreateSale)

	e.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}
