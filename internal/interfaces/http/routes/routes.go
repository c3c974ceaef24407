// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/interfaces/http/handlers"
	"github.com/your-org/storefront/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires the storefront API surface onto the router group.
// Catalog reads are public; catalog writes and uploads require an admin
// token issued by the login endpoint.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) error {
	productHandler := handlers.NewProductHandler(db, cfg)
	uploadHandler := handlers.NewUploadHandler(cfg)
	authHandler, err := handlers.NewAuthHandler(cfg)
	if err != nil {
		return err
	}

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)

		protected := products.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		protected.Use(middleware.AdminMiddleware())
		{
			protected.POST("", productHandler.CreateProduct)
			protected.PUT("/:id", productHandler.UpdateProduct)
			protected.DELETE("/:id", productHandler.DeleteProduct)
		}
	}

	upload := rg.Group("/upload")
	upload.Use(middleware.AuthMiddleware(cfg))
	upload.Use(middleware.AdminMiddleware())
	{
		upload.POST("", uploadHandler.UploadFile)
	}

	return nil
}
