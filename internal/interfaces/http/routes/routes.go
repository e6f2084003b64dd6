// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/cart"
	"github.com/your-org/motoparts-backend/internal/interfaces/http/handlers"
	"gorm.io/gorm"
)

// SetupCatalogRoutes sets up storefront catalog routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	companies := rg.Group("/companies")
	{
		companies.GET("", catalogHandler.ListCompanies)
		companies.GET("/:id", catalogHandler.GetCompany)
		companies.GET("/:id/models", catalogHandler.ListBikeModels)
	}

	products := rg.Group("/products")
	{
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.GET("/:id/related", catalogHandler.GetRelatedProducts)
	}
}

// SetupCartRoutes sets up session cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, carts *cart.Manager, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(db, carts, cfg)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

// SetupCheckoutRoutes sets up checkout routes
func SetupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, carts *cart.Manager, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, carts, cfg)

	rg.POST("/checkout", orderHandler.Checkout)
}

// SetupAdminRoutes sets up the back office routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, carts *cart.Manager, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	stockHandler := handlers.NewStockHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, carts, cfg)
	borrowerHandler := handlers.NewBorrowerHandler(db, cfg)
	transactionHandler := handlers.NewTransactionHandler(db, cfg)
	receiptHandler := handlers.NewReceiptHandler(db, cfg)

	admin := rg.Group("/admin")
	{
		// Catalog management
		admin.POST("/companies", catalogHandler.CreateCompany)
		admin.PUT("/companies/:id", catalogHandler.UpdateCompany)
		admin.DELETE("/companies/:id", catalogHandler.DeleteCompany)

		admin.POST("/models", catalogHandler.CreateBikeModel)
		admin.DELETE("/models/:id", catalogHandler.DeleteBikeModel)

		admin.POST("/products", catalogHandler.CreateProduct)
		admin.PUT("/products/:id", catalogHandler.UpdateProduct)
		admin.DELETE("/products/:id", catalogHandler.DeleteProduct)

		// Inventory
		admin.GET("/stocks", stockHandler.ListStocks)
		admin.GET("/stocks/:id", stockHandler.GetStock)
		admin.POST("/stocks/purchase", stockHandler.RecordPurchase)
		admin.PUT("/stocks/:id/damage", stockHandler.SetDamage)

		// Orders
		admin.GET("/orders", orderHandler.GetOrders)
		admin.GET("/orders/:id", orderHandler.GetOrder)
		admin.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		admin.POST("/orders/:id/cancel", orderHandler.CancelOrder)
		admin.GET("/orders/:id/receipt", receiptHandler.GenerateReceipt)

		// Borrowers (credit customers)
		admin.GET("/borrowers", borrowerHandler.ListBorrowers)
		admin.GET("/borrowers/dues", borrowerHandler.ListDues)
		admin.GET("/borrowers/:id", borrowerHandler.GetBorrower)
		admin.POST("/borrowers", borrowerHandler.CreateBorrower)
		admin.PUT("/borrowers/:id", borrowerHandler.UpdateBorrower)
		admin.DELETE("/borrowers/:id", borrowerHandler.DeleteBorrower)

		// Transactions and statements
		admin.GET("/transactions", transactionHandler.ListTransactions)
		admin.POST("/transactions/receive", transactionHandler.RecordReceive)
		admin.POST("/transactions/pay", transactionHandler.RecordPay)
		admin.GET("/statements/customer/:id", transactionHandler.GetCustomerStatement)
		admin.GET("/statements/brand-sales/:id", transactionHandler.GetBrandSaleStatement)
		admin.GET("/statements/purchases/:id", transactionHandler.GetPurchaseStatement)
	}
}

// SetupRoutes wires all route groups onto the API router group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, carts *cart.Manager, cfg *config.Config) {
	SetupCatalogRoutes(rg, db, cfg)
	SetupCartRoutes(rg, db, carts, cfg)
	SetupCheckoutRoutes(rg, db, carts, cfg)
	SetupAdminRoutes(rg, db, carts, cfg)
}
