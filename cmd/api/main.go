package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-stockroom/internal/handler"
	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool for production rollouts)
	if err := db.AutoMigrate(
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.Purchase{},
		&model.Sale{},
	); err != nil {
		log.Fatal("Auto migration failed: ", err)
	}

	// 3. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	movementRepo := repository.NewMovementRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)

	productService := service.NewProductService(productRepo)
	stockService := service.NewStockService(productRepo, movementRepo, db)
	dashService := service.NewDashboardService(productRepo)

	productHandler := handler.NewProductHandler(productService)
	stockHandler := handler.NewStockHandler(stockService)
	dashHandler := handler.NewDashboardHandler(dashService)
	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)

	// 4. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stockroom v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// 5. Routes
	api := app.Group("/api/v1")

	// Dashboard
	api.Get("/dashboard", dashHandler.GetDashboardStats)

	// Products
	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	// Stock movements
	api.Post("/products/:id/purchase", stockHandler.Purchase)
	api.Post("/products/:id/sale", stockHandler.Sale)
	api.Get("/purchases", stockHandler.GetPurchases)
	api.Get("/sales", stockHandler.GetSales)

	// Categories
	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)
	api.Get("/categories/:id", categoryHandler.GetCategory)
	api.Put("/categories/:id", categoryHandler.UpdateCategory)
	api.Delete("/categories/:id", categoryHandler.DeleteCategory)

	// Suppliers
	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Get("/suppliers/:id", supplierHandler.GetSupplier)
	api.Put("/suppliers/:id", supplierHandler.UpdateSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	// 6. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
