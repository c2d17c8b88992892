package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"hardtrack/internal/handler"
	"hardtrack/internal/middleware"
	"hardtrack/internal/model"
	"hardtrack/internal/service"
	"hardtrack/internal/store"
	"hardtrack/internal/ws"
	"hardtrack/pkg/storage"

	"github.com/gofiber/contrib/websocket"
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

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	inventoryPath := filepath.Join(dataDir, "inventory_data.json")
	ledgerPath := filepath.Join(dataDir, "transactions.json")
	usersPath := filepath.Join(dataDir, "users.json")
	markerPath := filepath.Join(dataDir, "checkout.commit")

	// 2. Finish or discard any checkout interrupted by a crash before
	// the stores read their documents.
	if err := storage.Recover(markerPath, inventoryPath, ledgerPath); err != nil {
		log.Fatal("Failed to recover pending commit: ", err)
	}

	// 3. Open Stores
	inventoryStore, err := store.OpenInventoryStore(inventoryPath)
	if err != nil {
		log.Fatal("Failed to open inventory store: ", err)
	}
	ledgerStore, err := store.OpenLedgerStore(ledgerPath)
	if err != nil {
		log.Fatal("Failed to open ledger store: ", err)
	}
	userStore, err := store.OpenUserStore(usersPath)
	if err != nil {
		log.Fatal("Failed to open user store: ", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	authService := service.NewAuthService(userStore)
	invService := service.NewInventoryService(inventoryStore, wsHub)
	cartService := service.NewCartService(inventoryStore)
	checkoutService := service.NewCheckoutService(cartService, inventoryStore, ledgerStore, markerPath, wsHub)
	reportService := service.NewReportService(inventoryStore, ledgerStore)

	// 6. Seed default admin (create-if-absent, never overwrites)
	if err := authService.SeedDefaultAdmin(); err != nil {
		log.Printf("Warning: failed to seed admin account: %v", err)
	}

	authHandler := handler.NewAuthHandler(authService)
	invHandler := handler.NewInventoryHandler(invService)
	cartHandler := handler.NewCartHandler(cartService, checkoutService)
	reportHandler := handler.NewReportHandler(reportService)

	// 7. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "HardTrack v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 8. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/find-account", authHandler.FindAccount)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Get("/security-questions", authHandler.SecurityQuestions)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userStore))

	admin := string(model.RoleAdmin)
	cashier := string(model.RoleCashier)

	// Inventory (admin manages, everyone reads)
	protected.Get("/items", invHandler.GetItems)
	protected.Get("/items/available", invHandler.GetAvailableItems)
	protected.Get("/items/:id", invHandler.GetItem)
	protected.Post("/items", middleware.RequireRole(admin), invHandler.CreateItem)
	protected.Put("/items/:id", middleware.RequireRole(admin), invHandler.UpdateItem)
	protected.Delete("/items/:id", middleware.RequireRole(admin), invHandler.DeleteItem)

	// Suppliers (admin only)
	protected.Get("/suppliers", middleware.RequireRole(admin), invHandler.GetSuppliers)
	protected.Post("/suppliers", middleware.RequireRole(admin), invHandler.CreateSupplier)
	protected.Put("/suppliers/:id", middleware.RequireRole(admin), invHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", middleware.RequireRole(admin), invHandler.DeleteSupplier)

	// Reports & ledger (admin only)
	protected.Get("/reports/stats", middleware.RequireRole(admin), reportHandler.GetStats)
	protected.Get("/reports/:type", middleware.RequireRole(admin), reportHandler.GetReport)
	protected.Get("/transactions", middleware.RequireRole(admin), reportHandler.GetTransactions)

	// Cart & checkout (cashier flow)
	protected.Get("/cart", middleware.RequireRole(cashier), cartHandler.GetCart)
	protected.Post("/cart/items", middleware.RequireRole(cashier), cartHandler.AddItem)
	protected.Post("/cart/items/:id/increase", middleware.RequireRole(cashier), cartHandler.IncreaseItem)
	protected.Post("/cart/items/:id/decrease", middleware.RequireRole(cashier), cartHandler.DecreaseItem)
	protected.Delete("/cart/items/:id", middleware.RequireRole(cashier), cartHandler.RemoveItem)
	protected.Delete("/cart", middleware.RequireRole(cashier), cartHandler.ClearCart)
	protected.Post("/checkout", middleware.RequireRole(cashier), cartHandler.Checkout)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 9. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
