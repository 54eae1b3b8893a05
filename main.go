package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mvegadev/comanda/config"
	"github.com/mvegadev/comanda/controllers"
	"github.com/mvegadev/comanda/models"
	"github.com/mvegadev/comanda/repository"
	"github.com/mvegadev/comanda/router"
	"github.com/mvegadev/comanda/usecases"
	"github.com/mvegadev/comanda/utils"
	"github.com/mvegadev/comanda/ws"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()
	utils.InitJWT()

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	hub := ws.NewHub()
	repos := repository.New(db)
	clock := models.SystemClock()

	orderUC := usecases.NewOrderUseCases(repos.Orders, repos.Tables, repos.Menu, hub, clock)
	tableUC := usecases.NewTableUseCases(repos.Tables, hub, clock)
	menuUC := usecases.NewMenuUseCases(repos.Menu, hub, clock)
	paymentUC := usecases.NewPaymentUseCases(repos.Payments, repos.Orders, repos.Tables, hub, clock)
	userUC := usecases.NewUserUseCases(repos.Users, hub, clock)

	r := router.SetupRouter(router.Controllers{
		Users:    controllers.NewUserController(userUC),
		Tables:   controllers.NewTableController(tableUC),
		Menu:     controllers.NewMenuController(menuUC),
		Orders:   controllers.NewOrderController(orderUC),
		Payments: controllers.NewPaymentController(paymentUC),
		WS:       controllers.NewWSController(hub),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
