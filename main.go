package main

import (
	"fmt"
	"log"
	"os"

	"haulpro-backend/config"
	"haulpro-backend/models"
	"haulpro-backend/routes"
	"haulpro-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Job{},
		&models.Quote{},
		&models.Lead{},
		&models.Invoice{},
		&models.Notification{},
		&models.Transaction{},
	)
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	store := storage.NewGormStore(config.DB)
	r := routes.SetupRouter(store)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
