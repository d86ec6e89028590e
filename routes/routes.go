package routes

import (
	"haulpro-backend/config"
	"haulpro-backend/controllers"
	"haulpro-backend/models"
	"haulpro-backend/storage"
	"haulpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(store storage.Store) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authCtl := &controllers.AuthController{Store: store}
	customerCtl := &controllers.CustomerController{Store: store}
	jobCtl := &controllers.JobController{Store: store}
	quoteCtl := &controllers.QuoteController{Store: store}
	leadCtl := &controllers.LeadController{Store: store}
	invoiceCtl := &controllers.InvoiceController{Store: store}
	transactionCtl := &controllers.TransactionController{Store: store}
	notificationCtl := &controllers.NotificationController{Store: store}
	smsCtl := controllers.NewSMSController()
	pricingCtl := &controllers.PricingController{}

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Open to any authenticated role.
	protected := api.Group("")
	protected.Use(utils.RequireRole())
	{
		customers := protected.Group("/customers")
		{
			customers.POST("", customerCtl.Create)
			customers.GET("", customerCtl.List)
			customers.GET("/:id", customerCtl.Get)
			customers.GET("/:id/jobs", customerCtl.Jobs)
			customers.PATCH("/:id", customerCtl.Update)
			customers.DELETE("/:id", customerCtl.Delete)
		}

		jobs := protected.Group("/jobs")
		{
			jobs.POST("", jobCtl.Create)
			jobs.GET("", jobCtl.List)
			jobs.GET("/:id", jobCtl.Get)
			jobs.PATCH("/:id", jobCtl.Update)
			jobs.DELETE("/:id", jobCtl.Delete)
		}

		quotes := protected.Group("/quotes")
		{
			quotes.POST("", quoteCtl.Create)
			quotes.GET("", quoteCtl.List)
			quotes.GET("/:id", quoteCtl.Get)
			quotes.PATCH("/:id", quoteCtl.Update)
			quotes.DELETE("/:id", quoteCtl.Delete)
		}

		// No PATCH: transactions are append/delete only.
		transactions := protected.Group("/transactions")
		{
			transactions.POST("", transactionCtl.Create)
			transactions.GET("", transactionCtl.List)
			transactions.GET("/:id", transactionCtl.Get)
			transactions.DELETE("/:id", transactionCtl.Delete)
		}

		protected.POST("/send-sms", smsCtl.Send)
		protected.GET("/pricing", pricingCtl.Rates)
	}

	// Role-gated groups per the entity access policy.
	leads := api.Group("/leads")
	{
		leads.GET("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), leadCtl.List)
		leads.GET("/:id", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), leadCtl.Get)
		leads.POST("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), leadCtl.Create)
		leads.PATCH("/:id", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), leadCtl.Update)
		leads.DELETE("/:id", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), leadCtl.Delete)
	}

	invoices := api.Group("/invoices")
	{
		invoices.GET("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), invoiceCtl.List)
		invoices.GET("/:id", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), invoiceCtl.Get)
		invoices.POST("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), invoiceCtl.Create)
		invoices.PATCH("/:id", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), invoiceCtl.Update)
		invoices.DELETE("/:id", utils.RequireRole(models.RoleAdmin), invoiceCtl.Delete)
	}

	notifications := api.Group("/notifications")
	{
		notifications.GET("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), notificationCtl.List)
		notifications.POST("", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher), notificationCtl.Create)
		notifications.POST("/:id/read", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), notificationCtl.MarkRead)
		notifications.POST("/read-all", utils.RequireRole(models.RoleAdmin, models.RoleDispatcher, models.RoleField), notificationCtl.MarkAllRead)
		notifications.DELETE("", utils.RequireRole(models.RoleAdmin), notificationCtl.Clear)
	}

	return r
}
