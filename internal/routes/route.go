package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/container"
	"github.com/alhijaztravel/safarbay/internal/handlers"
	"github.com/alhijaztravel/safarbay/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Token endpoint the payment widget bootstrap calls directly
	r.POST("/api/create-transaction", handlers.CreateTransaction(container.TokenSource))

	// API version 1
	v1 := r.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "safarbay-api",
			})
		})

		packageRoutes := v1.Group("/packages")
		{
			packageRoutes.GET("/", handlers.ListPackages(container.PackageService))
			packageRoutes.GET("/:id", handlers.GetPackageByID(container.PackageService))
		}

		// The checkout flow is public: identity is provisioned during
		// checkout, not before it.
		checkoutRoutes := v1.Group("/checkout")
		{
			checkoutRoutes.POST("", handlers.StartCheckout(container.CheckoutService))
			checkoutRoutes.GET("/:id", handlers.GetCheckout(container.CheckoutService))
			checkoutRoutes.DELETE("/:id", handlers.AbandonCheckout(container.CheckoutService))

			checkoutRoutes.PATCH("/:id/contact", handlers.UpdateContact(container.CheckoutService))
			checkoutRoutes.PATCH("/:id/companions/:index", handlers.UpdateCompanion(container.CheckoutService))
			checkoutRoutes.POST("/:id/roster/increment", handlers.IncrementPax(container.CheckoutService))
			checkoutRoutes.POST("/:id/roster/decrement", handlers.DecrementPax(container.CheckoutService))
			checkoutRoutes.PUT("/:id/roster/pax", handlers.SetPax(container.CheckoutService))
			checkoutRoutes.DELETE("/:id/roster/companions/:index", handlers.RemoveCompanion(container.CheckoutService))
			checkoutRoutes.PUT("/:id/codes", handlers.SetCodes(container.CheckoutService))

			checkoutRoutes.POST("/:id/submit", handlers.SubmitCheckout(container.CheckoutService))
			checkoutRoutes.POST("/:id/outcome", handlers.PaymentOutcome(container.CheckoutService))
			checkoutRoutes.POST("/:id/back", handlers.BackToDetails(container.CheckoutService))
		}
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.ProfileRepo, container.Logger))

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.GET("/:orderId", handlers.GetBooking(container.BookingService))
	}

	dashboardRoutes := protected.Group("/dashboard")
	{
		dashboardRoutes.POST("/welcome", handlers.ConsumeWelcome(container.BookingService))
	}

	return r
}
