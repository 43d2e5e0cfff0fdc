package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotelbooking/constants"
	"hotelbooking/controllers"
	_ "hotelbooking/docs"
	middlewares "hotelbooking/middleware"
	"hotelbooking/services"
)

type Deps struct {
	Pages     *services.PageRegistry
	Customers services.CustomerStore
	Auth      *services.AuthService
	Tokens    *services.TokenService
	Redis     *redis.Client
}

func SetupRoutes(router *gin.Engine, deps Deps) {
	bookingController := controllers.NewBookingController(deps.Pages)
	customerController := controllers.NewCustomerController(deps.Customers)
	authController := controllers.NewAuthController(deps.Auth, deps.Tokens)

	router.Use(middlewares.Metrics())

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)

	staff := v1.Group("", middlewares.AuthMiddleware(deps.Tokens, constants.PermissionBookingsRead), middlewares.SessionMiddleware())
	if deps.Redis != nil {
		staff.Use(middlewares.Idempotency(middlewares.NewRedisKeyStore(deps.Redis)))
	}
	write := middlewares.RequirePermission(constants.PermissionBookingsWrite)

	staff.GET("/bookings", bookingController.GetBookings)
	staff.POST("/bookings/reload", bookingController.ReloadBookings)
	staff.DELETE("/bookings/filters", bookingController.ResetFilters)
	staff.GET("/bookings/cities", bookingController.GetCities)
	staff.GET("/bookings/cities/suggest", bookingController.SuggestCities)
	staff.GET("/bookings/:id/voucher", bookingController.PrintVoucher)
	staff.POST("/bookings", write, bookingController.CreateBooking)
	staff.PUT("/bookings/:id", write, bookingController.UpdateBooking)
	staff.DELETE("/bookings/:id", write, bookingController.DeleteBooking)
	staff.PATCH("/bookings/:id/status", write, bookingController.ChangeBookingStatus)

	staff.GET("/customers", customerController.GetCustomers)
	staff.GET("/customers/:id", customerController.GetCustomerDetail)
}
