package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-engine/controllers"
	"github.com/yeremiapane/restaurant-engine/kds"
	"github.com/yeremiapane/restaurant-engine/middlewares"
	"gorm.io/gorm"
)

// Options carries the runtime knobs the handlers need besides the database.
type Options struct {
	ConflictWindow time.Duration
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	RestaurantName string
	Hub            *kds.Hub
	Publisher      kds.Publisher
}

func SetupRouter(db *gorm.DB, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Apply security middlewares
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	if opts.RateLimitRPS > 0 {
		r.Use(middlewares.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst).RateLimit())
	}

	if opts.Hub == nil {
		opts.Hub = kds.NewHub()
	}
	if opts.Publisher == nil {
		opts.Publisher = opts.Hub
	}
	if opts.RestaurantName == "" {
		opts.RestaurantName = "Restaurant"
	}

	// Init Controllers
	menuCtrl := controllers.NewMenuController(db)
	tableCtrl := controllers.NewTableController(db, opts.ConflictWindow)
	bookingCtrl := controllers.NewBookingController(db, opts.ConflictWindow, opts.Publisher)
	orderCtrl := controllers.NewOrderController(db, opts.Publisher)
	paymentCtrl := controllers.NewPaymentController(db, opts.Publisher, opts.RestaurantName)
	customerCtrl := controllers.NewCustomerController(db)
	feedbackCtrl := controllers.NewFeedbackController(db)
	reportCtrl := controllers.NewReportController(db)
	kdsCtrl := controllers.NewKDSController(opts.Hub)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Websocket tidak memakai timeout request
	r.GET("/ws", kdsCtrl.Stream)

	api := r.Group("/")
	api.Use(middlewares.RequestTimeout(opts.RequestTimeout))
	{
		api.GET("/menus", menuCtrl.GetAllMenus)
		api.GET("/menus/:menu_id", menuCtrl.GetMenuByID)

		api.GET("/tables", tableCtrl.GetAllTables)
		api.GET("/tables/available", tableCtrl.GetAvailableTables)
		api.GET("/tables/status", tableCtrl.GetTableStatus)
		api.GET("/tables/:table_number", tableCtrl.GetTableByNumber)

		api.POST("/bookings", bookingCtrl.CreateBooking)

		api.POST("/orders", orderCtrl.CreateOrder)
		api.GET("/orders/:order_id", orderCtrl.GetOrderByID)
		api.POST("/orders/:order_id/payments", paymentCtrl.SettlePayment)
		api.GET("/orders/:order_id/receipt", paymentCtrl.GetReceipt)

		api.POST("/customers", customerCtrl.CreateCustomer)
		api.POST("/feedback", feedbackCtrl.CreateFeedback)

		api.GET("/reports/summary", reportCtrl.GetSummary)
	}

	return r
}
