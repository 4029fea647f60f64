package server

import (
	"log/slog"

	"github.com/clubops/club-manager/internal/middleware"
	"github.com/clubops/club-manager/pkg/checkin"
	"github.com/clubops/club-manager/pkg/event"
	"github.com/clubops/club-manager/pkg/health"
	"github.com/clubops/club-manager/pkg/ledger"
	"github.com/clubops/club-manager/pkg/notification"
	"github.com/clubops/club-manager/pkg/rollup"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	redocMiddleware "github.com/go-openapi/runtime/middleware"
)

func GetEngine(
	logger *slog.Logger,
	basePath string,
	eventHandler event.Handler,
	ledgerHandler ledger.Handler,
	rollupHandler rollup.Handler,
	checkinHandler checkin.Handler,
	notificationHandler notification.Handler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CorrelationID())
	r.Use(middleware.RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middleware.ErrorHandler())

	router := r.Group(basePath)

	redoc(router, basePath)

	router.GET("/health", health.Health)

	router.POST("/events", eventHandler.Create)
	router.GET("/events", eventHandler.FindAll)
	router.GET("/events/upcoming", eventHandler.Upcoming)
	router.GET("/events/:id", eventHandler.FindById)
	router.PUT("/events/:id", eventHandler.Update)
	router.DELETE("/events/:id", eventHandler.Delete)
	router.PUT("/events/:id/publish", eventHandler.TogglePublish)

	router.POST("/events/:id/receipts", ledgerHandler.AddReceipt)
	router.POST("/events/:id/receipts/:receiptId/image", ledgerHandler.UploadReceiptImage)
	router.GET("/events/:id/receipts/:receiptId/image", ledgerHandler.DownloadReceiptImage)
	router.POST("/events/:id/expenses", ledgerHandler.AddExpense)
	router.PUT("/events/:id/expenses/:expenseId/approve", ledgerHandler.ApproveExpense)
	router.PUT("/events/:id/expenses/:expenseId/reject", ledgerHandler.RejectExpense)
	router.POST("/events/:id/vendors", ledgerHandler.AddVendor)
	router.PUT("/events/:id/vendors/:vendorId/status", ledgerHandler.UpdateVendorStatus)

	router.GET("/rollup/totals", rollupHandler.Totals)
	router.GET("/rollup/categories", rollupHandler.ByCategory)
	router.GET("/rollup/date/:date", rollupHandler.ByDate)

	router.POST("/events/:id/checkin/token", checkinHandler.IssueToken)
	router.GET("/events/:id/checkin/link", checkinHandler.GetLink)
	router.POST("/events/:id/checkin/scan", checkinHandler.ScanCheckIn)
	router.POST("/events/:id/checkin/manual", checkinHandler.ManualCheckIn)

	router.POST("/events/:id/attendees", checkinHandler.AddAttendee)
	router.GET("/events/:id/attendees", checkinHandler.FindAllAttendees)
	router.POST("/events/:id/attendees/:attendeeId/checkin", checkinHandler.CheckIn)
	router.DELETE("/events/:id/attendees/:attendeeId/checkin", checkinHandler.CheckOut)
	router.GET("/events/:id/attendance", checkinHandler.AttendanceRate)

	router.GET("/subscribe", notificationHandler.Subscribe)

	return r
}

func redoc(router *gin.RouterGroup, basePath string) {
	router.StaticFile("/swagger.yaml", "./swagger/swagger.yaml")

	redocOpts := redocMiddleware.RedocOpts{
		BasePath: basePath,
		SpecURL:  "./swagger.yaml",
	}
	router.GET("/docs", func(c *gin.Context) {
		redocHandler := redocMiddleware.Redoc(redocOpts, nil)
		redocHandler.ServeHTTP(c.Writer, c.Request)
	})
}
