package routes

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/JDigital-dev/phcleanpro/internal/assistant"
	"github.com/JDigital-dev/phcleanpro/internal/config"
	"github.com/JDigital-dev/phcleanpro/internal/handlers"
	infraRepo "github.com/JDigital-dev/phcleanpro/internal/infra/repository"
	"github.com/JDigital-dev/phcleanpro/internal/middleware"
	"github.com/JDigital-dev/phcleanpro/internal/notify"
	ucBooking "github.com/JDigital-dev/phcleanpro/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	var sender notify.EmailSender = notify.LogSender{}
	if sg := notify.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName); sg != nil {
		sender = sg
	}
	dispatcher := notify.NewDispatcher(sender, cfg.OperatorEmail)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	var llm assistant.LLM
	if cfg.GeminiAPIKey != "" {
		client, err := assistant.NewGeminiClient(
			context.Background(),
			cfg.GeminiAPIKey,
			cfg.GeminiModel,
		)
		if err != nil {
			log.Printf("assistant: gemini unavailable, using keyword rules: %v", err)
		} else {
			llm = client
		}
	}
	assistantSvc := assistant.NewService(llm)

	// ======================================================
	// USE CASES
	// ======================================================
	submitUC := ucBooking.NewSubmitBooking(bookingRepo, dispatcher)
	quoteUC := ucBooking.NewGetQuote()
	listUC := ucBooking.NewListBookings(bookingRepo)
	statsUC := ucBooking.NewBookingStats(bookingRepo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo)
	clearUC := ucBooking.NewClearBookings(bookingRepo)
	leadsUC := ucBooking.NewListContactLeads(bookingRepo)
	contactUC := ucBooking.NewSubmitContactMessage(bookingRepo, dispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	catalogHandler := handlers.NewCatalogHandler()
	bookingHandler := handlers.NewBookingHandler(submitUC, quoteUC)
	adminHandler := handlers.NewAdminHandler(listUC, statsUC, updateStatusUC, clearUC, leadsUC)
	assistantHandler := handlers.NewAssistantHandler(assistantSvc)
	contactHandler := handlers.NewContactHandler(contactUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(rdb, cfg.PublicRateLimit))
		{
			publicAPI.GET("/services", catalogHandler.ListServices)
			publicAPI.GET("/services/:id", catalogHandler.GetService)
			publicAPI.GET("/addons", catalogHandler.ListAddons)
			publicAPI.GET("/neighborhoods", catalogHandler.ListNeighborhoods)
			publicAPI.GET("/time-slots", catalogHandler.ListTimeSlots)

			publicAPI.POST("/quote", bookingHandler.Quote)
			publicAPI.POST("/bookings", bookingHandler.Create)
			publicAPI.POST("/bookings/validate-step", bookingHandler.ValidateStep)

			publicAPI.POST("/contact", contactHandler.Create)
			publicAPI.POST("/assistant", assistantHandler.Chat)
		}

		adminAPI := api.Group("/admin")
		{
			adminAPI.GET("/bookings", adminHandler.ListBookings)
			adminAPI.GET("/stats", adminHandler.Stats)
			adminAPI.PATCH("/bookings/:reference/status", adminHandler.UpdateStatus)
			adminAPI.DELETE("/bookings", adminHandler.ClearBookings)

			adminAPI.GET("/contact-messages", adminHandler.ListContactMessages)
		}
	}
}
