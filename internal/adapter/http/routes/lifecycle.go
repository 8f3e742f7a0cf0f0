package routes

import (
	"github.com/gin-gonic/gin"

	"installworks/internal/adapter/http/handlers"
)

const (
	PathQuotes    = "/quotes"
	PathOrders    = "/orders"
	PathPayments  = "/payments"
	PathClients   = "/clients"
	PathEngineers = "/engineers"
	PathSettings  = "/settings"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/send", quoteHandler.SendQuote)
		quotes.POST("/:id/accept", quoteHandler.AcceptQuote)
		quotes.POST("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/shareable", quoteHandler.SetShareable)
		quotes.GET("/:id/document", quoteHandler.RenderQuoteDocument)
	}

	// Unauthenticated read-only share view.
	rg.GET("/shared/quotes/:token", quoteHandler.GetSharedQuote)
}

func addOrderRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.OrderHandler,
	paymentHandler *handlers.PaymentHandler,
	schedulingHandler *handlers.SchedulingHandler,
	engineerHandler *handlers.EngineerHandler,
	hub *handlers.StatusHub,
) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/progress", orderHandler.GetProgress)
		orders.GET("/:id/status/ws", hub.Subscribe)
		orders.GET("/:id/activity", orderHandler.ListActivity)
		orders.GET("/:id/agreement", orderHandler.RenderAgreementDocument)

		orders.POST("/:id/agreement/sign", orderHandler.SignAgreement)
		orders.PUT("/:id/override", orderHandler.SetOverride)
		orders.DELETE("/:id/override", orderHandler.ClearOverride)
		orders.POST("/:id/cancel", orderHandler.CancelOrder)
		orders.POST("/:id/schedule", orderHandler.AdminSchedule)
		orders.POST("/:id/engineer", orderHandler.AssignEngineer)
		orders.PUT("/:id/qa-notes", orderHandler.SetQANotes)

		orders.POST("/:id/payments/session", paymentHandler.StartSession)
		orders.GET("/:id/payments", paymentHandler.ListPayments)

		orders.POST("/:id/install-booking", schedulingHandler.BookInstall)

		orders.PUT("/:id/checklist", engineerHandler.SetupChecklist)
		orders.GET("/:id/checklist", engineerHandler.GetChecklist)
		orders.PATCH("/:id/checklist/:position", engineerHandler.SetChecklistItem)
		orders.POST("/:id/job/start", engineerHandler.StartJob)
		orders.POST("/:id/sign-off", engineerHandler.SignOff)
		orders.POST("/:id/reopen", engineerHandler.Reopen)
		orders.POST("/:id/evidence", engineerHandler.PutEvidence)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/confirm", paymentHandler.ConfirmPayment)
	}
}

func addDirectoryRoutes(rg *gin.RouterGroup, directoryHandler *handlers.DirectoryHandler, schedulingHandler *handlers.SchedulingHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", directoryHandler.CreateClient)
		clients.GET("/:id", directoryHandler.GetClient)
		clients.POST("/:id/blocked-dates", schedulingHandler.AddBlockedDate)
		clients.GET("/:id/blocked-dates", schedulingHandler.ListBlockedDates)
	}

	engineers := rg.Group(PathEngineers)
	{
		engineers.POST("", directoryHandler.CreateEngineer)
		engineers.GET("/:id", directoryHandler.GetEngineer)
		engineers.PATCH("/:id/availability", directoryHandler.SetEngineerAvailability)
	}

	rg.GET("/scheduling/availability", schedulingHandler.CheckAvailability)
}

func addSettingsRoutes(rg *gin.RouterGroup, settingsHandler *handlers.SettingsHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/payment-policy", settingsHandler.GetPaymentPolicy)
		settings.PUT("/payment-policy", settingsHandler.PutPaymentPolicy)
	}
}
