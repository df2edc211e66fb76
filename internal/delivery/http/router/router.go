// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/AjaXium2/greenolivechain/internal/delivery/http/router/handler"
	"github.com/AjaXium2/greenolivechain/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router registers, injected by Fx.
type RouterParams struct {
	fx.In

	WasteHandler        *handler.WasteHandler
	ExtractionHandler   *handler.ExtractionHandler
	RecyclingHandler    *handler.RecyclingHandler
	TraceabilityHandler *handler.TraceabilityHandler
	LedgerHandler       *handler.LedgerHandler
	RequestID           *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	wasteHandler        *handler.WasteHandler
	extractionHandler   *handler.ExtractionHandler
	recyclingHandler    *handler.RecyclingHandler
	traceabilityHandler *handler.TraceabilityHandler
	ledgerHandler       *handler.LedgerHandler
	requestID           *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		wasteHandler:        params.WasteHandler,
		extractionHandler:   params.ExtractionHandler,
		recyclingHandler:    params.RecyclingHandler,
		traceabilityHandler: params.TraceabilityHandler,
		ledgerHandler:       params.LedgerHandler,
		requestID:           params.RequestID,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	wasteGroup := api.Group("/waste")
	{
		wasteGroup.POST("/add", r.wasteHandler.AddWaste)
		wasteGroup.GET("/list", r.wasteHandler.ListWastes)
		wasteGroup.GET("/history/:id", r.wasteHandler.WasteHistory)
		wasteGroup.PUT("/update-status", r.wasteHandler.UpdateStatus)
	}

	extractionGroup := api.Group("/extraction")
	{
		extractionGroup.POST("/waste/add", r.extractionHandler.AddWaste)
		extractionGroup.GET("/waste/list", r.extractionHandler.ListWastes)
		extractionGroup.PUT("/waste/transfer/:id", r.extractionHandler.TransferWaste)

		extractionGroup.POST("/add", r.extractionHandler.AddRecord)
		extractionGroup.GET("/list", r.extractionHandler.ListRecords)
		extractionGroup.GET("/by-waste/:id", r.extractionHandler.ListRecordsByWaste)
		extractionGroup.PUT("/update-status", r.extractionHandler.UpdateStatus)
		extractionGroup.GET("/:id", r.extractionHandler.GetRecord)
	}

	recyclingGroup := api.Group("/recycling")
	{
		recyclingGroup.POST("/records", r.recyclingHandler.AddWasteRecord)
		recyclingGroup.GET("/records", r.recyclingHandler.ListWasteRecords)
		recyclingGroup.POST("/receive", r.recyclingHandler.ReceiveWaste)
		recyclingGroup.POST("/start", r.recyclingHandler.StartProcess)
		recyclingGroup.POST("/process", r.recyclingHandler.AddProcess)
		recyclingGroup.GET("/processes", r.recyclingHandler.ListProcesses)
		recyclingGroup.PUT("/complete", r.recyclingHandler.CompleteProcess)

		recyclingGroup.POST("/add", r.recyclingHandler.AddRecord)
		recyclingGroup.GET("/list", r.recyclingHandler.ListRecords)
		recyclingGroup.GET("/by-waste/:id", r.recyclingHandler.ListRecordsByWaste)
		recyclingGroup.GET("/:id", r.recyclingHandler.GetRecord)
	}

	api.GET("/traceability/:wasteId", r.traceabilityHandler.GetTraceability)
	api.GET("/blockchain/status", r.ledgerHandler.BlockchainStatus)

	dashboardGroup := api.Group("/dashboard")
	{
		dashboardGroup.GET("/stats", r.traceabilityHandler.DashboardStats)
		dashboardGroup.GET("/activity", r.traceabilityHandler.RecentActivity)
	}
}
