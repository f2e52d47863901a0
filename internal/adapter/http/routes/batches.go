package routes

import (
	"consolidador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBatches = "/batches"

func addBatchRoutes(rg *gin.RouterGroup, h *handlers.BatchHandler) {
	batches := rg.Group(PathBatches)
	{
		batches.GET("", h.ListBatches)
		batches.POST("", h.CreateBatch)
		batches.GET("/:code", h.GetBatch)
		batches.PATCH("/:code", h.UpdateBatch)
		batches.DELETE("/:code", h.DeleteBatch)
		batches.GET("/:code/orders", h.ListBatchOrders)

		// Shipping state
		batches.PATCH("/:code/status", h.UpdateBatchStatus)
		batches.PATCH("/:code/tracking", h.UpdateBatchTracking)
		batches.PATCH("/:code/notes", h.UpdateBatchNotes)
		batches.PATCH("/:code/shipped", h.UpdateBatchShipped)
		batches.POST("/:code/received/toggle", h.ToggleBatchReceived)
	}
}
