package routes

import (
	"consolidador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSync      = "/sync"
	PathIntegrity = "/integrity"
)

func addSyncRoutes(rg *gin.RouterGroup, h *handlers.SyncHandler) {
	sync := rg.Group(PathSync)
	{
		sync.GET("/status", h.GetStatus)
		sync.POST("/probe", h.Probe)
		sync.POST("/reload", h.Reload)
	}

	integrity := rg.Group(PathIntegrity)
	{
		integrity.GET("", h.CheckIntegrity)
		integrity.POST("/repair", h.RepairIntegrity)
	}
}
