package routes

import (
	"consolidador/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathSuppliers = "/suppliers"

func addSupplierRoutes(rg *gin.RouterGroup, h *handlers.SupplierHandler) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", h.ListSuppliers)
		suppliers.POST("", h.CreateSupplier)
		suppliers.GET("/favorite", h.GetFavoriteSupplier)
		suppliers.GET("/:id", h.GetSupplier)
		suppliers.PATCH("/:id", h.UpdateSupplier)
		suppliers.DELETE("/:id", h.DeleteSupplier)
	}
}
