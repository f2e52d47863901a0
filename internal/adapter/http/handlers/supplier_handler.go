package handlers

import (
	"log"
	"net/http"

	"consolidador/internal/adapter/http/dto/request"
	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	usecase usecase.IConsolidationUseCase
}

func NewSupplierHandler(uc usecase.IConsolidationUseCase) *SupplierHandler {
	return &SupplierHandler{usecase: uc}
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSuppliers(h.usecase.GetSuppliers()))
}

func (h *SupplierHandler) GetFavoriteSupplier(c *gin.Context) {
	s, err := h.usecase.GetFavoriteSupplier()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(s))
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var payload request.SupplierCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	created, err := h.usecase.AddSupplier(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[http][supplier] create failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromSupplier(created))
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.GetSupplier(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(s))
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var payload request.SupplierUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	id := c.Param("id")
	updated, err := h.usecase.UpdateSupplier(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		log.Printf("[http][supplier] update failed supplier_id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSupplier(updated))
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteSupplier(c.Request.Context(), id); err != nil {
		log.Printf("[http][supplier] delete failed supplier_id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
