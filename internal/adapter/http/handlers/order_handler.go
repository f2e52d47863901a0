package handlers

import (
	"io"
	"log"
	"net/http"
	"strings"

	"consolidador/internal/adapter/http/dto/request"
	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxImportSize = 10 << 20

// OrderHandler serves order CRUD, search and CSV import.
type OrderHandler struct {
	usecase  usecase.IConsolidationUseCase
	importer usecase.IOrderImportUseCase
}

func NewOrderHandler(uc usecase.IConsolidationUseCase, importer usecase.IOrderImportUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc, importer: importer}
}

// ListOrders returns every order, or the ones matching q and the enum
// filters when any of them is set.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q request.OrderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	if q.Empty() {
		c.JSON(http.StatusOK, response.FromOrders(h.usecase.GetOrders()))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.SearchOrders(q.Q, q.Filters())))
}

func (h *OrderHandler) ListAvailableOrders(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromOrders(h.usecase.GetAvailableOrders()))
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.AddOrder(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[http][order] create failed order_id=%s err=%v", payload.ID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromOrder(created))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.usecase.GetOrder(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(o))
}

func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.OrderUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	id := c.Param("id")
	updated, err := h.usecase.UpdateOrder(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		log.Printf("[http][order] update failed order_id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteOrder(c.Request.Context(), id); err != nil {
		log.Printf("[http][order] delete failed order_id=%s err=%v", id, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportOrders accepts either a multipart form with a "file" field or the
// CSV itself as the request body.
func (h *OrderHandler) ImportOrders(c *gin.Context) {
	var body io.Reader = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportSize)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile("file")
		if err != nil {
			writeAppError(c, errInvalidPayload)
			return
		}
		f, err := fh.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer f.Close()
		body = f
	}

	result, err := h.importer.ImportCSV(c.Request.Context(), body)
	if err != nil {
		log.Printf("[http][import] failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromImportResult(result))
}
