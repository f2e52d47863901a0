package handlers

import (
	"log"
	"net/http"
	"strings"

	"consolidador/internal/adapter/http/dto/request"
	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BatchHandler serves batch CRUD, membership and shipping state routes.
type BatchHandler struct {
	usecase usecase.IConsolidationUseCase
}

func NewBatchHandler(uc usecase.IConsolidationUseCase) *BatchHandler {
	return &BatchHandler{usecase: uc}
}

func (h *BatchHandler) ListBatches(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBatches(h.usecase.GetBatches()))
}

func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var payload request.BatchCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	created, err := h.usecase.AddBatch(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[http][batch] create failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBatch(created))
}

func (h *BatchHandler) GetBatch(c *gin.Context) {
	b, err := h.usecase.GetBatch(c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}

func (h *BatchHandler) UpdateBatch(c *gin.Context) {
	var payload request.BatchUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.UpdateBatch(c.Request.Context(), code, payload.ToPatch())
	})
}

func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	code := c.Param("code")
	if err := h.usecase.DeleteBatch(c.Request.Context(), code); err != nil {
		log.Printf("[http][batch] delete failed batch_code=%s err=%v", code, err)
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBatchOrders returns the batch members in list order; q narrows them by
// id, product, customer or internal tag.
func (h *BatchHandler) ListBatchOrders(c *gin.Context) {
	code := c.Param("code")
	var (
		orders []entities.Order
		err    error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		orders, err = h.usecase.SearchOrdersInBatch(code, q)
	} else {
		orders, err = h.usecase.GetOrdersInBatch(code)
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

func (h *BatchHandler) UpdateBatchStatus(c *gin.Context) {
	var payload request.BatchStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.UpdateBatchStatus(c.Request.Context(), code, payload.ToStatus())
	})
}

func (h *BatchHandler) UpdateBatchTracking(c *gin.Context) {
	var payload request.BatchTrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.UpdateBatchTracking(c.Request.Context(), code, payload.InboundTracking)
	})
}

func (h *BatchHandler) UpdateBatchNotes(c *gin.Context) {
	var payload request.BatchNotesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.UpdateBatchNotes(c.Request.Context(), code, payload.Notes)
	})
}

func (h *BatchHandler) UpdateBatchShipped(c *gin.Context) {
	var payload request.BatchShippedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.UpdateBatchShippingStatus(c.Request.Context(), code, *payload.Shipped)
	})
}

func (h *BatchHandler) ToggleBatchReceived(c *gin.Context) {
	h.respond(c, func(code string) (entities.Batch, error) {
		return h.usecase.ToggleBatchReceived(c.Request.Context(), code)
	})
}

func (h *BatchHandler) respond(c *gin.Context, update func(code string) (entities.Batch, error)) {
	code := c.Param("code")
	b, err := update(code)
	if err != nil {
		log.Printf("[http][batch] update failed batch_code=%s path=%s err=%v", code, c.FullPath(), err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBatch(b))
}
