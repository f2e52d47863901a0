package handlers

import (
	"log"
	"net/http"

	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SyncHandler exposes the remote sync state and the integrity tools.
type SyncHandler struct {
	usecase usecase.IConsolidationUseCase
}

func NewSyncHandler(uc usecase.IConsolidationUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

func (h *SyncHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSyncStatus(h.usecase.SyncStatus()))
}

// Probe asks the remote store whether it accepts work again. On success the
// pending records have already been pushed when the response is written.
func (h *SyncHandler) Probe(c *gin.Context) {
	if err := h.usecase.ProbeRemote(c.Request.Context()); err != nil {
		log.Printf("[http][sync] probe failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncStatus(h.usecase.SyncStatus()))
}

func (h *SyncHandler) Reload(c *gin.Context) {
	if err := h.usecase.ForceSyncAndReload(c.Request.Context()); err != nil {
		log.Printf("[http][sync] reload failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromSyncStatus(h.usecase.SyncStatus()))
}

func (h *SyncHandler) CheckIntegrity(c *gin.Context) {
	report, err := h.usecase.CheckDataIntegrity(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromIntegrityReport(report))
}

func (h *SyncHandler) RepairIntegrity(c *gin.Context) {
	report, err := h.usecase.RepairDataIntegrity(c.Request.Context())
	if err != nil {
		log.Printf("[http][integrity] repair failed err=%v", err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromRepairReport(report))
}
