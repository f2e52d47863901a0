package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/adapter/http/handlers/mocks"
	"consolidador/internal/usecase"
	"consolidador/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newSyncRouter(h *SyncHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/sync/status", h.GetStatus)
	r.POST("/v1/sync/probe", h.Probe)
	r.POST("/v1/sync/reload", h.Reload)
	r.GET("/v1/integrity", h.CheckIntegrity)
	r.POST("/v1/integrity/repair", h.RepairIntegrity)
	return r
}

func TestSyncHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConsolidationUseCase(ctrl)
	r := newSyncRouter(NewSyncHandler(uc))

	since := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.EXPECT().SyncStatus().Return(usecase.SyncStatus{
		Loaded:          true,
		RemoteEnabled:   true,
		QuotaExceeded:   true,
		QuotaSince:      since,
		PendingOrders:   3,
		NextBatchNumber: 8,
	})

	w := doJSON(r, http.MethodGet, "/v1/sync/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decode[response.SyncStatusResponse](t, w)
	if !body.QuotaExceeded || body.QuotaSince == nil || !body.QuotaSince.Equal(since) || body.PendingOrders != 3 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestSyncHandler_Probe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"recovered", nil, http.StatusOK},
		{"still exhausted", fmt.Errorf("put: %w", interfaces.ErrQuotaExhausted), http.StatusServiceUnavailable},
		{"no remote", interfaces.ErrRemoteUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIConsolidationUseCase(ctrl)
			r := newSyncRouter(NewSyncHandler(uc))

			uc.EXPECT().ProbeRemote(gomock.Any()).Return(tc.err)
			if tc.err == nil {
				uc.EXPECT().SyncStatus().Return(usecase.SyncStatus{Loaded: true})
			}

			w := doJSON(r, http.MethodPost, "/v1/sync/probe", "")
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}

func TestSyncHandler_Reload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIConsolidationUseCase(ctrl)
	r := newSyncRouter(NewSyncHandler(uc))

	uc.EXPECT().ForceSyncAndReload(gomock.Any()).Return(usecase.ErrLocalPersistence)

	w := doJSON(r, http.MethodPost, "/v1/sync/reload", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestSyncHandler_Integrity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newSyncRouter(NewSyncHandler(uc))

		uc.EXPECT().CheckDataIntegrity(gomock.Any()).Return(usecase.IntegrityReport{
			Orders:  2,
			Batches: 1,
			Errors:  1,
			Issues:  []usecase.IntegrityIssue{{Kind: usecase.IssueBatchListsUnknownOrder, BatchCode: "L1", OrderID: "9"}},
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/integrity", "")
		body := decode[response.IntegrityReportResponse](t, w)
		if body.OK || len(body.Issues) != 1 || body.Issues[0].Kind != "batch_lists_unknown_order" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("repair while running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newSyncRouter(NewSyncHandler(uc))

		uc.EXPECT().RepairDataIntegrity(gomock.Any()).Return(usecase.RepairReport{}, usecase.ErrIntegrityCheckRunning)

		w := doJSON(r, http.MethodPost, "/v1/integrity/repair", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("repair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newSyncRouter(NewSyncHandler(uc))

		uc.EXPECT().RepairDataIntegrity(gomock.Any()).Return(usecase.RepairReport{DanglingIDs: 1, BatchesChanged: 1}, nil)

		w := doJSON(r, http.MethodPost, "/v1/integrity/repair", "")
		body := decode[response.RepairReportResponse](t, w)
		if body.DanglingIDs != 1 || !body.After.OK {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}
