package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/adapter/http/handlers/mocks"
	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase"
	"consolidador/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/available", h.ListAvailableOrders)
	r.POST("/v1/orders", h.CreateOrder)
	r.POST("/v1/orders/import", h.ImportOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id", h.UpdateOrder)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		w := doJSON(r, http.MethodPost, "/v1/orders", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"id":"1","product_name":"Camisa"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).Return(entities.Order{}, usecase.ErrOrderAlreadyExists)

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"id":"1","customer_name":"Ana","product_name":"Camisa"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		body := decode[pkg.HTTPError](t, w)
		if body.Code != "ORDER_ALREADY_EXISTS" {
			t.Fatalf("unexpected error body %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		now := time.Now().UTC()
		uc.EXPECT().AddOrder(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.ID != "500" || o.ShippingType != entities.ShippingTypePadrao || o.PaymentStatus != entities.PaymentStatusPago {
				t.Fatalf("unexpected order passed to use case: %+v", o)
			}
			o.CreatedAt, o.UpdatedAt = now, now
			o.SyncState = entities.SyncStatePendingRemote
			return o, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/orders", `{"id":"500","customer_name":"Ana","product_name":"Camisa","shipping_type":"padrao","payment_status":"pago"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decode[response.OrderResponse](t, w)
		if body.ID != "500" || body.SyncState != "pending_remote" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().GetOrders().Return([]entities.Order{{ID: "2"}, {ID: "1"}})

		w := doJSON(r, http.MethodGet, "/v1/orders", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode[[]response.OrderResponse](t, w); len(body) != 2 {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("search with filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().SearchOrders("camisa", entities.OrderFilters{ShippingType: entities.ShippingTypeExpresso}).Return([]entities.Order{})

		w := doJSON(r, http.MethodGet, "/v1/orders?q=camisa&shipping_type=expresso", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().GetAvailableOrders().Return([]entities.Order{{ID: "500"}})

		w := doJSON(r, http.MethodGet, "/v1/orders/available", "")
		if body := decode[[]response.OrderResponse](t, w); len(body) != 1 || body[0].ID != "500" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestOrderHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().GetOrder("404").Return(entities.Order{}, usecase.ErrOrderNotFound)

		w := doJSON(r, http.MethodGet, "/v1/orders/404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update passes only present fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().UpdateOrder(gomock.Any(), "1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, p entities.OrderPatch) (entities.Order, error) {
			if p.ShippingType == nil || *p.ShippingType != entities.ShippingTypeExpresso || p.ProductName != nil {
				t.Fatalf("unexpected patch %+v", p)
			}
			return entities.Order{ID: "1", ShippingType: entities.ShippingTypeExpresso}, nil
		})

		w := doJSON(r, http.MethodPatch, "/v1/orders/1", `{"shipping_type":"EXPRESSO"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("update invalid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().UpdateOrder(gomock.Any(), "1", gomock.Any()).Return(entities.Order{}, usecase.ErrInvalidOrder)

		w := doJSON(r, http.MethodPatch, "/v1/orders/1", `{"payment_status":"talvez"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().DeleteOrder(gomock.Any(), "1").Return(nil)

		w := doJSON(r, http.MethodDelete, "/v1/orders/1", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("delete with local persistence failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConsolidationUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(uc, nil))

		uc.EXPECT().DeleteOrder(gomock.Any(), "1").Return(usecase.ErrLocalPersistence)

		w := doJSON(r, http.MethodDelete, "/v1/orders/1", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		if body := decode[pkg.HTTPError](t, w); body.Code != "LOCAL_PERSISTENCE_FAILED" {
			t.Fatalf("unexpected body %+v", body)
		}
	})
}

func TestOrderHandler_ImportOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const csv = "id,customer,product\n1,Ana,Camisa\n"

	t.Run("raw body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importer := mocks.NewMockIOrderImportUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(nil, importer))

		importer.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in io.Reader) (usecase.ImportResult, error) {
			raw, _ := io.ReadAll(in)
			if string(raw) != csv {
				t.Fatalf("unexpected body %q", raw)
			}
			return usecase.ImportResult{Imported: 1}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", bytes.NewBufferString(csv))
		req.Header.Set("Content-Type", "text/csv")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decode[response.ImportResultResponse](t, w); body.Imported != 1 || body.Errors == nil {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	t.Run("multipart file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importer := mocks.NewMockIOrderImportUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(nil, importer))

		importer.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in io.Reader) (usecase.ImportResult, error) {
			raw, _ := io.ReadAll(in)
			if string(raw) != csv {
				t.Fatalf("unexpected file content %q", raw)
			}
			return usecase.ImportResult{Imported: 1, Errors: []string{}}, nil
		})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, _ := mw.CreateFormFile("file", "pedidos.csv")
		_, _ = fw.Write([]byte(csv))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("multipart without file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importer := mocks.NewMockIOrderImportUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(nil, importer))

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("other", "x")
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		importer := mocks.NewMockIOrderImportUseCase(ctrl)
		r := newOrderRouter(NewOrderHandler(nil, importer))

		importer.EXPECT().ImportCSV(gomock.Any(), gomock.Any()).Return(usecase.ImportResult{}, usecase.ErrImportMissingColumns)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders/import", bytes.NewBufferString("sku\nA\n"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
