package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"consolidador/internal/adapter/http/dto/response"
	"consolidador/internal/adapter/persistence/cache"
	"consolidador/internal/adapter/persistence/repository"
	"consolidador/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRemoteStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	local, err := cache.OpenBadgerLocalCache("", "routes:test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	remote := repository.NewMemoryRemoteStore()
	uc := usecase.NewConsolidationUseCase(remote, local)
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewRouter(uc, usecase.NewOrderImportUseCase(uc)), remote
}

func send(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)

	w := send(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestRoutesRegistered(t *testing.T) {
	r, _ := newTestRouter(t)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}
	for _, want := range []string{
		"GET /v1/orders",
		"GET /v1/orders/available",
		"POST /v1/orders/import",
		"PATCH /v1/orders/:id",
		"GET /v1/batches/:code/orders",
		"PATCH /v1/batches/:code/shipped",
		"POST /v1/batches/:code/received/toggle",
		"GET /v1/suppliers/favorite",
		"GET /v1/integrity",
		"POST /v1/integrity/repair",
		"GET /v1/sync/status",
		"POST /v1/sync/probe",
		"POST /v1/sync/reload",
		"GET /swagger/*any",
	} {
		if !registered[want] {
			t.Errorf("route %s not registered", want)
		}
	}
}

func TestOrderToReceivedBatchFlow(t *testing.T) {
	r, remote := newTestRouter(t)

	w := send(r, http.MethodPost, "/v1/orders", `{"id":"500","customer_name":"Ana","product_name":"Camisa Azul","size":"M","payment_status":"PAGO"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create order: expected 201, got %d %s", w.Code, w.Body.String())
	}

	w = send(r, http.MethodPost, "/v1/batches", `{"name":"Março","order_ids":["500"]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create batch: expected 201, got %d %s", w.Code, w.Body.String())
	}
	var batch response.BatchResponse
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	if len(batch.OrderIDs) != 1 || batch.OrderIDs[0] != "500" {
		t.Fatalf("unexpected batch %+v", batch)
	}

	w = send(r, http.MethodGet, "/v1/batches/"+batch.Code+"/orders?q=camisa-azul", "")
	var members []response.OrderResponse
	_ = json.Unmarshal(w.Body.Bytes(), &members)
	if len(members) != 1 || members[0].BatchCode != batch.Code {
		t.Fatalf("unexpected members %+v", members)
	}

	w = send(r, http.MethodPost, "/v1/batches/"+batch.Code+"/received/toggle", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("toggle before shipping: expected 409, got %d", w.Code)
	}

	w = send(r, http.MethodPatch, "/v1/batches/"+batch.Code+"/tracking", `{"inbound_tracking":"BR123"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("tracking: expected 200, got %d", w.Code)
	}
	w = send(r, http.MethodPost, "/v1/batches/"+batch.Code+"/received/toggle", "")
	_ = json.Unmarshal(w.Body.Bytes(), &batch)
	if !batch.IsReceived || batch.ShippingState != "RECEBIDO" {
		t.Fatalf("unexpected batch after toggle %+v", batch)
	}

	if remote.Writes() == 0 {
		t.Fatalf("expected writes to reach the remote store")
	}
}
