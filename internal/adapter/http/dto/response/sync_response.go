package response

import (
	"time"

	"consolidador/internal/usecase"
)

type SyncStatusResponse struct {
	Loaded           bool       `json:"loaded"`
	RemoteEnabled    bool       `json:"remote_enabled"`
	QuotaExceeded    bool       `json:"quota_exceeded"`
	QuotaSince       *time.Time `json:"quota_since,omitempty"`
	QuotaCause       string     `json:"quota_cause,omitempty"`
	LiveUpdates      bool       `json:"live_updates"`
	PendingOrders    int        `json:"pending_orders"`
	PendingBatches   int        `json:"pending_batches"`
	PendingSuppliers int        `json:"pending_suppliers"`
	Conflicts        int        `json:"conflicts"`
	NextBatchNumber  int        `json:"next_batch_number"`
}

func FromSyncStatus(s usecase.SyncStatus) SyncStatusResponse {
	res := SyncStatusResponse{
		Loaded:           s.Loaded,
		RemoteEnabled:    s.RemoteEnabled,
		QuotaExceeded:    s.QuotaExceeded,
		QuotaCause:       s.QuotaCause,
		LiveUpdates:      s.LiveUpdates,
		PendingOrders:    s.PendingOrders,
		PendingBatches:   s.PendingBatches,
		PendingSuppliers: s.PendingSuppliers,
		Conflicts:        s.Conflicts,
		NextBatchNumber:  s.NextBatchNumber,
	}
	if !s.QuotaSince.IsZero() {
		since := s.QuotaSince
		res.QuotaSince = &since
	}
	return res
}

type IntegrityIssueResponse struct {
	Kind      string `json:"kind"`
	BatchCode string `json:"batch_code,omitempty"`
	OrderID   string `json:"order_id,omitempty"`
}

type IntegrityReportResponse struct {
	OK      bool                     `json:"ok"`
	Orders  int                      `json:"orders"`
	Batches int                      `json:"batches"`
	Errors  int                      `json:"errors"`
	Issues  []IntegrityIssueResponse `json:"issues"`
}

func FromIntegrityReport(r usecase.IntegrityReport) IntegrityReportResponse {
	issues := make([]IntegrityIssueResponse, 0, len(r.Issues))
	for _, i := range r.Issues {
		issues = append(issues, IntegrityIssueResponse{Kind: string(i.Kind), BatchCode: i.BatchCode, OrderID: i.OrderID})
	}
	return IntegrityReportResponse{
		OK:      r.OK(),
		Orders:  r.Orders,
		Batches: r.Batches,
		Errors:  r.Errors,
		Issues:  issues,
	}
}

type RepairReportResponse struct {
	OrdersChanged  int                     `json:"orders_changed"`
	BatchesChanged int                     `json:"batches_changed"`
	DanglingIDs    int                     `json:"dangling_ids_removed"`
	DuplicateIDs   int                     `json:"duplicate_ids_removed"`
	After          IntegrityReportResponse `json:"after"`
}

func FromRepairReport(r usecase.RepairReport) RepairReportResponse {
	return RepairReportResponse{
		OrdersChanged:  r.OrdersChanged,
		BatchesChanged: r.BatchesChanged,
		DanglingIDs:    r.DanglingIDs,
		DuplicateIDs:   r.DuplicateIDs,
		After:          FromIntegrityReport(r.After),
	}
}

type ImportResultResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func FromImportResult(r usecase.ImportResult) ImportResultResponse {
	errs := r.Errors
	if errs == nil {
		errs = []string{}
	}
	return ImportResultResponse{Imported: r.Imported, Skipped: r.Skipped, Errors: errs}
}
