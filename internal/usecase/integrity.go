package usecase

import (
	"context"
	"log"

	"consolidador/internal/domain/entities"
)

type IntegrityIssueKind string

const (
	IssueBatchListsUnknownOrder IntegrityIssueKind = "batch_lists_unknown_order"
	IssueBatchListsForeignOrder IntegrityIssueKind = "batch_lists_order_linked_elsewhere"
	IssueOrderReferencesNoBatch IntegrityIssueKind = "order_references_missing_batch"
	IssueOrderNotListedByBatch  IntegrityIssueKind = "order_not_listed_by_batch"
	IssueOrderTagOutOfSync      IntegrityIssueKind = "order_tag_out_of_sync"
)

type IntegrityIssue struct {
	Kind      IntegrityIssueKind `json:"kind"`
	BatchCode string             `json:"batchCode,omitempty"`
	OrderID   string             `json:"orderId,omitempty"`
}

type IntegrityReport struct {
	Orders  int              `json:"orders"`
	Batches int              `json:"batches"`
	Errors  int              `json:"errors"`
	Issues  []IntegrityIssue `json:"issues"`
}

func (r IntegrityReport) OK() bool {
	return r.Errors == 0
}

type RepairReport struct {
	OrdersChanged  int             `json:"ordersChanged"`
	BatchesChanged int             `json:"batchesChanged"`
	DanglingIDs    int             `json:"danglingIdsRemoved"`
	DuplicateIDs   int             `json:"duplicateIdsRemoved"`
	After          IntegrityReport `json:"after"`
}

// CheckIntegrity verifies both directions of the order/batch relationship
// without changing anything.
func (m *AssociationManager) CheckIntegrity(s entities.Snapshot) IntegrityReport {
	report := IntegrityReport{Orders: len(s.Orders), Batches: len(s.Batches), Issues: []IntegrityIssue{}}
	add := func(kind IntegrityIssueKind, code, id string) {
		report.Errors++
		report.Issues = append(report.Issues, IntegrityIssue{Kind: kind, BatchCode: code, OrderID: id})
	}

	for i := range s.Batches {
		b := &s.Batches[i]
		for _, id := range b.OrderIDs {
			o := s.Order(id)
			switch {
			case o == nil:
				add(IssueBatchListsUnknownOrder, b.Code, id)
			case o.BatchCode != b.Code:
				add(IssueBatchListsForeignOrder, b.Code, id)
			}
		}
	}

	for i := range s.Orders {
		o := &s.Orders[i]
		if (o.BatchCode != "") != (o.InternalTag != "") {
			add(IssueOrderTagOutOfSync, o.BatchCode, o.ID)
		}
		if o.BatchCode == "" {
			continue
		}
		b := s.Batch(o.BatchCode)
		switch {
		case b == nil:
			add(IssueOrderReferencesNoBatch, o.BatchCode, o.ID)
		case !b.Contains(o.ID):
			add(IssueOrderNotListedByBatch, o.BatchCode, o.ID)
		}
	}

	if report.Errors > 0 {
		log.Printf("[integrity] check found errors=%d orders=%d batches=%d", report.Errors, report.Orders, report.Batches)
	}
	return report
}

// Repair rebuilds every order's batch link from the batch lists, which are
// taken as the source of truth. Ids that resolve to no order are dropped, and
// an order listed by several batches stays with the first one.
func (m *AssociationManager) Repair(s *entities.Snapshot) (RepairReport, changeSet) {
	var report RepairReport
	var cs changeSet

	type link struct{ code, tag string }
	before := make(map[string]link, len(s.Orders))
	for i := range s.Orders {
		o := &s.Orders[i]
		before[o.ID] = link{o.BatchCode, o.InternalTag}
		o.Unlink()
	}

	for i := range s.Batches {
		b := &s.Batches[i]
		kept := make([]string, 0, len(b.OrderIDs))
		for _, id := range b.OrderIDs {
			o := s.Order(id)
			switch {
			case o == nil:
				report.DanglingIDs++
			case o.BatchCode != "":
				report.DuplicateIDs++
			default:
				o.LinkTo(b.Code)
				kept = append(kept, id)
			}
		}
		if len(kept) != len(b.OrderIDs) {
			b.OrderIDs = kept
			cs.touchBatch(b.Code)
		}
	}

	for i := range s.Orders {
		o := &s.Orders[i]
		if prev := before[o.ID]; prev.code != o.BatchCode || prev.tag != o.InternalTag {
			cs.touchOrder(o.ID)
		}
	}

	report.OrdersChanged = len(cs.orders)
	report.BatchesChanged = len(cs.batches)
	log.Printf("[integrity] repair orders_changed=%d batches_changed=%d dangling=%d duplicates=%d",
		report.OrdersChanged, report.BatchesChanged, report.DanglingIDs, report.DuplicateIDs)
	return report, cs
}

// CheckDataIntegrity reports drift between order links and batch lists. It
// fails with ErrIntegrityCheckRunning while another check or repair runs.
func (u *ConsolidationUseCase) CheckDataIntegrity(_ context.Context) (IntegrityReport, error) {
	if !u.assoc.tryBegin() {
		return IntegrityReport{}, ErrIntegrityCheckRunning
	}
	defer u.assoc.end()

	u.mu.Lock()
	defer u.mu.Unlock()
	return u.assoc.CheckIntegrity(u.state), nil
}

// RepairDataIntegrity rebuilds the order links from the batch lists, persists
// locally and then writes every pending record remotely, breaker permitting.
func (u *ConsolidationUseCase) RepairDataIntegrity(ctx context.Context) (RepairReport, error) {
	if !u.assoc.tryBegin() {
		return RepairReport{}, ErrIntegrityCheckRunning
	}
	defer u.assoc.end()

	u.mu.Lock()
	report, cs := u.assoc.Repair(&u.state)
	cs.stamp(&u.state, u.now())
	report.After = u.assoc.CheckIntegrity(u.state)
	err := u.persistLocked(ctx)
	u.mu.Unlock()
	if err != nil {
		return report, err
	}

	if u.remoteWritable() {
		u.drainPending(ctx)
	}
	return report, nil
}
