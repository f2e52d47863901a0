package entities

import "testing"

func TestSnapshot_Clone(t *testing.T) {
	s := Snapshot{
		Orders:    []Order{{ID: "1"}},
		Batches:   []Batch{{Code: "A", OrderIDs: []string{"1"}}},
		Suppliers: []Supplier{{ID: "s"}},
	}
	c := s.Clone()
	c.Orders[0].ID = "x"
	c.Batches[0].OrderIDs[0] = "x"
	c.Suppliers[0].Name = "x"

	if s.Orders[0].ID != "1" || s.Batches[0].OrderIDs[0] != "1" || s.Suppliers[0].Name != "" {
		t.Fatalf("clone must not share memory with the original")
	}
	if s.Order("1") == nil || s.Batch("A") == nil || s.Order("x") != nil || s.SupplierIndex("s") != 0 {
		t.Fatalf("lookups failed")
	}
}
