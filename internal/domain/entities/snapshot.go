package entities

// Snapshot is the whole local state, persisted as a single JSON document.
type Snapshot struct {
	Orders    []Order    `json:"orders"`
	Batches   []Batch    `json:"batches"`
	Suppliers []Supplier `json:"suppliers"`
}

// Clone deep-copies the snapshot so it can leave the owner's lock.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Orders:    append([]Order(nil), s.Orders...),
		Batches:   make([]Batch, len(s.Batches)),
		Suppliers: append([]Supplier(nil), s.Suppliers...),
	}
	for i, b := range s.Batches {
		out.Batches[i] = b.Clone()
	}
	return out
}

func (s *Snapshot) OrderIndex(id string) int {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Snapshot) BatchIndex(code string) int {
	for i := range s.Batches {
		if s.Batches[i].Code == code {
			return i
		}
	}
	return -1
}

func (s *Snapshot) SupplierIndex(id string) int {
	for i := range s.Suppliers {
		if s.Suppliers[i].ID == id {
			return i
		}
	}
	return -1
}

// Order returns a pointer into the snapshot, or nil.
func (s *Snapshot) Order(id string) *Order {
	if i := s.OrderIndex(id); i >= 0 {
		return &s.Orders[i]
	}
	return nil
}

func (s *Snapshot) Batch(code string) *Batch {
	if i := s.BatchIndex(code); i >= 0 {
		return &s.Batches[i]
	}
	return nil
}
