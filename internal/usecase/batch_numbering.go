package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const batchCodePrefix = "LOTE-"

// BatchNumbering hands out daily batch codes shaped LOTE-<YYYYMMDD>-<N>.
//
// It is not safe for concurrent use; the consolidation use case only touches
// it while holding its own lock.
type BatchNumbering struct {
	now  func() time.Time
	day  string
	next int
}

func NewBatchNumbering(now func() time.Time) *BatchNumbering {
	if now == nil {
		now = time.Now
	}
	n := &BatchNumbering{now: now}
	n.day = n.today()
	n.next = 1
	return n
}

func (n *BatchNumbering) today() string {
	return n.now().Format("20060102")
}

// RecomputeNext sets the next sequence to one past the highest suffix among
// today's codes, or 1 when there is none.
func (n *BatchNumbering) RecomputeNext(codes []string) {
	day := n.today()
	prefix := batchCodePrefix + day + "-"
	highest := 0
	for _, code := range codes {
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimPrefix(code, prefix))
		if err != nil || seq <= 0 {
			continue
		}
		if seq > highest {
			highest = seq
		}
	}
	n.day = day
	n.next = highest + 1
}

// GenerateCode returns the next code and advances the sequence. The sequence
// restarts at 1 when the calendar day changes.
func (n *BatchNumbering) GenerateCode() string {
	day := n.today()
	if day != n.day {
		n.day = day
		n.next = 1
	}
	code := fmt.Sprintf("%s%s-%d", batchCodePrefix, day, n.next)
	n.next++
	return code
}

// checkpoint captures the sequence; calling the result puts it back.
func (n *BatchNumbering) checkpoint() func() {
	day, next := n.day, n.next
	return func() { n.day, n.next = day, next }
}

// Next is the sequence number the next generated code will carry today.
func (n *BatchNumbering) Next() int {
	if n.today() != n.day {
		return 1
	}
	return n.next
}
