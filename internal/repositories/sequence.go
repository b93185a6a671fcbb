package repositories

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Sequence hands out increasing integer IDs starting at the configured value.
type Sequence struct {
	next atomic.Int64
}

func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

// CodeGenerator mints confirmation codes from a millisecond clock. The clock
// value is forced to increase strictly between calls, so codes never repeat
// and sort by issue order while their length stays the same.
type CodeGenerator struct {
	mu     sync.Mutex
	prefix string
	now    func() time.Time
	last   int64
}

func NewCodeGenerator(prefix string, now func() time.Time) *CodeGenerator {
	if now == nil {
		now = time.Now
	}
	return &CodeGenerator{prefix: prefix, now: now}
}

func (g *CodeGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return g.prefix + strings.ToUpper(strconv.FormatInt(ms, 36))
}
