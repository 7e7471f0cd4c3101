package textfield

import (
	"sync"

	"github.com/go-errors/errors"
)

var (
	// ErrOutOfMemory is returned when an allocator cannot provide a buffer.
	ErrOutOfMemory = errors.New("allocator out of memory")
	// ErrForeignBuffer is returned when a buffer is released through an
	// allocator that did not hand it out.
	ErrForeignBuffer = errors.New("buffer not owned by this allocator")
)

// Allocator provides the rune storage backing a text field. A field keeps
// the allocator it was built with and releases its buffer through it.
type Allocator interface {
	// Alloc returns a zeroed buffer of exactly n runes.
	Alloc(n int) ([]rune, error)
	// Free releases a buffer obtained from Alloc.
	Free(buf []rune) error
}

// HeapAllocator allocates with make and leaves release to the garbage
// collector.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(n int) ([]rune, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	return make([]rune, n), nil
}

func (HeapAllocator) Free([]rune) error {
	return nil
}

// PoolAllocator recycles buffers through one sync.Pool per capacity.
type PoolAllocator struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator creates an empty pool allocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pools: make(map[int]*sync.Pool)}
}

func (p *PoolAllocator) pool(n int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pools == nil {
		p.pools = make(map[int]*sync.Pool)
	}
	pool, ok := p.pools[n]
	if !ok {
		pool = &sync.Pool{
			New: func() any {
				buf := make([]rune, n)
				return &buf
			},
		}
		p.pools[n] = pool
	}
	return pool
}

func (p *PoolAllocator) Alloc(n int) ([]rune, error) {
	if n < 0 {
		return nil, ErrOutOfMemory
	}
	buf := *p.pool(n).Get().(*[]rune)
	clear(buf)
	return buf, nil
}

func (p *PoolAllocator) Free(buf []rune) error {
	if buf == nil {
		return nil
	}
	buf = buf[:cap(buf)]
	p.pool(len(buf)).Put(&buf)
	return nil
}

// BudgetAllocator hands out buffers from a fixed rune budget. Freeing a
// buffer returns its runes to the budget.
type BudgetAllocator struct {
	mu          sync.Mutex
	remaining   int
	outstanding map[*rune]int
}

// NewBudgetAllocator creates an allocator that can hold at most budget
// runes at once.
func NewBudgetAllocator(budget int) *BudgetAllocator {
	return &BudgetAllocator{
		remaining:   budget,
		outstanding: make(map[*rune]int),
	}
}

// Remaining returns the unallocated part of the budget.
func (b *BudgetAllocator) Remaining() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// Outstanding returns the number of buffers not yet freed.
func (b *BudgetAllocator) Outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.outstanding)
}

func (b *BudgetAllocator) Alloc(n int) ([]rune, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n <= 0 || n > b.remaining {
		return nil, ErrOutOfMemory
	}
	buf := make([]rune, n)
	b.outstanding[&buf[0]] = n
	b.remaining -= n
	return buf, nil
}

func (b *BudgetAllocator) Free(buf []rune) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cap(buf) == 0 {
		return ErrForeignBuffer
	}
	key := &buf[:1][0]
	n, ok := b.outstanding[key]
	if !ok {
		return ErrForeignBuffer
	}
	delete(b.outstanding, key)
	b.remaining += n
	return nil
}
