package mem

// LimitAllocator admits charges up to a fixed byte budget.
type LimitAllocator struct {
	limit int
	used  int
}

// NewLimitAllocator creates an allocator with the given byte budget.
func NewLimitAllocator(limit int) *LimitAllocator {
	if limit < 0 {
		limit = 0
	}
	return &LimitAllocator{limit: limit}
}

// Reserve admits the charge or returns ErrOutOfMemory, leaving the
// accounted total unchanged on refusal.
func (a *LimitAllocator) Reserve(size int) error {
	if size < 0 {
		size = 0
	}
	if a.used+size > a.limit {
		return ErrOutOfMemory
	}
	a.used += size
	return nil
}

// Release returns a charge to the budget.
func (a *LimitAllocator) Release(size int) {
	if size < 0 {
		size = 0
	}
	a.used -= size
	if a.used < 0 {
		a.used = 0
	}
}

// Used reports the bytes currently charged.
func (a *LimitAllocator) Used() int {
	return a.used
}

// Limit reports the byte budget.
func (a *LimitAllocator) Limit() int {
	return a.limit
}
