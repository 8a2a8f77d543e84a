package memory

import "sync"

// Pool is a typed object pool wrapping sync.Pool.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool constructs a Pool whose New function delegates to ctor.
func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}
