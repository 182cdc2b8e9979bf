// Package pool provides typed object pooling for go-miniopt.
// Used by miniopt.Parse to recycle parse sessions between calls.
package pool

import (
	"sync"
	"sync/atomic"
)

// Pool is a type-safe wrapper around sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // Called on Put, before the object is stored

	created atomic.Int64
}

// NewPool creates a pool whose new objects come from factory.
func NewPool[T any](factory func() *T) *Pool[T] {
	p := &Pool[T]{}
	p.pool.New = func() any {
		p.created.Add(1)
		return factory()
	}
	return p
}

// NewPoolWithReset creates a pool that calls reset on every object handed
// back with Put, so pooled objects never retain caller data.
func NewPoolWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := NewPool(factory)
	p.reset = reset
	return p
}

// Get retrieves an object from the pool or creates a new one.
func (p *Pool[T]) Get() *T {
	return p.pool.Get().(*T)
}

// Put returns an object to the pool. Nil objects are ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	if p.reset != nil {
		p.reset(obj)
	}
	p.pool.Put(obj)
}

// Created returns how many objects the factory has built so far.
func (p *Pool[T]) Created() int64 {
	return p.created.Load()
}
