// Package event provides a simple synchronous/async event dispatcher.
//
//	event.Listen("sale.recorded", func(ctx context.Context, p any) {
//	    sale := p.(models.Sale)
//	    ...
//	})
//	event.Fire(ctx, "sale.recorded", sale)
package event

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/shashiranjanraj/shopadmin/pkg/logger"
)

// Handler receives an event payload.
type Handler func(ctx context.Context, payload interface{})

var (
	mu       sync.RWMutex
	handlers = map[string][]Handler{}
	wg       sync.WaitGroup
)

// Listen registers a handler for the given event name.
func Listen(name string, handler Handler) {
	mu.Lock()
	defer mu.Unlock()
	handlers[name] = append(handlers[name], handler)
}

func listeners(name string) []Handler {
	mu.RLock()
	defer mu.RUnlock()
	hs := make([]Handler, len(handlers[name]))
	copy(hs, handlers[name])
	return hs
}

// Fire dispatches an event synchronously to every listener in registration
// order. A panicking listener is logged and does not stop the others.
func Fire(ctx context.Context, name string, payload interface{}) {
	for _, h := range listeners(name) {
		call(ctx, name, h, payload)
	}
}

// FireAsync dispatches the event to all listeners concurrently and returns
// immediately. The listeners get a context detached from ctx's cancellation.
func FireAsync(ctx context.Context, name string, payload interface{}) {
	detached := context.WithoutCancel(ctx)
	for _, h := range listeners(name) {
		wg.Add(1)
		go func(h Handler) {
			defer wg.Done()
			call(detached, name, h, payload)
		}(h)
	}
}

// Wait blocks until every FireAsync listener has returned.
func Wait() { wg.Wait() }

func call(ctx context.Context, name string, h Handler, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithCtx(ctx).Error("event: listener panic",
				"event", name,
				"panic", r,
				"stack", string(debug.Stack()),
			)
		}
	}()
	h(ctx, payload)
}

// Flush removes all listeners (useful in tests).
func Flush() {
	mu.Lock()
	defer mu.Unlock()
	handlers = map[string][]Handler{}
}
