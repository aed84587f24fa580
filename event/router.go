package event

// Handler processes specific notice types within a context T
// Audio and status sinks implement this interface
type Handler[T any] interface {
	// HandleNotice processes a single notice
	// Called synchronously on the tick goroutine after the tick completes
	HandleNotice(ctx T, n Notice)

	// NoticeTypes returns the notice types this handler processes
	NoticeTypes() []NoticeType
}

// HandlerFunc adapts a function to a handler subscribed to the given types
type HandlerFunc[T any] struct {
	Fn    func(ctx T, n Notice)
	Types []NoticeType
}

func (h HandlerFunc[T]) HandleNotice(ctx T, n Notice) { h.Fn(ctx, n) }
func (h HandlerFunc[T]) NoticeTypes() []NoticeType    { return h.Types }

// Router dispatches notices to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same type
//   - Handlers are invoked in registration order
type Router[T any] struct {
	handlers map[NoticeType][]Handler[T]
}

func NewRouter[T any]() *Router[T] {
	return &Router[T]{handlers: make(map[NoticeType][]Handler[T])}
}

// Register adds a handler for its declared notice types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.NoticeTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Dispatch routes notices in order
func (r *Router[T]) Dispatch(ctx T, notices []Notice) {
	for _, n := range notices {
		for _, h := range r.handlers[n.Type] {
			h.HandleNotice(ctx, n)
		}
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router[T]) HandlerCount(t NoticeType) int {
	return len(r.handlers[t])
}
