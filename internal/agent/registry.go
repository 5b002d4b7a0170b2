package agent

import (
	"sort"

	"travel-assistant/internal/model"
)

// Registry is the dispatch table from Category to Handler.
// It is populated at startup and read-only afterwards.
type Registry struct {
	handlers map[model.Category]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{handlers: make(map[model.Category]Handler, len(handlers))}
	for _, h := range handlers {
		r.Register(h)
	}
	return r
}

// Register adds a handler, replacing any previous handler for its category.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Category()] = h
}

// Get retrieves the handler for a category.
func (r *Registry) Get(c model.Category) (Handler, bool) {
	h, ok := r.handlers[c]
	return h, ok
}

// Resolve returns the handler for c, or the Generic handler when c has none.
func (r *Registry) Resolve(c model.Category) (Handler, error) {
	if h, ok := r.handlers[c]; ok {
		return h, nil
	}
	if h, ok := r.handlers[model.CategoryGeneric]; ok {
		return h, nil
	}
	return nil, ErrHandlerNotFound
}

// List returns all registered handlers ordered by category.
func (r *Registry) List() []Handler {
	out := make([]Handler, 0, len(r.handlers))
	for _, h := range r.handlers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category() < out[j].Category() })
	return out
}

// Complete reports whether every routable category and Generic has a handler.
func (r *Registry) Complete() bool {
	if _, ok := r.handlers[model.CategoryGeneric]; !ok {
		return false
	}
	for _, c := range model.RoutableCategories {
		if _, ok := r.handlers[c]; !ok {
			return false
		}
	}
	return true
}
