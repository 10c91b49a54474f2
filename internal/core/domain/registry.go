package domain

import "go.trai.ch/zerr"

// Registry is a fixed mapping from command names to tasks. It is populated
// once at startup and only read afterwards.
type Registry struct {
	tasks map[string]*Task
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tasks: make(map[string]*Task)}
}

// Add registers a task under its name, preserving insertion order for Names.
func (r *Registry) Add(t *Task) error {
	if _, exists := r.tasks[t.Name]; exists {
		return zerr.With(ErrTaskAlreadyExists, "task", t.Name)
	}
	r.tasks[t.Name] = t
	r.order = append(r.order, t.Name)
	return nil
}

// Resolve looks up a task by exact name. No partial matching, no case
// folding.
func (r *Registry) Resolve(name string) (*Task, error) {
	t, ok := r.tasks[name]
	if !ok {
		return nil, zerr.With(ErrUnknownCommand, "command", name)
	}
	return t, nil
}

// Names returns the registered command names in canonical order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
