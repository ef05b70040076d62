// Package engine implements the registry that maps engine identifiers to
// disassembler constructors.
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/retroenv/scriptdisasm/internal/disasm"
)

// Factory creates a new unopened disassembler.
type Factory func() disasm.Disassembler

// Entry describes a registered engine.
type Entry struct {
	ID          string
	Description string
}

type registration struct {
	description string
	factory     Factory
}

// Registry maps engine identifiers to disassembler factories.
// Registration is expected to happen during startup, lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	engines map[string]registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[string]registration),
	}
}

// Register adds an engine. It fails if the identifier is already registered,
// in which case the existing registration is kept.
func (r *Registry) Register(id, description string, factory Factory) error {
	if id == "" {
		return errors.New("engine id is empty")
	}
	if factory == nil {
		return fmt.Errorf("engine '%s' has no factory", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.engines[id]; ok {
		return &DuplicateEngineError{ID: id}
	}
	r.engines[id] = registration{
		description: description,
		factory:     factory,
	}
	return nil
}

// List returns a sequence of engine identifiers and descriptions sorted by identifier.
// The sequence can be iterated multiple times.
func (r *Registry) List() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, entry := range r.Entries() {
			if !yield(entry.ID, entry.Description) {
				return
			}
		}
	}
}

// Entries returns all registered engines sorted by identifier.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.engines))
	for id, reg := range r.engines {
		entries = append(entries, Entry{ID: id, Description: reg.description})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return entries
}

// Create returns a new unopened disassembler for the given engine identifier.
func (r *Registry) Create(id string) (disasm.Disassembler, error) {
	r.mu.RLock()
	reg, ok := r.engines[id]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownEngineError{ID: id}
	}
	return reg.factory(), nil
}

// Description returns the description of a registered engine.
func (r *Registry) Description(id string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.engines[id]
	return reg.description, ok
}

// Len returns the number of registered engines.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.engines)
}
