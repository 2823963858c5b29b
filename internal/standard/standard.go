// Package standard holds the catalog of compliance standards a policy
// document can be validated against. Built-in standards are compiled-in
// data; custom standards are registered at runtime and differ only in
// data, never in code path.
package standard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrUnknownStandard is returned by Resolve for an unregistered standard id.
var ErrUnknownStandard = errors.New("unknown standard")

// SectionSpec names one section a standard expects the document to contain.
// Aliases are alternate headings or keywords matched case-insensitively.
type SectionSpec struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases,omitempty"`
	Required bool     `json:"required"`
}

// Standard is a named set of required sections plus document-level rules.
// Values are read-only after construction; Structured means the document
// must exhibit numbered or hierarchical headings.
type Standard struct {
	ID          string
	DisplayName string
	Sections    []SectionSpec
	MinLength   int
	Structured  bool
}

// Section returns the spec with the given name, or nil if the standard
// does not define it.
func (s *Standard) Section(name string) *SectionSpec {
	for i := range s.Sections {
		if s.Sections[i].Name == name {
			return &s.Sections[i]
		}
	}
	return nil
}

// Summary is the listing view of a registered standard.
type Summary struct {
	ID          string
	DisplayName string
}

// Registry resolves standard ids to their definitions. The built-in
// catalog is registered at construction; customs may be added later.
// All methods are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*Standard
}

// NewRegistry returns a registry pre-populated with the built-in
// standards in their fixed catalog order.
func NewRegistry() *Registry {
	r := &Registry{byID: make(map[string]*Standard)}
	for _, s := range builtins() {
		r.order = append(r.order, s.ID)
		r.byID[s.ID] = s
	}
	return r
}

// Resolve returns the standard registered under id.
func (r *Registry) Resolve(id string) (*Standard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStandard, id)
	}
	return s, nil
}

// List returns summaries of all registered standards in registration order.
func (r *Registry) List() []Summary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Summary, 0, len(r.order))
	for _, id := range r.order {
		s := r.byID[id]
		out = append(out, Summary{ID: s.ID, DisplayName: s.DisplayName})
	}
	return out
}

// RegisterCustom builds a standard from caller-supplied section specs and
// registers it under a synthetic id. minLength <= 0 falls back to the
// default custom minimum. Built-ins are never mutated or replaced.
func (r *Registry) RegisterCustom(sections []SectionSpec, minLength int) *Standard {
	if minLength <= 0 {
		minLength = customMinLength
	}
	s := &Standard{
		ID:          "custom-" + uuid.NewString(),
		DisplayName: "Custom Standard",
		Sections:    append([]SectionSpec(nil), sections...),
		MinLength:   minLength,
		Structured:  false,
	}
	r.add(s)
	return s
}

// Register adds a fully-specified standard, e.g. one loaded from a
// standard file. Registering over an existing id is an error.
func (r *Registry) Register(s *Standard) error {
	r.mu.RLock()
	_, exists := r.byID[s.ID]
	r.mu.RUnlock()
	if exists {
		return fmt.Errorf("standard %q is already registered", s.ID)
	}
	r.add(s)
	return nil
}

func (r *Registry) add(s *Standard) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, s.ID)
	r.byID[s.ID] = s
}

// SpecsFromNames converts plain section names into required SectionSpecs,
// the conversion the engine owns for caller-supplied custom standards.
func SpecsFromNames(names []string) []SectionSpec {
	specs := make([]SectionSpec, 0, len(names))
	for _, n := range names {
		specs = append(specs, SectionSpec{Name: n, Required: true})
	}
	return specs
}
