// Package calc - Calculator registry and dispatcher
package calc

import (
	"fmt"
	"sync"

	"mme-calc/internal/errors"
)

// Registry maps (category, index) selections to calculator specs.
// The table is built once at startup and read-only afterwards.
type Registry struct {
	mu    sync.RWMutex
	specs map[Category][]Spec
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[Category][]Spec),
	}
}

// Register appends specs to a category's ordered calculator list.
// Slugs must be unique within a category.
func (r *Registry) Register(specs ...Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, spec := range specs {
		if spec.Compute == nil {
			return fmt.Errorf("calculator %q has no compute function", spec.Slug)
		}
		if spec.Slug == "" {
			return fmt.Errorf("calculator %q has no slug", spec.Name)
		}
		for _, existing := range r.specs[spec.Category] {
			if existing.Slug == spec.Slug {
				return fmt.Errorf("calculator already registered: %s/%s", spec.Category.Slug(), spec.Slug)
			}
		}
		r.specs[spec.Category] = append(r.specs[spec.Category], spec)
	}
	return nil
}

// MustRegister registers specs and panics on failure (startup wiring)
func (r *Registry) MustRegister(specs ...Spec) {
	if err := r.Register(specs...); err != nil {
		panic(err)
	}
}

// Categories returns the categories that have calculators, in menu order
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cats := make([]Category, 0, len(r.specs))
	for _, c := range AllCategories {
		if len(r.specs[c]) > 0 {
			cats = append(cats, c)
		}
	}
	return cats
}

// ByCategory returns a category's ordered calculator list
func (r *Registry) ByCategory(c Category) []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.specs[c]
}

// Lookup resolves a 1-based (category, index) selection to a spec.
// Index 0 is the back/exit navigation sentinel and is never a valid
// calculator selection; it is rejected here so formulas never see it.
func (r *Registry) Lookup(c Category, index int) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs, ok := r.specs[c]
	if !ok {
		return Spec{}, errors.NotFound("category", fmt.Sprintf("%d", int(c)))
	}
	if index == 0 {
		return Spec{}, errors.Navigation("0 is the back sentinel, not a calculator index")
	}
	if index < 1 || index > len(specs) {
		return Spec{}, errors.NotFound("calculator", fmt.Sprintf("%s/%d", c.Slug(), index))
	}
	return specs[index-1], nil
}

// Find resolves a (category slug, calculator slug) pair to a spec
func (r *Registry) Find(categorySlug, calcSlug string) (Spec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range AllCategories {
		if c.Slug() != categorySlug {
			continue
		}
		for _, spec := range r.specs[c] {
			if spec.Slug == calcSlug {
				return spec, nil
			}
		}
		return Spec{}, errors.NotFound("calculator", categorySlug+"."+calcSlug)
	}
	return Spec{}, errors.NotFound("category", categorySlug)
}

// Run dispatches validated inputs to a spec's compute function.
// The dispatcher performs no computation itself.
func (r *Registry) Run(spec Spec, in Inputs) (Result, error) {
	result, err := spec.Compute(in)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}

// Count returns the total number of registered calculators
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, specs := range r.specs {
		n += len(specs)
	}
	return n
}
