package fibonacci

import (
	"sort"

	apperrors "github.com/agbru/fibcomp/internal/errors"
)

// VariantFactory resolves variant names to implementations. It decouples the
// application wiring from the concrete strategies so tests can substitute
// their own registries.
type VariantFactory interface {
	// Get returns the variant registered under the given name.
	Get(name string) (Variant, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered variant in registration order.
	GetAll() []Variant
}

// defaultFactory is the standard registry holding the three strategies.
type defaultFactory struct {
	order    []string
	registry map[string]Variant
}

// NewDefaultFactory creates a factory with the naive, memoized, and
// precomputed variants registered under the names "naive", "memo", and
// "const". Registration order is the comparison order: slowest strategy
// first.
func NewDefaultFactory() VariantFactory {
	return &defaultFactory{
		order: []string{"naive", "memo", "const"},
		registry: map[string]Variant{
			"naive": NaiveVariant{},
			"memo":  MemoVariant{},
			"const": ConstVariant{},
		},
	}
}

// Get returns the variant registered under name.
func (f *defaultFactory) Get(name string) (Variant, error) {
	v, ok := f.registry[name]
	if !ok {
		return nil, apperrors.NewConfigError("unknown variant %q (available: %v)", name, f.List())
	}
	return v, nil
}

// List returns the registered names in sorted order.
func (f *defaultFactory) List() []string {
	names := make([]string, 0, len(f.registry))
	for name := range f.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered variant in comparison order.
func (f *defaultFactory) GetAll() []Variant {
	variants := make([]Variant, 0, len(f.order))
	for _, name := range f.order {
		variants = append(variants, f.registry[name])
	}
	return variants
}
