package orchestration

import (
	"github.com/agbru/fibcomp/internal/fibonacci"
)

// GetVariantsToRun resolves the --variant selection to the list of variants
// the runner should execute. The special name "all" selects every registered
// variant in comparison order.
//
// Parameters:
//   - selection: The variant name from configuration ("all" or a registry name).
//   - factory: The variant registry.
//
// Returns:
//   - []fibonacci.Variant: The variants to execute.
//   - error: A configuration error if the name is not registered.
func GetVariantsToRun(selection string, factory fibonacci.VariantFactory) ([]fibonacci.Variant, error) {
	if selection == "all" {
		return factory.GetAll(), nil
	}
	variant, err := factory.Get(selection)
	if err != nil {
		return nil, err
	}
	return []fibonacci.Variant{variant}, nil
}
