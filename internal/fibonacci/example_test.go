package fibonacci

import (
	"context"
	"fmt"
)

// ExampleNewDefaultFactory demonstrates using the factory to obtain
// pre-registered variants by name.
func ExampleNewDefaultFactory() {
	factory := NewDefaultFactory()

	// List available variants.
	fmt.Println(factory.List())

	// Get a variant by name.
	variant, err := factory.Get("memo")
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	result, err := variant.Calculate(context.Background(), 10, Options{})
	if err != nil {
		fmt.Printf("Calculation error: %v\n", err)
		return
	}

	fmt.Println(result)
	// Output:
	// [const memo naive]
	// 55
}

// ExampleMemoized demonstrates the cache-backed recursive evaluator.
func ExampleMemoized() {
	cache := NewCache(TableCapacity)
	result, err := Memoized(42, cache)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(result)
	fmt.Println(cache.Filled(41))
	// Output:
	// 267914296
	// true
}

// ExampleConst demonstrates the build-time lookup table.
func ExampleConst() {
	result, err := Const(42)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(result)
	// Output:
	// 267914296
}
