// Package demo holds the two functions the CI pipeline exercises: a fixed
// greeting and a numeric adder.
package demo

// Greeting is the text returned by Greet.
const Greeting = "Hello, World from Python CI!"

// Greet returns the fixed greeting.
func Greet() string {
	return Greeting
}

// Numeric is the set of built-in types Add accepts.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns a + b for operands that already share a type.
// Use Sum when the operands may mix integers and floats.
func Add[T Numeric](a, b T) T {
	return a + b
}
