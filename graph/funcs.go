package graph

import "math"

// Standard operator functions, so common graphs compose without ad-hoc
// closures. Div follows IEEE float64 semantics: dividing by zero yields
// ±Inf or NaN, which memoizes like any other result.
var (
	Neg  UnaryFunc = func(x float64) float64 { return -x }
	Abs  UnaryFunc = math.Abs
	Sqrt UnaryFunc = math.Sqrt

	Add BinaryFunc = func(x, y float64) float64 { return x + y }
	Sub BinaryFunc = func(x, y float64) float64 { return x - y }
	Mul BinaryFunc = func(x, y float64) float64 { return x * y }
	Div BinaryFunc = func(x, y float64) float64 { return x / y }
	Pow BinaryFunc = math.Pow
	Min BinaryFunc = math.Min
	Max BinaryFunc = math.Max
)
