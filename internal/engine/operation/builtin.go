package operation

import "math"

// builtin pairs a name with its function, preserving registration order.
type builtin struct {
	name string
	fn   Func
}

// builtins returns the standard operation set in registration order.
func builtins() []builtin {
	return []builtin{
		{"add", addOp},
		{"subtract", subtractOp},
		{"multiply", multiplyOp},
		{"divide", divideOp},
		{"power", powerOp},
		{"root", rootOp},
		{"modulus", modulusOp},
		{"int_divide", intDivideOp},
		{"percent", percentOp},
		{"abs_diff", absDiffOp},
	}
}

func addOp(a, b float64) (float64, error) {
	return a + b, nil
}

func subtractOp(a, b float64) (float64, error) {
	return a - b, nil
}

func multiplyOp(a, b float64) (float64, error) {
	return a * b, nil
}

func divideOp(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Op: "divide", Message: "division by zero is not allowed"}
	}
	return a / b, nil
}

func powerOp(a, b float64) (float64, error) {
	result := math.Pow(a, b)
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, &Error{Op: "power", Message: "invalid result from power operation"}
	}
	return result, nil
}

// rootOp computes the bth root of a. Odd roots of negative numbers
// preserve sign; even roots of negative numbers fail.
func rootOp(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Op: "root", Message: "root degree cannot be zero"}
	}
	if a < 0 && math.Mod(b, 2) == 0 {
		return 0, &Error{Op: "root", Message: "cannot calculate even root of negative number"}
	}

	var result float64
	if a < 0 {
		result = -math.Pow(-a, 1/b)
	} else {
		result = math.Pow(a, 1/b)
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, &Error{Op: "root", Message: "invalid result from root operation"}
	}
	return result, nil
}

// modulusOp gives the result the sign of the divisor.
func modulusOp(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Op: "modulus", Message: "modulus by zero is not allowed"}
	}
	result := math.Mod(a, b)
	if result != 0 && (result < 0) != (b < 0) {
		result += b
	}
	return result, nil
}

func intDivideOp(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Op: "int_divide", Message: "division by zero is not allowed"}
	}
	return math.Floor(a / b), nil
}

// percentOp returns what percentage a is of b.
func percentOp(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Op: "percent", Message: "cannot calculate percentage with zero denominator"}
	}
	return (a / b) * 100, nil
}

func absDiffOp(a, b float64) (float64, error) {
	return math.Abs(a - b), nil
}
