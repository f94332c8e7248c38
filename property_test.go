package validation

import (
	"strconv"
	"testing"
	"testing/quick"
)

func half(n int) Validation[int] {
	if n%2 != 0 {
		return Failure[int](InvalidValue("even", n))
	}
	return Success(n / 2)
}

func describeInt(n int) Validation[string] {
	if n < 0 {
		return Failure[string](InvalidValue("non-negative", n))
	}
	return Success(strconv.Itoa(n))
}

// source builds either variant from quick-generated inputs.
func source(n int, fail bool, msg string) Validation[int] {
	if fail {
		return Failure[int](msg)
	}
	return Success(n)
}

func TestQuickMapIdentity(t *testing.T) {
	property := func(n int, fail bool, msg string) bool {
		v := source(n, fail, msg)
		return Map(v, func(x int) int { return x }) == v
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("map identity failed: %v", err)
	}
}

func TestQuickMapOnFailureIgnoresFunction(t *testing.T) {
	property := func(msg string, n int) bool {
		got := Map(Failure[int](msg), func(int) int { return n })
		return got == Failure[int](msg)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("map must preserve failures: %v", err)
	}
}

func TestQuickFlatMapLeftIdentity(t *testing.T) {
	property := func(n int) bool {
		return FlatMap(Success(n), half) == half(n)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}
}

func TestQuickFlatMapRightIdentity(t *testing.T) {
	property := func(n int, fail bool, msg string) bool {
		v := source(n, fail, msg)
		return FlatMap(v, Success[int]) == v
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}
}

func TestQuickFlatMapAssociativity(t *testing.T) {
	property := func(n int, fail bool, msg string) bool {
		v := source(n, fail, msg)
		left := FlatMap(FlatMap(v, half), describeInt)
		right := FlatMap(v, func(x int) Validation[string] { return FlatMap(half(x), describeInt) })
		return left == right
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestQuickFlatMapIsFlattenOfMap(t *testing.T) {
	property := func(n int, fail bool, msg string) bool {
		v := source(n, fail, msg)
		return FlatMap(v, half) == Flatten(Map(v, half))
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("flatMap must equal flatten(map): %v", err)
	}
}
