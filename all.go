// all.go — batch aggregation over many Validations.
//
// Semantics:
//   - All / AllOf / AllSeq are fail-fast: the first Failure in input order is
//     returned and nothing after it is inspected.
//   - On success, values are returned in input order; empty input succeeds with
//     an empty, non-nil slice.
//   - AllSet operates on sets (map[Validation[A]]struct{}). Sets are unordered,
//     so "first" is replaced by a canonical choice: the Failure with the
//     lexicographically smallest message.
//   - Collect is the accumulating variant: every failure message is kept, in
//     input order, joined with newlines like errors.Join renders.
package validation

import (
	"iter"
	"maps"
	"slices"
	"strings"
)

// All returns a Success holding every value of vs in order, or the first
// Failure found.
func All[A any](vs []Validation[A]) Validation[[]A] {
	return allSeq(slices.Values(vs), len(vs))
}

// AllOf is the variadic form of All.
func AllOf[A any](vs ...Validation[A]) Validation[[]A] {
	return All(vs)
}

// AllSeq is All over an iterator. Iteration stops at the first Failure, so
// lazily produced elements after it are never evaluated.
func AllSeq[A any](seq iter.Seq[Validation[A]]) Validation[[]A] {
	return allSeq(seq, 0)
}

func allSeq[A any](seq iter.Seq[Validation[A]], sizeHint int) Validation[[]A] {
	out := make([]A, 0, sizeHint)
	for v := range seq {
		if !v.ok {
			return Failure[[]A](v.msg)
		}
		out = append(out, v.value)
	}
	return Success(out)
}

// AllSet returns a Success holding the set of all success values in vs, or a
// Failure if any element failed. Duplicate values collapse. When several
// elements failed, the one with the smallest message is reported so the
// result does not depend on map iteration order.
func AllSet[A comparable](vs map[Validation[A]]struct{}) Validation[map[A]struct{}] {
	var (
		failed bool
		first  string
	)
	for v := range vs {
		if v.ok {
			continue
		}
		if !failed || v.msg < first {
			failed, first = true, v.msg
		}
	}
	if failed {
		return Failure[map[A]struct{}](first)
	}
	return Map(AllSeq(maps.Keys(vs)), toSet[A])
}

// Collect is the accumulating counterpart of All: it inspects every element
// and, if any failed, returns a Failure whose message is every failure
// message in input order, separated by newlines.
func Collect[A any](vs []Validation[A]) Validation[[]A] {
	out := make([]A, 0, len(vs))
	var msgs []string
	for _, v := range vs {
		if !v.ok {
			msgs = append(msgs, v.msg)
			continue
		}
		out = append(out, v.value)
	}
	if len(msgs) > 0 {
		return Failure[[]A](strings.Join(msgs, "\n"))
	}
	return Success(out)
}

func toSet[A comparable](values []A) map[A]struct{} {
	set := make(map[A]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
