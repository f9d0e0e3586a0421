package fibonacci

import (
	"math"

	apperrors "github.com/agbru/fibseq/internal/errors"
)

// Mode identifies the bound that terminates a sequence.
type Mode int

const (
	// ModeUnknown is reported for requests rejected before a mode could be
	// chosen.
	ModeUnknown Mode = iota
	// ModeEnd stops at the first term above the end bound.
	ModeEnd
	// ModeLength stops after a fixed number of terms.
	ModeLength
)

// String returns the label used in logs, metrics and span attributes.
func (m Mode) String() string {
	switch m {
	case ModeEnd:
		return "end"
	case ModeLength:
		return "length"
	default:
		return "unknown"
	}
}

// plan is a validated request, ready to run.
type plan struct {
	mode  Mode
	start int64
	// end is the effective inclusive bound in end mode.
	end int64
	// empty is set when the bound admits no int64 term at all.
	empty  bool
	length int64
}

// validate turns a request into a plan. Structural errors come first, then
// argument types in the order start, end, length, then argument values.
func (r request) validate(strict bool) (plan, error) {
	p := plan{mode: r.mode()}

	switch {
	case !r.hasEnd && !r.hasLength:
		return p, apperrors.NewConfigError("either end or length must be provided")
	case r.hasEnd && r.hasLength:
		return p, apperrors.NewConfigError("end and length are mutually exclusive")
	}

	var startArg any = 0
	if r.hasStart {
		startArg = r.start
	}
	start, err := ParseNumber("start", startArg)
	if err != nil {
		return p, err
	}

	var end, length Number
	if r.hasEnd {
		if end, err = ParseNumber("end", r.end); err != nil {
			return p, err
		}
	} else {
		if length, err = ParseNumber("length", r.length); err != nil {
			return p, err
		}
		if length.IsFloat() {
			return p, apperrors.NewTypeError("length", "an integer", r.length)
		}
	}

	if p.start, err = start.Ceil(); err != nil {
		return p, err
	}

	if p.mode == ModeLength {
		// Integer kinds never fail here; values past MaxInt64 saturate and
		// hit the overflow check long before they matter.
		p.length, _ = length.TruncSaturating()
		if p.length < 0 && strict {
			return p, apperrors.ValidationError{Field: "length", Message: "must be non-negative, got " + length.String()}
		}
		return p, nil
	}

	e, err := end.TruncSaturating()
	if err != nil {
		return p, err
	}
	if r.exclusive {
		if e == math.MinInt64 {
			p.empty = true
			return p, nil
		}
		e--
	}
	p.end = e

	if p.start < 0 && p.start <= p.end {
		return p, apperrors.NewConfigError(
			"start %d is negative and within end bound %d: the sequence would never reach the bound", p.start, p.end)
	}
	return p, nil
}

// run evaluates the plan.
func (p plan) run() ([]int64, error) {
	if p.mode == ModeEnd {
		if p.empty {
			return []int64{}, nil
		}
		return untilEnd(p.start, p.end), nil
	}
	return firstTerms(p.start, p.length)
}

// seed returns the first two terms for the given start.
func seed(start int64) (int64, int64) {
	if start == 0 {
		return 0, 1
	}
	return start, start
}

// addInt64 returns a+b and whether the sum fits in an int64.
func addInt64(a, b int64) (int64, bool) {
	s := a + b
	if (a >= 0) == (b >= 0) && (s >= 0) != (a >= 0) {
		return 0, false
	}
	return s, true
}

// untilEnd emits terms while they are representable and do not exceed end.
// start must not be negative unless it is already above end.
func untilEnd(start, end int64) []int64 {
	out := make([]int64, 0)
	a, b := seed(start)
	aOK, bOK := true, true
	for aOK && a <= end {
		out = append(out, a)
		next, ok := addInt64(a, b)
		a, aOK, b, bOK = b, bOK, next, ok && bOK
	}
	return out
}

// firstTerms emits exactly n terms, failing if one of them does not fit in
// an int64. A non-positive n yields an empty sequence.
func firstTerms(start, n int64) ([]int64, error) {
	if n <= 0 {
		return []int64{}, nil
	}
	out := make([]int64, 0, min(n, MaxTerms))
	a, b := seed(start)
	aOK, bOK := true, true
	for i := int64(0); i < n; i++ {
		if !aOK {
			// The first two terms are the seed, so i >= 2 here.
			return nil, apperrors.CalculationError{Cause: apperrors.OverflowError{
				Index: int(i),
				A:     out[i-2],
				B:     out[i-1],
			}}
		}
		out = append(out, a)
		next, ok := addInt64(a, b)
		a, aOK, b, bOK = b, bOK, next, ok && bOK
	}
	return out, nil
}
