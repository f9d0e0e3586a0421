// Package fibonacci generates Fibonacci sequences bounded either by a maximum
// value or by a number of terms, with an optional starting offset.
//
// A request is described with options and evaluated by Generate:
//
//	seq, err := fibonacci.Generate(fibonacci.Length(5))           // [0 1 1 2 3]
//	seq, err := fibonacci.Generate(fibonacci.End(10))             // [0 1 1 2 3 5 8]
//	seq, err := fibonacci.Generate(fibonacci.End(10), fibonacci.Exclusive())
//	seq, err := fibonacci.Generate(fibonacci.Start(5), fibonacci.Length(4)) // [5 5 10 15]
//
// Exactly one of End or Length must be given. Numeric arguments accept any Go
// integer or floating-point value; other types fail with a TypeError. A
// fractional start is rounded up, a fractional end is truncated toward zero.
//
// When the start is not zero the sequence is seeded with the start value
// twice, so the first two terms are equal. With a zero start the usual (0, 1)
// seed is used.
//
// Terms are int64. A term that does not fit fails the call with an
// OverflowError; the function never returns a partial sequence.
//
// A Generator carries the ambient collaborators (logger, metrics recorder,
// tracer provider) and is safe for concurrent use. The package-level Generate
// uses a Generator with no logging, no metrics and the global tracer provider.
//
// GenerateBatch evaluates several independent requests concurrently and
// reports one BatchResult per request.
package fibonacci
