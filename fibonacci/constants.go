package fibonacci

const (
	// MaxTerms is the length of the longest sequence whose terms all fit in
	// an int64: F(0) through F(92).
	MaxTerms = 93

	// tracerName identifies spans emitted by this package.
	tracerName = "github.com/agbru/fibseq/fibonacci"

	// spanName is the name of the span wrapping one generation call.
	spanName = "fibonacci.Generate"

	// batchSpanName is the name of the span wrapping GenerateBatch.
	batchSpanName = "fibonacci.GenerateBatch"
)
