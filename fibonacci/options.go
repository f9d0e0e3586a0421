package fibonacci

// Option configures a single generation request.
type Option func(*request)

// request is the raw form of a call, assembled from options before any
// validation. Presence flags keep an explicit zero distinct from an omitted
// argument.
type request struct {
	end       any
	hasEnd    bool
	start     any
	hasStart  bool
	length    any
	hasLength bool
	exclusive bool
}

// End bounds the sequence by value: terms are emitted while they do not
// exceed v (or stay below it when Exclusive is set).
func End(v any) Option {
	return func(r *request) {
		r.end = v
		r.hasEnd = true
	}
}

// Start sets the starting offset. The default is 0.
func Start(v any) Option {
	return func(r *request) {
		r.start = v
		r.hasStart = true
	}
}

// Inclusive controls whether End itself is a valid term. The default is true.
// It has no effect in length mode.
func Inclusive(b bool) Option {
	return func(r *request) {
		r.exclusive = !b
	}
}

// Exclusive is shorthand for Inclusive(false).
func Exclusive() Option {
	return Inclusive(false)
}

// Length bounds the sequence by number of terms. v must be an integer type.
func Length(v any) Option {
	return func(r *request) {
		r.length = v
		r.hasLength = true
	}
}

func newRequest(opts []Option) request {
	var r request
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}
	return r
}

// mode reports which bound the request selects, or ModeUnknown when it
// selects none or both.
func (r request) mode() Mode {
	switch {
	case r.hasEnd && !r.hasLength:
		return ModeEnd
	case r.hasLength && !r.hasEnd:
		return ModeLength
	default:
		return ModeUnknown
	}
}
