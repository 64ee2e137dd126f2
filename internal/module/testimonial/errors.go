package testimonial

import "errors"

// ErrStoreUnavailable is returned while the circuit breaker is rejecting calls.
var ErrStoreUnavailable = errors.New("testimonial store unavailable")
