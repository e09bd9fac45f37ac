package sheets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/gaborage/go-sheets/logger"
)

const (
	// DefaultMaxRetries is the number of transient failures absorbed
	// before the single unconditional final attempt.
	DefaultMaxRetries = 9

	// DefaultBackoff is the fixed delay between attempts. There is no
	// exponential growth and no jitter.
	DefaultBackoff = 30 * time.Second
)

// errorClass is the retry classification of a failed remote call.
type errorClass int

const (
	classUnclassified errorClass = iota
	classFatal
	classParse
	classServer
	classRateLimit
	classUnavailable
)

func (c errorClass) String() string {
	switch c {
	case classParse:
		return "parse"
	case classServer:
		return "server"
	case classRateLimit:
		return "rate_limit"
	case classUnavailable:
		return "unavailable"
	case classFatal:
		return "fatal"
	default:
		return "unclassified"
	}
}

func (c errorClass) transient() bool {
	switch c {
	case classParse, classServer, classRateLimit, classUnavailable:
		return true
	}
	return false
}

// Substrings matched against API error text when the structured HTTP
// code is inconclusive. These track the remote service's error phrasing
// and are pinned by tests as a versioned compatibility contract.
const (
	serverErrorText   = "Server Error"
	quotaExceededText = "Quota exceeded"
	readQuotaText     = "Read requests per minute per user"
	unavailableText   = "the service is currently unavailable"
)

// classify derives the retry classification of err. Structured HTTP
// codes on googleapi errors are consulted first; text matching is a
// fallback for proxies and older API versions that only phrase the
// condition in the message. Errors that are neither malformed-response
// decode failures nor googleapi errors are left unclassified.
func classify(err error) errorClass {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return classParse
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return classUnclassified
	}

	switch apiErr.Code {
	case http.StatusBadGateway:
		return classServer
	case http.StatusTooManyRequests:
		return classRateLimit
	case http.StatusServiceUnavailable:
		return classUnavailable
	}

	text := apiErr.Error()
	switch {
	case strings.Contains(text, "502"), strings.Contains(text, serverErrorText):
		return classServer
	case strings.Contains(text, quotaExceededText), strings.Contains(text, readQuotaText):
		return classRateLimit
	case strings.Contains(strings.ToLower(text), unavailableText):
		return classUnavailable
	}
	return classFatal
}

// Retrier executes remote operations with bounded retry on transient
// failures. Fatal API errors and non-API error types propagate
// immediately, always carrying the original error value so callers can
// inspect it. A Retrier holds no per-call state; concurrent Do calls
// run independent attempt counters.
type Retrier struct {
	log        logger.Logger
	maxRetries int
	backoff    time.Duration
	sleep      func(time.Duration)
}

// NewRetrier creates a Retrier with the given bounds. Non-positive
// values fall back to the defaults.
func NewRetrier(log logger.Logger, maxRetries int, backoff time.Duration) *Retrier {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if backoff <= 0 {
		backoff = DefaultBackoff
	}
	return &Retrier{
		log:        log,
		maxRetries: maxRetries,
		backoff:    backoff,
		sleep:      time.Sleep,
	}
}

// Do runs op until it succeeds or fails non-transiently. Each
// transient failure is logged and followed by a fixed blocking backoff,
// up to maxRetries attempts. After the budget is exhausted one final
// attempt is made unconditionally and its outcome, success or failure,
// is returned as-is without further classification.
func (r *Retrier) Do(op func() error) error {
	for attempt := 0; attempt < r.maxRetries; attempt++ {
		err := op()
		if err == nil {
			return nil
		}

		class := classify(err)
		if class == classFatal {
			r.log.Error().
				Err(err).
				Str("class", class.String()).
				Msg("Sheets API call failed with non-retryable error")
			return err
		}
		if !class.transient() {
			// Not an API error; propagate untouched and unlogged.
			return err
		}

		r.log.Warn().
			Err(err).
			Str("class", class.String()).
			Int("attempt", attempt+1).
			Int("max_retries", r.maxRetries).
			Dur("backoff", r.backoff).
			Msg("Transient Sheets API failure, retrying after backoff")
		r.sleep(r.backoff)
	}

	r.log.Warn().
		Int("attempts", r.maxRetries).
		Msg("Retry budget exhausted, making one final attempt")
	return op()
}

// Call runs op through r and returns its value. It is the generic
// companion to Do for operations that produce a result.
func Call[T any](r *Retrier, op func() (T, error)) (T, error) {
	var result T
	err := r.Do(func() error {
		v, err := op()
		if err != nil {
			return err
		}
		result = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}
