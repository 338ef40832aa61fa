package fetch

import "github.com/rs/zerolog"

// Option configures a fan-out.
type Option func(*options)

// DefaultMaxPages is the largest page count a paginated resource may
// report. TMDB serves at most 500 result pages.
const DefaultMaxPages = 500

type options struct {
	limit    int
	maxPages int
	logger   zerolog.Logger
}

func newOptions(opts []Option) options {
	o := options{maxPages: DefaultMaxPages, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLimit caps the number of units in flight at once. Zero or a negative
// value means no cap.
func WithLimit(limit int) Option {
	return func(o *options) {
		o.limit = limit
	}
}

// WithMaxPages sets the largest page count All accepts from the first page.
// Values below 1 are ignored.
func WithMaxPages(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.maxPages = n
		}
	}
}

// WithLogger sets the logger used for debug events.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
