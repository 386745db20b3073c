package gate

import (
	"log"
	"reflect"

	"github.com/delaneyj/jumpgate/internal/same"
)

type config struct {
	warn    func(msg string)
	equal   func(a, b any) bool
	present func(v any) bool
}

// Option configures a Gate.
type Option func(*config)

// WithWarn routes misuse warnings to fn instead of the standard logger.
func WithWarn(fn func(msg string)) Option {
	return func(c *config) { c.warn = fn }
}

// WithEqual sets the comparison a Provider uses to skip redundant updates.
// The default compares by identity, so a func only equals itself.
func WithEqual(fn func(a, b any) bool) Option {
	return func(c *config) { c.equal = fn }
}

// WithPresent sets the predicate that decides whether content counts as
// present. Content that is not present leaves the slot empty.
func WithPresent(fn func(v any) bool) Option {
	return func(c *config) { c.present = fn }
}

func newConfig(opts []Option) *config {
	c := &config{
		warn:    func(msg string) { log.Print(msg) },
		equal:   same.Equal,
		present: nonZero,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// nonZero treats nil and zero values as absent, the same way a Consumer
// falls back on empty content.
func nonZero(v any) bool {
	return v != nil && !reflect.ValueOf(v).IsZero()
}
