package service

import "github.com/google/uuid"

const ShortIDLength = 4

type IDGenerator func() string

// NewShortID returns the first ShortIDLength hex digits of a random uuid.
// Callers do not check the result against existing ids.
func NewShortID() string {
	return uuid.NewString()[:ShortIDLength]
}

type Option func(*settings)

type settings struct {
	newID IDGenerator
}

func WithIDGenerator(gen IDGenerator) Option {
	return func(s *settings) {
		if gen != nil {
			s.newID = gen
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{newID: NewShortID}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
