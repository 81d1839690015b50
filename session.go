package circle

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// InvalidInputError reports a radius token that could not be parsed as a
// number. An empty Token means the input ended before any token was read.
type InvalidInputError struct {
	Token string
}

func (e *InvalidInputError) Error() string {
	if e.Token == "" {
		return "invalid radius: no input"
	}
	return fmt.Sprintf("invalid radius %q: expected a number", e.Token)
}

// Session drives the prompt/read/compute cycle over a pair of streams.
// Radii are read as whitespace-delimited tokens from the input stream; the
// prompt text is written to the prompt writer before each read.
type Session struct {
	scanner *bufio.Scanner
	prompt  io.Writer
	loop    bool
}

// Option configures a Session.
type Option func(*Session)

// WithLoop controls looping. When true, Run repeats the cycle until a zero
// radius or end of input; when false (default), Run performs exactly one
// cycle.
func WithLoop(loop bool) Option {
	return func(s *Session) {
		s.loop = loop
	}
}

// NewSession creates a Session reading radii from in and writing prompt text
// to prompt.
func NewSession(in io.Reader, prompt io.Writer, opts ...Option) *Session {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	s := &Session{scanner: scanner, prompt: prompt}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the session, invoking emit for each completed Measurement.
//
// In one-shot mode exactly one radius is read and measured, zero included;
// end of input before a token is an *InvalidInputError. In loop mode the
// cycle repeats until a radius of exactly zero (the measurement for the
// zero itself is not emitted) or until end of input, both of which end the
// session cleanly. A token that does not parse as a number terminates the
// run with an *InvalidInputError in either mode. An error returned by emit
// aborts the run and is propagated unchanged.
func (s *Session) Run(emit func(Measurement) error) error {
	for {
		fmt.Fprint(s.prompt, Prompt)

		radius, err := s.readRadius()
		if err == io.EOF {
			if s.loop {
				return nil
			}
			return &InvalidInputError{}
		}
		if err != nil {
			return err
		}

		if s.loop && radius == 0 {
			return nil
		}
		if err := emit(Measure(radius)); err != nil {
			return err
		}
		if !s.loop {
			return nil
		}
	}
}

// readRadius reads the next whitespace-delimited token and parses it as a
// float64. Returns io.EOF when the input is exhausted.
func (s *Session) readRadius() (float64, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return 0, fmt.Errorf("reading radius: %w", err)
		}
		return 0, io.EOF
	}
	token := s.scanner.Text()
	radius, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, &InvalidInputError{Token: token}
	}
	return radius, nil
}
