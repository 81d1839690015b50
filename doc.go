// Package circle implements a console circle calculator: it reads a radius
// in centimeters, converts it to inches, and computes the circle's area and
// circumference. The arithmetic intentionally uses a five-decimal π
// (3.14159) so formatted two-decimal output is stable.
//
// # Usage
//
// The pure functions cover one measurement:
//
//	m := circle.Measure(2.54)
//	// m.RadiusIn == 1, m.Area ≈ 3.14159, m.Circumference ≈ 6.28318
//
// A [Session] drives the interactive prompt/read/compute cycle over a pair
// of streams:
//
//	s := circle.NewSession(os.Stdin, os.Stdout, circle.WithLoop(true))
//	err := s.Run(func(m circle.Measurement) error {
//		fmt.Printf("Circle's area is %3.2f (sq in).\n", m.Area)
//		return nil
//	})
//
// # Session semantics
//
// A session always prompts at least once. In loop mode a radius of exactly
// zero is the stop sentinel: the session ends before the measurement is
// emitted, and EOF ends the session cleanly. In one-shot mode the single
// radius is always measured, zero included.
//
// Malformed input never reaches a formula. A token that does not parse as a
// number surfaces as an [InvalidInputError] and terminates the session.
package circle
