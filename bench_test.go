package circle

import (
	"io"
	"strings"
	"testing"
)

func BenchmarkMeasure(b *testing.B) {
	var m Measurement
	for i := 0; i < b.N; i++ {
		m = Measure(2.54)
	}
	_ = m
}

// BenchmarkSessionRun exercises the full prompt/read/parse/compute cycle
// over a long looping transcript.
func BenchmarkSessionRun(b *testing.B) {
	var sb strings.Builder
	for i := 1; i <= 1000; i++ {
		sb.WriteString("2.54 ")
	}
	sb.WriteString("0")
	input := sb.String()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := NewSession(strings.NewReader(input), io.Discard, WithLoop(true))
		err := s.Run(func(Measurement) error { return nil })
		if err != nil {
			b.Fatal(err)
		}
	}
}
