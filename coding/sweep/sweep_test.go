package sweep

import (
	"context"
	"testing"

	"github.com/p25go/fec/coding/hamming"
	"gonum.org/v1/gonum/stat/combin"
)

func TestRoundTrip(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Name, func(t *testing.T) {
			stats := RoundTrip(context.Background(), c, 0, nil, false)

			if stats.Words != 1<<c.DataBits {
				t.Fatalf("expected %v words but found %v", 1<<c.DataBits, stats.Words)
			}
			if stats.Failures != 0 {
				t.Fatalf("expected no failures but found %v", stats.Failures)
			}
			if stats.Corrected.Mean != 0 {
				t.Fatalf("expected no corrections but found mean %v", stats.Corrected.Mean)
			}
		})
	}
}

func TestErrorSweepWithinRadius(t *testing.T) {
	for _, c := range All() {
		t.Run(c.Name, func(t *testing.T) {
			for weight := 1; weight <= c.Radius; weight++ {
				stats := ErrorSweep(context.Background(), c, weight, 0, nil, false)

				expected := (1 << c.DataBits) * combin.Binomial(c.Bits, weight)
				if stats.Words != expected {
					t.Fatalf("weight %v: expected %v words but found %v", weight, expected, stats.Words)
				}
				if stats.Failures != 0 {
					t.Fatalf("weight %v: expected no failures but found %v", weight, stats.Failures)
				}
				if stats.Corrected.Mean != float64(weight) {
					t.Fatalf("weight %v: expected corrected mean %v but found %v",
						weight, weight, stats.Corrected.Mean)
				}
			}
		})
	}
}

// A weight beyond the correction radius can never be reported as fully
// corrected, so every word counts as a failure.
func TestErrorSweepBeyondRadius(t *testing.T) {
	c := Hamming(hamming.Shortened)

	stats := ErrorSweep(context.Background(), c, 2, 0, nil, false)
	if stats.Failures != stats.Words {
		t.Fatalf("expected all %v words to fail but found %v", stats.Words, stats.Failures)
	}
}

func TestCheckpoints(t *testing.T) {
	c := Cyclic()

	calls := 0
	var last Stats
	stats := RoundTrip(context.Background(), c, 0, func(updated Stats) {
		calls++
		last = updated
	}, false)

	if calls != stats.Words {
		t.Fatalf("expected %v checkpoint calls but found %v", stats.Words, calls)
	}
	if last.Words != stats.Words {
		t.Fatalf("expected final checkpoint to match returned stats")
	}
}
