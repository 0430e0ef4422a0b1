package scene

import (
	"math"
	"math/rand"

	"github.com/gonewx/skyscene/pkg/config"
)

// schedulePeriod is the loop length of a strike schedule in seconds.
// Long enough that the repetition is not noticeable, short enough that
// the event list stays small.
const schedulePeriod = 120.0

// Strike is one precomputed discharge event. Its seed drives the bolt
// path jitter so the same strike always draws the same bolt, at any
// frame within its window.
type Strike struct {
	Start    float64
	Duration float64
	Seed     int64
}

// StrikeSchedule is a seeded, looping event list for the transient
// discharge layer. The source design evaluated lightning timing with
// true randomness at draw time; this implementation precomputes the
// schedule instead so every frame stays a pure function of time and the
// whole scene remains replayable.
type StrikeSchedule struct {
	strikes []Strike
	period  float64
}

// NewStrikeSchedule generates events covering one loop period, with
// inter-strike gaps and flash windows drawn from the configured ranges.
func NewStrikeSchedule(seed int64, interval, duration config.Range) *StrikeSchedule {
	if interval.Max <= 0 {
		interval = config.Range{Min: 3, Max: 8}
	}
	if duration.Max <= 0 {
		duration = config.Range{Min: 0.2, Max: 0.35}
	}

	rng := rand.New(rand.NewSource(seed))
	s := &StrikeSchedule{period: schedulePeriod}
	at := sample(rng, interval)
	for at < schedulePeriod {
		d := sample(rng, duration)
		s.strikes = append(s.strikes, Strike{
			Start:    at,
			Duration: d,
			Seed:     rng.Int63(),
		})
		at += d + sample(rng, interval)
	}
	return s
}

// Active returns the strike covering time t, with the normalized
// progress of its flash window in [0,1). The schedule loops over its
// period; t may be any non-negative value.
func (s *StrikeSchedule) Active(t float64) (Strike, float64, bool) {
	if s == nil || len(s.strikes) == 0 {
		return Strike{}, 0, false
	}
	phase := math.Mod(t, s.period)
	if phase < 0 {
		phase += s.period
	}
	for _, st := range s.strikes {
		if phase >= st.Start && phase < st.Start+st.Duration {
			return st, (phase - st.Start) / st.Duration, true
		}
	}
	return Strike{}, 0, false
}

// Len returns the number of events in one loop period.
func (s *StrikeSchedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.strikes)
}

// Period returns the schedule loop length in seconds.
func (s *StrikeSchedule) Period() float64 {
	return s.period
}

// FlashEnvelope maps strike progress to full-screen flash opacity:
// a fast rise over the first fifth of the window, then a longer decay.
func FlashEnvelope(progress float64) float64 {
	if progress < 0 || progress >= 1 {
		return 0
	}
	const rise = 0.2
	if progress < rise {
		return progress / rise
	}
	return 1 - (progress-rise)/(1-rise)
}
