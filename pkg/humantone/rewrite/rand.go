package rewrite

import "math/rand"

// Source is the randomness capability the probabilistic passes consume.
// Tests supply a deterministic implementation to assert exact outputs.
type Source interface {
	// Chance reports whether an event with probability p fires.
	// p is clamped to [0,1]; 0 never fires, 1 always fires.
	Chance(p float64) bool

	// Pick returns a uniform index in [0, n). n <= 1 returns 0.
	Pick(n int) int
}

// NewSource returns a math/rand backed source. A source is not safe for
// concurrent use; callers create one per pipeline run.
func NewSource(seed int64) Source {
	return &mathSource{r: rand.New(rand.NewSource(seed))}
}

type mathSource struct {
	r *rand.Rand
}

func (s *mathSource) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *mathSource) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return s.r.Intn(n)
}
