// Package skill enumerates the seven tracked player skills and provides
// array-backed rating sets keyed by that enumeration.
package skill

import "fmt"

// Rating bounds shared across the engines.
const (
	MinRating = 0
	MaxRating = 99

	// AgingFloor is the lowest value aging decay may leave a skill at.
	// Development and generation clamp to MinRating instead.
	AgingFloor = 30
)

// Skill identifies one of the seven tracked skills.
type Skill int

// The full, closed set of skills. Order is part of the contract: Ratings and
// every per-skill table index by these values.
const (
	Shooting Skill = iota
	Rebounding
	Passing
	BallHandling
	PerimeterDefense
	PostDefense
	InsideShooting

	// Count is the number of tracked skills.
	Count
)

var names = [Count]string{
	Shooting:         "shooting",
	Rebounding:       "rebounding",
	Passing:          "passing",
	BallHandling:     "ball_handling",
	PerimeterDefense: "perimeter_defense",
	PostDefense:      "post_defense",
	InsideShooting:   "inside_shooting",
}

// String returns the snake_case name used in serialization and logs.
func (s Skill) String() string {
	if s < 0 || s >= Count {
		return fmt.Sprintf("skill(%d)", int(s))
	}
	return names[s]
}

// Valid reports whether s is one of the tracked skills.
func (s Skill) Valid() bool {
	return s >= 0 && s < Count
}

// Parse resolves a serialized skill name back to its identifier.
func Parse(name string) (Skill, error) {
	for s, n := range names {
		if n == name {
			return Skill(s), nil
		}
	}
	return 0, fmt.Errorf("unknown skill %q", name)
}

// All returns every skill in declaration order. The slice is freshly
// allocated; callers may mutate it.
func All() []Skill {
	out := make([]Skill, Count)
	for i := range out {
		out[i] = Skill(i)
	}
	return out
}

// Ratings holds one integer value per skill.
type Ratings [Count]int

// Get returns the value for s. Out-of-range skills read as zero.
func (r *Ratings) Get(s Skill) int {
	if !s.Valid() {
		return 0
	}
	return r[s]
}

// Set stores v for s, clamped to [MinRating, MaxRating].
func (r *Ratings) Set(s Skill, v int) {
	if !s.Valid() {
		return
	}
	r[s] = Clamp(v, MinRating, MaxRating)
}

// Average returns the mean rating across all skills.
func (r *Ratings) Average() float64 {
	sum := 0
	for _, v := range r {
		sum += v
	}
	return float64(sum) / float64(Count)
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
