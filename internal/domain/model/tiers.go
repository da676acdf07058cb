package model

import "strconv"

// TalentTier classifies a player's current overall ability. Used only at
// generation time; never mutated afterwards.
type TalentTier int

// Talent tiers, best first.
const (
	Superstar TalentTier = iota
	AllStar
	Starter
	Rotation
	Bench

	TalentTierCount
)

var talentTierNames = [TalentTierCount]string{
	Superstar: "superstar",
	AllStar:   "all_star",
	Starter:   "starter",
	Rotation:  "rotation",
	Bench:     "bench",
}

func (t TalentTier) String() string {
	if t < 0 || t >= TalentTierCount {
		return "talent(" + strconv.Itoa(int(t)) + ")"
	}
	return talentTierNames[t]
}

// PotentialTier classifies a player's ceiling, gating development.
type PotentialTier int

// Potential tiers, lowest first so a "bump" is tier+1 capped at Elite.
const (
	Bronze PotentialTier = iota
	Silver
	Gold
	Elite

	PotentialTierCount
)

var potentialTierNames = [PotentialTierCount]string{
	Bronze: "bronze",
	Silver: "silver",
	Gold:   "gold",
	Elite:  "elite",
}

func (t PotentialTier) String() string {
	if t < 0 || t >= PotentialTierCount {
		return "potential(" + strconv.Itoa(int(t)) + ")"
	}
	return potentialTierNames[t]
}

// Bump raises the tier by one, capped at Elite.
func (t PotentialTier) Bump() PotentialTier {
	if t >= Elite {
		return Elite
	}
	return t + 1
}

// Archetype is a rare specialization profile biasing skill caps toward a
// play style. ArchetypeNone is the common case.
type Archetype int

// Archetypes.
const (
	ArchetypeNone Archetype = iota
	EliteShooter
	DefensiveSpecialist
	Playmaker
	AthleticFinisher
	StretchBig
	LockdownDefender
	FloorGeneral
	Energizer

	ArchetypeCount
)

var archetypeNames = [ArchetypeCount]string{
	ArchetypeNone:       "none",
	EliteShooter:        "elite_shooter",
	DefensiveSpecialist: "defensive_specialist",
	Playmaker:           "playmaker",
	AthleticFinisher:    "athletic_finisher",
	StretchBig:          "stretch_big",
	LockdownDefender:    "lockdown_defender",
	FloorGeneral:        "floor_general",
	Energizer:           "energizer",
}

func (a Archetype) String() string {
	if a < 0 || a >= ArchetypeCount {
		return "archetype(" + strconv.Itoa(int(a)) + ")"
	}
	return archetypeNames[a]
}
