package demo

import (
	"crypto/rand"
	"math/big"
)

// Level generation constants.
const (
	maxLevel       = 5
	expertShareDiv = 3 // roughly a third of seeded skills land at max level
)

// Seed skill names cycled through while seeding.
var skillNames = []string{
	"Go", "SQL", "Kubernetes", "Rust", "TypeScript",
	"Terraform", "Python", "gRPC", "Prometheus", "Linux",
	"Networking", "Postgres", "Redis", "Kafka", "Git",
}

// randomInt returns a uniform int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// seedSkill is one planned creation: a name plus the level to submit.
type seedSkill struct {
	Name  string
	Level int
}

// generateSkills plans the seeded collection. A slice of the skills is
// forced to max level so the expert-count badges stay reachable for
// small scenarios.
func generateSkills(count int) []seedSkill {
	skills := make([]seedSkill, count)
	for i := range skills {
		level := randomInt(maxLevel + 1)
		if i%expertShareDiv == 0 {
			level = maxLevel
		}
		skills[i] = seedSkill{
			Name:  skillNames[i%len(skillNames)],
			Level: level,
		}
	}
	return skills
}
