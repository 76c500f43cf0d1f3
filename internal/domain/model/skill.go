// Package model contains domain models passed between layers.
package model

// Skill represents a single tracked competency.
// Fields mirror the JSON schema persisted in the storage slot.
type Skill struct {
	ID    string // unique identifier, assigned on creation
	Name  string // display name, e.g. "Go", "SQL"
	Level int    // proficiency level; missing or invalid input coerces to 0
}

// Badge is an achievement derived from aggregate skill statistics.
// Badges are never persisted; they are recomputed on every read.
type Badge struct {
	ID          string
	Name        string
	Description string
}

// SkillPatch carries a partial update for a skill. Nil fields are
// left untouched on the stored record.
type SkillPatch struct {
	Name  *string
	Level *int
}
