// Package types contains the wire shapes shared across the application.
package types

import "github.com/skillstub/skillstub/internal/domain/model"

// Skill is the JSON representation of a stored skill.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Badge is the JSON representation of a derived badge.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorBody is the JSON body returned for failed simulated requests.
type ErrorBody struct {
	Message string `json:"message"`
}

// SkillFromModel converts a domain skill to its wire shape.
func SkillFromModel(s model.Skill) Skill {
	return Skill{ID: s.ID, Name: s.Name, Level: s.Level}
}

// SkillsFromModel converts a skill collection, preserving order.
func SkillsFromModel(skills []model.Skill) []Skill {
	out := make([]Skill, len(skills))
	for i, s := range skills {
		out[i] = SkillFromModel(s)
	}
	return out
}

// BadgesFromModel converts a badge collection, preserving order.
func BadgesFromModel(badges []model.Badge) []Badge {
	out := make([]Badge, len(badges))
	for i, b := range badges {
		out[i] = Badge{ID: b.ID, Name: b.Name, Description: b.Description}
	}
	return out
}
