package config

import "strings"

// Skill returns the preset with the given name (case-insensitive).
// Unknown or empty names fall back to the default skill, then to the first preset.
func (c Config) Skill(name string) Skill {
	if i := c.SkillIndex(name); i >= 0 {
		return c.Skills[i]
	}
	if i := c.SkillIndex(c.Gameplay.DefaultSkill); i >= 0 {
		return c.Skills[i]
	}
	if len(c.Skills) > 0 {
		return c.Skills[0]
	}
	return Skill{Name: "normal", Title: "Normal", PaddleWidth: 100, BallSpeed: 5}
}

// SkillIndex returns the index of the named preset, or -1.
func (c Config) SkillIndex(name string) int {
	if name == "" {
		return -1
	}
	for i, s := range c.Skills {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

// HasSkill reports whether a preset with the given name exists.
func (c Config) HasSkill(name string) bool {
	return c.SkillIndex(name) >= 0
}

// DisplayName returns the title, or the name when no title is set.
func (s Skill) DisplayName() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Name
}
