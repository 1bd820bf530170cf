package game

import (
	"fmt"
	"math"
	"strings"
)

// Pool is a bounded resource as shown to a renderer.
type Pool struct {
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
}

// Snapshot captures the state needed for rendering. It shares no memory with
// the PlayerState it was taken from.
type Snapshot struct {
	Health             Pool     `json:"health"`
	Mana               Pool     `json:"mana"`
	Status             Status   `json:"status"`
	Score              int      `json:"score"`
	Inventory          []string `json:"inventory"`
	Awards             []string `json:"awards"`
	Level              int      `json:"level"`
	Experience         int      `json:"experience"`
	ExperienceNeeded   int      `json:"experienceNeeded"`
	Gold               int      `json:"gold"`
	ExperienceProgress float64  `json:"experienceProgress"`
	TotalItems         int      `json:"totalItems"`
}

// Snapshot derives a fresh read-only view. Score is the total score, which
// includes a bonus of ten points per level.
func (p *PlayerState) Snapshot() Snapshot {
	return Snapshot{
		Health: Pool{
			Current:    p.health,
			Max:        p.maxHealth,
			Percentage: p.healthPercentage(),
		},
		Mana: Pool{
			Current:    p.mana,
			Max:        p.maxMana,
			Percentage: percent(p.mana, p.maxMana),
		},
		Status:             p.status,
		Score:              displayScore(p.score, p.level),
		Inventory:          append([]string{}, p.inventory...),
		Awards:             append([]string{}, p.awards...),
		Level:              p.level,
		Experience:         p.experience,
		ExperienceNeeded:   p.experienceNeeded,
		Gold:               p.gold,
		ExperienceProgress: percent(p.experience, p.experienceNeeded),
		TotalItems:         len(p.inventory),
	}
}

// Stats formats the snapshot as the plain-text stats dump.
func (s Snapshot) Stats() string {
	var b strings.Builder
	b.WriteString("CURRENT STATS\n")
	fmt.Fprintf(&b, "Health: %d/%d (%.1f%%)\n", s.Health.Current, s.Health.Max, s.Health.Percentage)
	fmt.Fprintf(&b, "Mana: %d/%d\n", s.Mana.Current, s.Mana.Max)
	fmt.Fprintf(&b, "Level: %d\n", s.Level)
	fmt.Fprintf(&b, "Experience: %d/%d\n", s.Experience, s.ExperienceNeeded)
	fmt.Fprintf(&b, "Score: %d\n", s.Score)
	fmt.Fprintf(&b, "Gold: %d\n", s.Gold)
	fmt.Fprintf(&b, "Status: %s\n", s.Status)
	fmt.Fprintf(&b, "Inventory items: %d\n", s.TotalItems)
	fmt.Fprintf(&b, "Awards: %d\n", len(s.Awards))
	if len(s.Inventory) > 0 {
		b.WriteString("\nInventory:\n")
		for _, item := range s.Inventory {
			fmt.Fprintf(&b, "  - %s\n", item)
		}
	}
	if len(s.Awards) > 0 {
		b.WriteString("\nAwards:\n")
		for _, award := range s.Awards {
			fmt.Fprintf(&b, "  * %s\n", award)
		}
	}
	return b.String()
}

// displayScore is the score shown to the player: the raw score plus ten per
// level, saturating at math.MaxInt.
func displayScore(score, level int) int {
	bonus := level * 10
	if score > math.MaxInt-bonus {
		return math.MaxInt
	}
	return score + bonus
}
