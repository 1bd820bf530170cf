package game

import "fmt"

// EventKind names something the rules pass did.
type EventKind string

const (
	EventDied     EventKind = "died"
	EventLevelUp  EventKind = "level_up"
	EventAwardWon EventKind = "award"
)

// Event is a notice produced by a rules pass.
type Event struct {
	Kind  EventKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Award string    `json:"award,omitempty"`
}

// Message renders the event as a one-line notice.
func (e Event) Message() string {
	switch e.Kind {
	case EventDied:
		return "You died! Game over!"
	case EventLevelUp:
		return fmt.Sprintf("Level up! New level: %d", e.Level)
	case EventAwardWon:
		return fmt.Sprintf("New award: %s!", e.Award)
	}
	return string(e.Kind)
}

// awardRule grants Name once Reached holds.
type awardRule struct {
	Name    string
	Reached func(p *PlayerState) bool
}

var awardRules = []awardRule{
	{"High Scorer", func(p *PlayerState) bool { return p.score >= 500 }},
	{"Score Master", func(p *PlayerState) bool { return p.score >= 1000 }},
	{"Collector", func(p *PlayerState) bool { return len(p.inventory) >= 5 }},
	{"Hoarder", func(p *PlayerState) bool { return len(p.inventory) >= 10 }},
	{"Experienced", func(p *PlayerState) bool { return p.level >= 5 }},
	{"Veteran", func(p *PlayerState) bool { return p.level >= 10 }},
	{"Rich", func(p *PlayerState) bool { return p.gold >= 500 }},
}

// ProgressionRules re-derives status, levels and awards after a command.
// The zero value levels up at most once per pass.
type ProgressionRules struct {
	// ChainLevelUps keeps leveling while experience covers the next level,
	// carrying the surplus instead of discarding it. A pass raises at most
	// MaxLevelUpsPerPass levels; the rest waits for the next pass.
	ChainLevelUps bool
}

// MaxLevelUpsPerPass bounds a chained level-up pass.
const MaxLevelUpsPerPass = 100

// Apply runs one pass over p in a fixed order: death, level-up, awards,
// status. It returns the events the pass produced.
func (r ProgressionRules) Apply(p *PlayerState) []Event {
	var events []Event

	dead := p.health <= 0
	if dead {
		if p.status != StatusDead {
			events = append(events, Event{Kind: EventDied})
		}
		p.status = StatusDead
	}

	if !dead {
		for n := 0; n < MaxLevelUpsPerPass && p.experience >= p.experienceNeeded; n++ {
			r.levelUp(p)
			events = append(events, Event{Kind: EventLevelUp, Level: p.level})
			if !r.ChainLevelUps {
				break
			}
		}
	}

	for _, rule := range awardRules {
		if rule.Reached(p) && p.grant(rule.Name) {
			events = append(events, Event{Kind: EventAwardWon, Award: rule.Name})
		}
	}

	if p.status != StatusDead && p.status != StatusLeveledUp {
		p.status = statusForHealth(p.healthPercentage())
	}
	return events
}

func (r ProgressionRules) levelUp(p *PlayerState) {
	if r.ChainLevelUps {
		p.experience -= p.experienceNeeded
	} else {
		p.experience = 0
	}
	p.level++
	p.experienceNeeded = p.level * ExperiencePerLevel
	p.status = StatusLeveledUp
	p.health = min(p.maxHealth, p.health+30)
	p.mana = min(p.maxMana, p.mana+20)
}

func statusForHealth(pct float64) Status {
	switch {
	case pct > 80:
		return StatusExcellent
	case pct > 50:
		return StatusGood
	case pct > 25:
		return StatusInjured
	default:
		return StatusCritical
	}
}
