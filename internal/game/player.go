package game

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	// ErrInsufficientResource is returned when a pool is below a command's cost.
	ErrInsufficientResource = errors.New("insufficient resource")
	// ErrInvalidInput is returned for blank names and out-of-range amounts.
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the player's derived condition.
type Status string

const (
	StatusAlive     Status = "Alive"
	StatusDead      Status = "Dead"
	StatusLeveledUp Status = "Leveled Up!"
	StatusExcellent Status = "Excellent"
	StatusGood      Status = "Good"
	StatusInjured   Status = "Injured"
	StatusCritical  Status = "Critical"
)

const (
	DefaultMaxHealth   = 100
	DefaultMaxMana     = 100
	DefaultHealth      = 100
	DefaultMana        = 50
	DefaultGold        = 100
	ExperiencePerLevel = 100

	HealAmount   = 20
	HealCost     = 10
	DamageAmount = 15
	ManaSpell    = 20

	DefaultScoreGain      = 50
	DefaultExperienceGain = 25
	DefaultGoldGain       = 30

	// MaxAmount is the largest score, experience or gold gain one command
	// may carry.
	MaxAmount = 1_000_000
)

// PlayerState owns every mutable value of one play session. It is not safe
// for concurrent use; Session serializes access.
type PlayerState struct {
	health           int
	maxHealth        int
	mana             int
	maxMana          int
	level            int
	experience       int
	experienceNeeded int
	score            int
	gold             int
	status           Status
	inventory        []string
	awards           []string
}

// NewPlayerState returns a player with the starting loadout.
func NewPlayerState() *PlayerState {
	return &PlayerState{
		health:           DefaultHealth,
		maxHealth:        DefaultMaxHealth,
		mana:             DefaultMana,
		maxMana:          DefaultMaxMana,
		level:            1,
		experience:       0,
		experienceNeeded: ExperiencePerLevel,
		score:            0,
		gold:             DefaultGold,
		status:           StatusAlive,
		inventory:        []string{"Health Potion", "Sword"},
		awards:           []string{"First Steps"},
	}
}

// Heal restores health at the cost of mana.
func (p *PlayerState) Heal() error {
	if p.mana < HealCost {
		return fmt.Errorf("%w: heal needs %d mana, have %d", ErrInsufficientResource, HealCost, p.mana)
	}
	p.health = min(p.maxHealth, p.health+HealAmount)
	p.mana -= HealCost
	return nil
}

// TakeDamage removes health, never below zero.
func (p *PlayerState) TakeDamage() {
	p.health = max(0, p.health-DamageAmount)
}

// AddItem appends name to the inventory. Duplicates are kept.
func (p *PlayerState) AddItem(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: item name is empty", ErrInvalidInput)
	}
	p.inventory = append(p.inventory, name)
	return nil
}

// AddAward grants name unless the player already holds it.
func (p *PlayerState) AddAward(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: award name is empty", ErrInvalidInput)
	}
	p.grant(name)
	return nil
}

func (p *PlayerState) AddScore(amount int) error {
	return addAmount(&p.score, amount, "score")
}

// AddExperience only accumulates; leveling happens in the rules pass.
func (p *PlayerState) AddExperience(amount int) error {
	return addAmount(&p.experience, amount, "experience")
}

// UseMana spends mana on a spell.
func (p *PlayerState) UseMana() error {
	if p.mana < ManaSpell {
		return fmt.Errorf("%w: spell needs %d mana, have %d", ErrInsufficientResource, ManaSpell, p.mana)
	}
	p.mana -= ManaSpell
	return nil
}

func (p *PlayerState) AddGold(amount int) error {
	return addAmount(&p.gold, amount, "gold")
}

// addAmount adds a gain to total. Negative gains, gains above MaxAmount and
// sums past math.MaxInt are rejected and leave total unchanged.
func addAmount(total *int, amount int, what string) error {
	switch {
	case amount < 0:
		return fmt.Errorf("%w: %s amount %d is negative", ErrInvalidInput, what, amount)
	case amount > MaxAmount:
		return fmt.Errorf("%w: %s amount %d exceeds %d", ErrInvalidInput, what, amount, MaxAmount)
	case *total > math.MaxInt-amount:
		return fmt.Errorf("%w: %s total would overflow", ErrInvalidInput, what)
	}
	*total += amount
	return nil
}

// Reset discards everything and starts over from the defaults.
func (p *PlayerState) Reset() {
	*p = *NewPlayerState()
}

// HasAward reports whether name has been granted.
func (p *PlayerState) HasAward(name string) bool {
	return slices.Contains(p.awards, name)
}

// grant appends name if absent and reports whether it was new.
func (p *PlayerState) grant(name string) bool {
	if p.HasAward(name) {
		return false
	}
	p.awards = append(p.awards, name)
	return true
}

func (p *PlayerState) Status() Status { return p.status }
func (p *PlayerState) Level() int     { return p.level }

func (p *PlayerState) healthPercentage() float64 {
	return percent(p.health, p.maxHealth)
}

func percent(current, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(current) / float64(total) * 100
}
