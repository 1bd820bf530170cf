package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCommand is returned for command names outside the command set.
var ErrUnknownCommand = errors.New("unknown command")

// CommandKind identifies one player action.
type CommandKind string

const (
	CmdHeal          CommandKind = "heal"
	CmdTakeDamage    CommandKind = "take_damage"
	CmdAddItem       CommandKind = "add_item"
	CmdAddAward      CommandKind = "add_award"
	CmdAddScore      CommandKind = "add_score"
	CmdAddExperience CommandKind = "add_experience"
	CmdUseMana       CommandKind = "use_mana"
	CmdAddGold       CommandKind = "add_gold"
	CmdReset         CommandKind = "reset"
	CmdShowStats     CommandKind = "show_stats"
)

// CommandKinds lists every command in menu order.
var CommandKinds = []CommandKind{
	CmdHeal, CmdTakeDamage, CmdAddItem, CmdAddAward, CmdAddScore,
	CmdAddExperience, CmdUseMana, CmdAddGold, CmdReset, CmdShowStats,
}

// aliases maps short console words onto command kinds.
var aliases = map[string]CommandKind{
	"damage":     CmdTakeDamage,
	"hit":        CmdTakeDamage,
	"item":       CmdAddItem,
	"award":      CmdAddAward,
	"score":      CmdAddScore,
	"xp":         CmdAddExperience,
	"exp":        CmdAddExperience,
	"experience": CmdAddExperience,
	"mana":       CmdUseMana,
	"spell":      CmdUseMana,
	"gold":       CmdAddGold,
	"stats":      CmdShowStats,
}

// Command is a single request against a PlayerState. Amount is nil when the
// command's default should be used.
type Command struct {
	Kind   CommandKind `json:"command"`
	Name   string      `json:"name,omitempty"`
	Amount *int        `json:"amount,omitempty"`
}

// Mutates reports whether the command changes state.
func (c Command) Mutates() bool {
	return c.Kind != CmdShowStats
}

func (c Command) amountOr(fallback int) int {
	if c.Amount == nil {
		return fallback
	}
	return *c.Amount
}

// Execute applies c to p. It does not run the rules pass.
func (c Command) Execute(p *PlayerState) error {
	switch c.Kind {
	case CmdHeal:
		return p.Heal()
	case CmdTakeDamage:
		p.TakeDamage()
	case CmdAddItem:
		return p.AddItem(c.Name)
	case CmdAddAward:
		return p.AddAward(c.Name)
	case CmdAddScore:
		return p.AddScore(c.amountOr(DefaultScoreGain))
	case CmdAddExperience:
		return p.AddExperience(c.amountOr(DefaultExperienceGain))
	case CmdUseMana:
		return p.UseMana()
	case CmdAddGold:
		return p.AddGold(c.amountOr(DefaultGoldGain))
	case CmdReset:
		p.Reset()
	case CmdShowStats:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, c.Kind)
	}
	return nil
}

// ParseCommandKind resolves a command name or console alias.
func ParseCommandKind(name string) (CommandKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, kind := range CommandKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	if kind, ok := aliases[name]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// ParseCommand reads a console line such as "item Iron Shield" or "score 120".
// Item and award commands take the rest of the line as the name; score,
// experience and gold take an optional integer amount.
func ParseCommand(line string) (Command, error) {
	head, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	kind, err := ParseCommandKind(head)
	if err != nil {
		return Command{}, err
	}
	rest = strings.TrimSpace(rest)
	cmd := Command{Kind: kind}
	switch kind {
	case CmdAddItem, CmdAddAward:
		cmd.Name = rest
	case CmdAddScore, CmdAddExperience, CmdAddGold:
		if rest == "" {
			break
		}
		amount, err := strconv.Atoi(rest)
		if err != nil {
			return Command{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, rest)
		}
		cmd.Amount = &amount
	}
	return cmd, nil
}
