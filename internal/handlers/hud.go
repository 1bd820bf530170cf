package handlers

import (
	"herohud/internal/game"
	"herohud/internal/viewmodel"
)

func buildHUD(id string, snap game.Snapshot, events []game.Event, errMsg string) viewmodel.HUD {
	notices := make([]string, 0, len(events))
	for _, ev := range events {
		notices = append(notices, ev.Message())
	}
	return viewmodel.HUD{
		SessionID: id,
		Health: viewmodel.Bar{
			Label:      "Health",
			Current:    snap.Health.Current,
			Max:        snap.Health.Max,
			Percentage: snap.Health.Percentage,
			Tone:       healthTone(snap.Health.Percentage),
		},
		Mana: viewmodel.Bar{
			Label:      "Mana",
			Current:    snap.Mana.Current,
			Max:        snap.Mana.Max,
			Percentage: snap.Mana.Percentage,
			Tone:       "is-link",
		},
		Status:             string(snap.Status),
		StatusTone:         statusTone(snap.Status),
		Level:              snap.Level,
		Experience:         snap.Experience,
		ExperienceNeeded:   snap.ExperienceNeeded,
		ExperienceProgress: snap.ExperienceProgress,
		Gold:               snap.Gold,
		Score:              snap.Score,
		Inventory:          listPanel("Inventory", snap.Inventory, "No items"),
		Awards:             listPanel("Awards", snap.Awards, "No awards yet"),
		Notices:            notices,
		Error:              errMsg,
	}
}

// healthTone picks the bar color: green, yellow, orange, then red.
func healthTone(pct float64) string {
	switch {
	case pct > 80:
		return "is-success"
	case pct > 50:
		return "is-warning"
	case pct > 25:
		return "is-orange"
	default:
		return "is-danger"
	}
}

func statusTone(s game.Status) string {
	switch s {
	case game.StatusDead:
		return "is-dark"
	case game.StatusLeveledUp:
		return "is-primary"
	case game.StatusExcellent:
		return "is-success"
	case game.StatusGood:
		return "is-info"
	case game.StatusInjured:
		return "is-warning"
	case game.StatusCritical:
		return "is-danger"
	default:
		return "is-light"
	}
}

func listPanel(title string, entries []string, empty string) viewmodel.ListPanel {
	panel := viewmodel.ListPanel{Title: title, Entries: entries, Empty: empty}
	if len(entries) > viewmodel.MaxListed {
		panel.Entries = entries[:viewmodel.MaxListed]
		panel.Hidden = len(entries) - viewmodel.MaxListed
	}
	return panel
}

var commandLabels = map[game.CommandKind]string{
	game.CmdHeal:          "Heal (+20 health, -10 mana)",
	game.CmdTakeDamage:    "Take damage (-15 health)",
	game.CmdAddItem:       "Add item to inventory",
	game.CmdAddAward:      "Add award",
	game.CmdAddScore:      "Add score (+50)",
	game.CmdAddExperience: "Add experience (+25)",
	game.CmdUseMana:       "Use mana (-20 mana)",
	game.CmdAddGold:       "Add gold (+30)",
	game.CmdReset:         "Reset",
}

func commandOptions() []viewmodel.CommandOption {
	opts := make([]viewmodel.CommandOption, 0, len(game.CommandKinds))
	for _, kind := range game.CommandKinds {
		label, ok := commandLabels[kind]
		if !ok {
			continue
		}
		opt := viewmodel.CommandOption{Value: string(kind), Label: label}
		switch kind {
		case game.CmdAddItem, game.CmdAddAward:
			opt.TakesArg = "name"
		case game.CmdAddScore, game.CmdAddExperience, game.CmdAddGold:
			opt.TakesArg = "amount"
		}
		opts = append(opts, opt)
	}
	return opts
}
