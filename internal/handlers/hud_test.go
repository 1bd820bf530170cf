package handlers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"herohud/internal/game"
	"herohud/internal/viewmodel"
)

func TestHealthTone(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "is-success"},
		{80.5, "is-success"},
		{80, "is-warning"},
		{51, "is-warning"},
		{50, "is-orange"},
		{26, "is-orange"},
		{25, "is-danger"},
		{0, "is-danger"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, healthTone(tt.pct), "%.1f%%", tt.pct)
	}
}

func TestListPanel_CapsEntries(t *testing.T) {
	entries := make([]string, 11)
	for i := range entries {
		entries[i] = fmt.Sprintf("item %d", i)
	}
	panel := listPanel("Inventory", entries, "No items")
	assert.Len(t, panel.Entries, viewmodel.MaxListed)
	assert.Equal(t, 3, panel.Hidden)

	panel = listPanel("Awards", nil, "No awards yet")
	assert.Empty(t, panel.Entries)
	assert.Zero(t, panel.Hidden)
	assert.Equal(t, "No awards yet", panel.Empty)
}

func TestBuildHUD(t *testing.T) {
	p := game.NewPlayerState()
	p.TakeDamage()
	p.TakeDamage()
	p.TakeDamage()
	events := []game.Event{{Kind: game.EventAwardWon, Award: "Rich"}}

	hud := buildHUD("abc", p.Snapshot(), events, "")
	assert.Equal(t, "abc", hud.SessionID)
	assert.Equal(t, 55, hud.Health.Current)
	assert.Equal(t, "is-warning", hud.Health.Tone)
	assert.Equal(t, []string{"New award: Rich!"}, hud.Notices)
	assert.Equal(t, []string{"Health Potion", "Sword"}, hud.Inventory.Entries)
}

func TestCommandOptions(t *testing.T) {
	opts := commandOptions()
	args := map[string]string{}
	for _, opt := range opts {
		args[opt.Value] = opt.TakesArg
	}
	assert.NotContains(t, args, string(game.CmdShowStats))
	assert.Equal(t, "name", args[string(game.CmdAddItem)])
	assert.Equal(t, "amount", args[string(game.CmdAddGold)])
	assert.Equal(t, "", args[string(game.CmdHeal)])
	assert.Len(t, opts, 9)
}
