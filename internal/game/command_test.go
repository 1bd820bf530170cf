package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"heal", Command{Kind: CmdHeal}},
		{"  HEAL  ", Command{Kind: CmdHeal}},
		{"damage", Command{Kind: CmdTakeDamage}},
		{"take_damage", Command{Kind: CmdTakeDamage}},
		{"item  Iron Shield ", Command{Kind: CmdAddItem, Name: "Iron Shield"}},
		{"award Night Owl", Command{Kind: CmdAddAward, Name: "Night Owl"}},
		{"score", Command{Kind: CmdAddScore}},
		{"score 120", Command{Kind: CmdAddScore, Amount: intPtr(120)}},
		{"xp 40", Command{Kind: CmdAddExperience, Amount: intPtr(40)}},
		{"gold", Command{Kind: CmdAddGold}},
		{"spell", Command{Kind: CmdUseMana}},
		{"reset", Command{Kind: CmdReset}},
		{"stats", Command{Kind: CmdShowStats}},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseCommand_Errors(t *testing.T) {
	_, err := ParseCommand("dance")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseCommand("")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseCommand("gold lots")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCommand_ExecuteDefaults(t *testing.T) {
	p := NewPlayerState()
	for _, kind := range []CommandKind{CmdAddScore, CmdAddExperience, CmdAddGold} {
		require.NoError(t, Command{Kind: kind}.Execute(p))
	}
	assert.Equal(t, 50, p.score)
	assert.Equal(t, 25, p.experience)
	assert.Equal(t, 130, p.gold)

	require.NoError(t, Command{Kind: CmdAddScore, Amount: intPtr(5)}.Execute(p))
	assert.Equal(t, 55, p.score)
}

func TestCommand_ExecuteEveryKind(t *testing.T) {
	p := NewPlayerState()
	for _, kind := range CommandKinds {
		err := Command{Kind: kind, Name: "Torch"}.Execute(p)
		assert.NoError(t, err, string(kind))
	}
	assert.Equal(t, NewPlayerState(), p, "the reset command ran after every mutation")
}

func TestCommand_ExecuteUnknown(t *testing.T) {
	err := Command{Kind: "fly"}.Execute(NewPlayerState())
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommand_ShowStatsDoesNotMutate(t *testing.T) {
	p := NewPlayerState()
	require.NoError(t, Command{Kind: CmdShowStats}.Execute(p))
	assert.Equal(t, NewPlayerState(), p)
	assert.False(t, Command{Kind: CmdShowStats}.Mutates())
	assert.True(t, Command{Kind: CmdHeal}.Mutates())
}
