package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_Defaults(t *testing.T) {
	snap := NewPlayerState().Snapshot()

	assert.Equal(t, Pool{Current: 100, Max: 100, Percentage: 100}, snap.Health)
	assert.Equal(t, Pool{Current: 50, Max: 100, Percentage: 50}, snap.Mana)
	assert.Equal(t, StatusAlive, snap.Status)
	assert.Equal(t, 10, snap.Score, "score includes ten points per level")
	assert.Equal(t, []string{"Health Potion", "Sword"}, snap.Inventory)
	assert.Equal(t, []string{"First Steps"}, snap.Awards)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 0, snap.Experience)
	assert.Equal(t, 100, snap.ExperienceNeeded)
	assert.Equal(t, 100, snap.Gold)
	assert.Equal(t, 0.0, snap.ExperienceProgress)
	assert.Equal(t, 2, snap.TotalItems)
}

func TestSnapshot_DerivedValues(t *testing.T) {
	p := NewPlayerState()
	p.TakeDamage()
	require.NoError(t, p.UseMana())
	require.NoError(t, p.AddExperience(50))
	require.NoError(t, p.AddScore(120))
	p.level = 3
	p.experienceNeeded = 200

	snap := p.Snapshot()
	assert.Equal(t, 85.0, snap.Health.Percentage)
	assert.Equal(t, 30.0, snap.Mana.Percentage)
	assert.Equal(t, 25.0, snap.ExperienceProgress)
	assert.Equal(t, 150, snap.Score)
}

func TestSnapshot_DoesNotAliasState(t *testing.T) {
	p := NewPlayerState()
	snap := p.Snapshot()
	snap.Inventory[0] = "Cursed Ring"
	snap.Awards = append(snap.Awards, "Cheater")

	assert.Equal(t, []string{"Health Potion", "Sword"}, p.inventory)
	assert.Equal(t, []string{"First Steps"}, p.awards)

	require.NoError(t, p.AddItem("Bow"))
	assert.Len(t, snap.Inventory, 2, "earlier snapshots do not see later mutations")
}

func TestSnapshot_Stats(t *testing.T) {
	p := NewPlayerState()
	p.TakeDamage()
	out := p.Snapshot().Stats()

	assert.Contains(t, out, "Health: 85/100 (85.0%)\n")
	assert.Contains(t, out, "Mana: 50/100\n")
	assert.Contains(t, out, "Experience: 0/100\n")
	assert.Contains(t, out, "Score: 10\n")
	assert.Contains(t, out, "Inventory items: 2\n")
	assert.Contains(t, out, "  - Sword\n")
	assert.Contains(t, out, "  * First Steps\n")
}
