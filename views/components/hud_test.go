package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"herohud/internal/viewmodel"
)

func TestHUD_EscapesNames(t *testing.T) {
	data := viewmodel.HUD{
		SessionID: "s1",
		Health:    viewmodel.Bar{Label: "Health", Current: 40, Max: 100, Percentage: 40, Tone: "is-orange"},
		Status:    "Injured",
		Inventory: viewmodel.ListPanel{Title: "Inventory", Entries: []string{"<script>x</script>"}, Hidden: 2},
		Awards:    viewmodel.ListPanel{Title: "Awards", Empty: "No awards yet"},
	}

	var buf bytes.Buffer
	require.NoError(t, HUD(data).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, `id="hud"`)
	assert.Contains(t, html, "Health 40/100 (40.0%)")
	assert.Contains(t, html, "&lt;script&gt;x&lt;/script&gt;")
	assert.NotContains(t, html, "<script>x")
	assert.Contains(t, html, "and 2 more")
	assert.Contains(t, html, "No awards yet")
}
