// Package viewmodel defines the view-layer types for the HUD. They carry no
// game logic so templates can use them without importing the engine.
package viewmodel

// MaxListed is how many inventory or award entries a panel shows.
const MaxListed = 8

// Bar is a resource bar with its fill tone.
type Bar struct {
	Label      string
	Current    int
	Max        int
	Percentage float64
	Tone       string
}

// ListPanel is a titled list that shows at most MaxListed entries.
type ListPanel struct {
	Title   string
	Entries []string
	Hidden  int
	Empty   string
}

// CommandOption is one entry of the command form.
type CommandOption struct {
	Value    string
	Label    string
	TakesArg string
}

// HUD holds data for the heads-up display fragment.
type HUD struct {
	SessionID          string
	Health             Bar
	Mana               Bar
	Status             string
	StatusTone         string
	Level              int
	Experience         int
	ExperienceNeeded   int
	ExperienceProgress float64
	Gold               int
	Score              int
	Inventory          ListPanel
	Awards             ListPanel
	Notices            []string
	Error              string
}

// SessionPage holds data for the main session page.
type SessionPage struct {
	Title     string
	SessionID string
	InviteURL string
	HUD       HUD
	Commands  []CommandOption
}

// HomePage holds data for the landing page.
type HomePage struct {
	Title    string
	Sessions int
}
