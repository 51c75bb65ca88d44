package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/thenoetrevino/sprintsim/internal/config"
)

// KeyMap holds the key bindings built from the configured key mappings
type KeyMap struct {
	Advance       key.Binding
	ToggleRank    key.Binding
	AddFeature    key.Binding
	SubmitBatch   key.Binding
	EditFeature   key.Binding
	DeleteFeature key.Binding
	ToggleSprint  key.Binding
	IncreaseScore key.Binding
	DecreaseScore key.Binding
	MoveCardLeft  key.Binding
	MoveCardRight key.Binding
	MoveCardUp    key.Binding
	MoveCardDown  key.Binding
	PrevColumn    key.Binding
	NextColumn    key.Binding
	PrevFeature   key.Binding
	NextFeature   key.Binding
	Reset         key.Binding
	ShowHelp      key.Binding
	Quit          key.Binding
}

// NewKeyMap builds bindings from km. Arrow keys are always bound alongside
// the configured navigation keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	bind := func(help string, keys ...string) key.Binding {
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(label(keys[0]), help))
	}

	return KeyMap{
		Advance:       bind("next stage", km.Advance),
		ToggleRank:    bind("ranked view", km.ToggleRank),
		AddFeature:    bind("add features", km.AddFeature),
		SubmitBatch:   bind("create features", km.SubmitBatch),
		EditFeature:   bind("rename", km.EditFeature),
		DeleteFeature: bind("delete", km.DeleteFeature),
		ToggleSprint:  bind("add/remove sprint", km.ToggleSprint),
		IncreaseScore: bind("score up", km.IncreaseScore),
		DecreaseScore: bind("score down", km.DecreaseScore),
		MoveCardLeft:  bind("card left", km.MoveCardLeft),
		MoveCardRight: bind("card right", km.MoveCardRight),
		MoveCardUp:    bind("card up", km.MoveCardUp),
		MoveCardDown:  bind("card down", km.MoveCardDown),
		PrevColumn:    bind("left", km.PrevColumn, "left"),
		NextColumn:    bind("right", km.NextColumn, "right"),
		PrevFeature:   bind("up", km.PrevFeature, "up"),
		NextFeature:   bind("down", km.NextFeature, "down"),
		Reset:         bind("reset", km.Reset),
		ShowHelp:      bind("help", km.ShowHelp),
		Quit:          bind("quit", km.Quit),
	}
}

func label(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.EditFeature, k.DeleteFeature, k.ShowHelp, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevFeature, k.NextFeature, k.PrevColumn, k.NextColumn},
		{k.AddFeature, k.SubmitBatch, k.EditFeature, k.DeleteFeature},
		{k.IncreaseScore, k.DecreaseScore, k.ToggleRank, k.ToggleSprint},
		{k.MoveCardLeft, k.MoveCardRight, k.MoveCardUp, k.MoveCardDown},
		{k.Advance, k.Reset, k.ShowHelp, k.Quit},
	}
}
