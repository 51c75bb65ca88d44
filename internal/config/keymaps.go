package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Stages
	Advance    string `yaml:"advance"`
	ToggleRank string `yaml:"toggle_rank"`

	// Features
	AddFeature    string `yaml:"add_feature"`
	SubmitBatch   string `yaml:"submit_batch"`
	EditFeature   string `yaml:"edit_feature"`
	DeleteFeature string `yaml:"delete_feature"`
	ToggleSprint  string `yaml:"toggle_sprint"`
	IncreaseScore string `yaml:"increase_score"`
	DecreaseScore string `yaml:"decrease_score"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Navigation
	PrevColumn  string `yaml:"prev_column"`
	NextColumn  string `yaml:"next_column"`
	PrevFeature string `yaml:"prev_feature"`
	NextFeature string `yaml:"next_feature"`

	// Other
	Reset    string `yaml:"reset"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Stages
		Advance:    "n",
		ToggleRank: "r",

		// Features
		AddFeature:    "a",
		SubmitBatch:   "ctrl+s",
		EditFeature:   "e",
		DeleteFeature: "d",
		ToggleSprint:  " ",
		IncreaseScore: "+",
		DecreaseScore: "-",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",

		// Navigation
		PrevColumn:  "h",
		NextColumn:  "l",
		PrevFeature: "k",
		NextFeature: "j",

		// Other
		Reset:    "R",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&k.Advance, defaults.Advance)
	fill(&k.ToggleRank, defaults.ToggleRank)
	fill(&k.AddFeature, defaults.AddFeature)
	fill(&k.SubmitBatch, defaults.SubmitBatch)
	fill(&k.EditFeature, defaults.EditFeature)
	fill(&k.DeleteFeature, defaults.DeleteFeature)
	fill(&k.ToggleSprint, defaults.ToggleSprint)
	fill(&k.IncreaseScore, defaults.IncreaseScore)
	fill(&k.DecreaseScore, defaults.DecreaseScore)
	fill(&k.MoveCardLeft, defaults.MoveCardLeft)
	fill(&k.MoveCardRight, defaults.MoveCardRight)
	fill(&k.MoveCardUp, defaults.MoveCardUp)
	fill(&k.MoveCardDown, defaults.MoveCardDown)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevFeature, defaults.PrevFeature)
	fill(&k.NextFeature, defaults.NextFeature)
	fill(&k.Reset, defaults.Reset)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
