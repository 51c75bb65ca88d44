package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",
		Accent: "#874BFD",

		// Board columns
		Todo:       "#5F87D7",
		InProgress: "#FFD700",
		Done:       "#5FD75F",

		Selected: "#D75FD7",
		Delete:   "#FF0000",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		ErrorFg: "#FF0000",
	}
}

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:     "monochrome",
		Accent:     "#FFFFFF",
		Todo:       "#D0D0D0",
		InProgress: "#D0D0D0",
		Done:       "#D0D0D0",
		Selected:   "#FFFFFF",
		Delete:     "#FFFFFF",
		Title:      "#FFFFFF",
		Subtle:     "#585858",
		Normal:     "#D0D0D0",
		InfoFg:     "#FFFFFF",
		ErrorFg:    "#FFFFFF",
	}
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset:     "wave",
		Accent:     palette.oniViolet,
		Todo:       palette.crystalBlue,
		InProgress: palette.carpYellow,
		Done:       palette.springGreen,
		Selected:   palette.waveAqua2,
		Delete:     palette.peachRed,
		Title:      palette.crystalBlue,
		Subtle:     palette.fujiGray,
		Normal:     palette.fujiWhite,
		InfoFg:     palette.waveAqua2,
		ErrorFg:    palette.samuraiRed,
	}
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset:     "dragon",
		Accent:     palette.dragonViolet,
		Todo:       palette.dragonBlue2,
		InProgress: palette.dragonYellow,
		Done:       palette.dragonGreen2,
		Selected:   palette.dragonAqua,
		Delete:     palette.dragonRed,
		Title:      palette.dragonBlue2,
		Subtle:     palette.dragonAsh,
		Normal:     palette.dragonWhite,
		InfoFg:     palette.dragonAqua,
		ErrorFg:    palette.samuraiRed,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset:     "lotus",
		Accent:     palette.lotusViolet4,
		Todo:       palette.lotusBlue4,
		InProgress: palette.lotusOrange,
		Done:       palette.lotusGreen,
		Selected:   palette.lotusAqua,
		Delete:     palette.lotusRed,
		Title:      palette.lotusBlue4,
		Subtle:     palette.lotusGray3,
		Normal:     palette.lotusInk1,
		InfoFg:     palette.lotusAqua,
		ErrorFg:    palette.lotusRed,
	}
}
