package colors

// palette holds the Kanagawa colors shared by the kanagawa presets
var palette = struct {
	fujiWhite, fujiGray                 string
	oniViolet, crystalBlue, springGreen string
	peachRed, waveAqua2, carpYellow     string
	samuraiRed                          string

	dragonWhite, dragonAsh, dragonViolet string
	dragonGreen2, dragonRed, dragonAqua  string
	dragonBlue2, dragonYellow            string

	lotusInk1, lotusGray3, lotusViolet4 string
	lotusGreen, lotusRed, lotusBlue4    string
	lotusAqua, lotusYellow, lotusOrange string
}{
	fujiWhite:   "#DCD7BA",
	fujiGray:    "#727169",
	oniViolet:   "#957FB8",
	crystalBlue: "#7E9CD8",
	springGreen: "#98BB6C",
	peachRed:    "#FF5D62",
	waveAqua2:   "#7AA89F",
	carpYellow:  "#E6C384",
	samuraiRed:  "#E82424",

	dragonWhite:  "#C5C9C5",
	dragonAsh:    "#737C73",
	dragonViolet: "#8992A7",
	dragonGreen2: "#87A987",
	dragonRed:    "#C4746E",
	dragonAqua:   "#8EA4A2",
	dragonBlue2:  "#8BA4B0",
	dragonYellow: "#C4B28A",

	lotusInk1:    "#545464",
	lotusGray3:   "#8A8980",
	lotusViolet4: "#624C83",
	lotusGreen:   "#6F894E",
	lotusRed:     "#C84053",
	lotusBlue4:   "#4D699B",
	lotusAqua:    "#597B75",
	lotusYellow:  "#77713F",
	lotusOrange:  "#CC6D00",
}
