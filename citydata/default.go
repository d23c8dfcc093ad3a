package citydata

func checkpoint(n int) *int {
	return &n
}

// DefaultPalette is the six-entry material palette of the rooftop city.
func DefaultPalette() []Material {
	return []Material{
		{Key: "mat_a", Color: Color{0.32, 0.33, 0.36, 1}}, // dark concrete
		{Key: "mat_b", Color: Color{0.62, 0.6, 0.57, 1}},  // light concrete
		{Key: "mat_c", Color: Color{0.5, 0.33, 0.22, 1}},  // brown brick
		{Key: "mat_d", Color: Color{0.38, 0.45, 0.55, 1}}, // blue steel
		{Key: "mat_e", Color: Color{0.2, 0.22, 0.28, 1}},  // dark tower
		{Key: "mat_f", Color: Color{0.9, 0.55, 0.15, 1}},  // hookable orange
	}
}

// Default returns the embedded rooftop city layout. Each call builds a fresh
// copy.
func Default() *Layout {
	return &Layout{
		Palette: DefaultPalette(),

		Buildings: []Building{
			// Bridge from the hand-built level
			{Name: "Transition01", Position: Vec3{26, 3, -60}, Size: Dimensions{6, 6, 8}, Material: "mat_c"},

			// Low rises, up to checkpoint 2
			{Name: "Bldg01", Position: Vec3{35, 5, -58}, Size: Dimensions{8, 10, 10}, Material: "mat_c"},
			{Name: "Bldg02", Position: Vec3{46, 5.5, -56}, Size: Dimensions{6, 11, 8}, Material: "mat_b"},
			{Name: "Bldg03", Position: Vec3{56, 5, -60}, Size: Dimensions{10, 10, 10}, Material: "mat_a"},
			{Name: "Bldg04", Position: Vec3{68, 6, -64}, Size: Dimensions{8, 12, 8}, Material: "mat_c"},
			{Name: "Bldg05", Position: Vec3{75, 7, -72}, Size: Dimensions{10, 14, 10}, Material: "mat_b", Checkpoint: checkpoint(2)},

			// Rising heights, up to checkpoint 3
			{Name: "Bldg06", Position: Vec3{82, 9, -80}, Size: Dimensions{6, 18, 6}, Material: "mat_d"},
			{Name: "Bldg07", Position: Vec3{75, 8, -88}, Size: Dimensions{8, 16, 8}, Material: "mat_a"},
			{Name: "Bldg08", Position: Vec3{65, 10, -95}, Size: Dimensions{10, 20, 10}, Material: "mat_b"},
			{Name: "Bldg09", Position: Vec3{55, 10, -105}, Size: Dimensions{8, 20, 8}, Material: "mat_c"},
			{Name: "Bldg10", Position: Vec3{45, 11, -112}, Size: Dimensions{10, 22, 10}, Material: "mat_a", Checkpoint: checkpoint(3)},

			// Downtown core, up to checkpoint 4
			{Name: "Bldg11", Position: Vec3{38, 13, -120}, Size: Dimensions{6, 26, 6}, Material: "mat_d"},
			{Name: "Bldg12", Position: Vec3{28, 12, -128}, Size: Dimensions{10, 24, 12}, Material: "mat_b"},
			{Name: "Bldg13", Position: Vec3{18, 15, -136}, Size: Dimensions{8, 30, 8}, Material: "mat_e"},
			{Name: "Bldg14", Position: Vec3{8, 13, -142}, Size: Dimensions{6, 26, 6}, Material: "mat_c"},
			{Name: "Bldg15", Position: Vec3{-2, 15, -150}, Size: Dimensions{10, 30, 10}, Material: "mat_a", Checkpoint: checkpoint(4)},

			// Skyline, up to checkpoint 5
			{Name: "Bldg16", Position: Vec3{-10, 17.5, -158}, Size: Dimensions{6, 35, 6}, Material: "mat_d"},
			{Name: "Bldg17", Position: Vec3{-4, 17.5, -168}, Size: Dimensions{8, 35, 8}, Material: "mat_e"},
			{Name: "Bldg18", Position: Vec3{6, 20, -175}, Size: Dimensions{6, 40, 6}, Material: "mat_a"},
			{Name: "Bldg19", Position: Vec3{15, 20, -182}, Size: Dimensions{10, 40, 10}, Material: "mat_b", Checkpoint: checkpoint(5)},

			// Tower gauntlet, up to checkpoint 6
			{Name: "Bldg20", Position: Vec3{22, 22.5, -190}, Size: Dimensions{4, 45, 4}, Material: "mat_e"},
			{Name: "Bldg21", Position: Vec3{30, 22.5, -196}, Size: Dimensions{4, 45, 4}, Material: "mat_d"},
			{Name: "Bldg22", Position: Vec3{38, 25, -192}, Size: Dimensions{4, 50, 4}, Material: "mat_e"},
			{Name: "Bldg23", Position: Vec3{46, 25, -200}, Size: Dimensions{6, 50, 6}, Material: "mat_a", Checkpoint: checkpoint(6)},

			// Spire
			{Name: "SpireBase", Position: Vec3{50, 27.5, -210}, Size: Dimensions{12, 55, 12}, Material: "mat_d"},
			{Name: "SpireMid", Position: Vec3{50, 32.5, -220}, Size: Dimensions{8, 65, 8}, Material: "mat_e"},
			{Name: "SpireTop", Position: Vec3{50, 40, -228}, Size: Dimensions{4, 80, 4}, Material: "mat_a", Checkpoint: checkpoint(7)},
		},

		// Background buildings; still solid world geometry.
		Decorations: []Building{
			{Name: "Deco01", Position: Vec3{45, 12.5, -50}, Size: Dimensions{6, 25, 6}, Material: "mat_a"},
			{Name: "Deco02", Position: Vec3{62, 10, -48}, Size: Dimensions{8, 20, 8}, Material: "mat_b"},
			{Name: "Deco03", Position: Vec3{90, 15, -75}, Size: Dimensions{6, 30, 6}, Material: "mat_d"},
			{Name: "Deco04", Position: Vec3{85, 12.5, -95}, Size: Dimensions{10, 25, 10}, Material: "mat_c"},
			{Name: "Deco05", Position: Vec3{22, 20, -125}, Size: Dimensions{4, 40, 4}, Material: "mat_e"},
			{Name: "Deco06", Position: Vec3{-15, 17.5, -140}, Size: Dimensions{8, 35, 8}, Material: "mat_a"},
			{Name: "Deco07", Position: Vec3{-22, 12.5, -162}, Size: Dimensions{6, 25, 6}, Material: "mat_c"},
			{Name: "Deco08", Position: Vec3{28, 22.5, -178}, Size: Dimensions{4, 45, 4}, Material: "mat_d"},
			{Name: "Deco09", Position: Vec3{62, 25, -208}, Size: Dimensions{6, 50, 6}, Material: "mat_e"},
			{Name: "Deco10", Position: Vec3{38, 20, -218}, Size: Dimensions{8, 40, 8}, Material: "mat_a"},
		},

		// Placed between buildings that need a grapple; y sits above the next rooftop.
		HookTargets: []HookTarget{
			// Low rises
			{Name: "Hook01", Position: Vec3{30, 14, -59}},
			{Name: "Hook02", Position: Vec3{62, 16, -62}},
			{Name: "Hook03", Position: Vec3{65, 16, -63}},

			// Low rises to rising heights
			{Name: "Hook04", Position: Vec3{78, 22, -76}},
			{Name: "Hook05", Position: Vec3{80, 22, -78}},

			// Rising heights
			{Name: "Hook06", Position: Vec3{78, 20, -84}},
			{Name: "Hook07", Position: Vec3{70, 24, -92}},
			{Name: "Hook08", Position: Vec3{60, 24, -100}},

			// Rising heights to downtown
			{Name: "Hook09", Position: Vec3{42, 30, -116}},
			{Name: "Hook10", Position: Vec3{40, 30, -118}},

			// Downtown
			{Name: "Hook11", Position: Vec3{23, 34, -132}},
			{Name: "Hook12", Position: Vec3{13, 30, -139}},
			{Name: "Hook13", Position: Vec3{3, 34, -146}},

			// Downtown to skyline
			{Name: "Hook14", Position: Vec3{-6, 39, -154}},
			{Name: "Hook15", Position: Vec3{-7, 39, -163}},

			// Skyline
			{Name: "Hook16", Position: Vec3{1, 44, -172}},
			{Name: "Hook17", Position: Vec3{10, 44, -179}},

			// Skyline to towers
			{Name: "Hook18", Position: Vec3{18, 49, -186}},
			{Name: "Hook19", Position: Vec3{26, 49, -193}},
			{Name: "Hook20", Position: Vec3{34, 54, -194}},
			{Name: "Hook21", Position: Vec3{42, 54, -196}},

			// Spire approach
			{Name: "Hook22", Position: Vec3{48, 59, -205}},
			{Name: "Hook23", Position: Vec3{50, 69, -213}},
			{Name: "Hook24", Position: Vec3{50, 69, -215}},
			{Name: "Hook25", Position: Vec3{50, 84, -224}},
			{Name: "Hook26", Position: Vec3{50, 84, -226}},
		},

		Platforms: []MovingPlatform{
			{Name: "CityMovPlat01", Start: Vec3{60, 20, -100}, End: Vec3{56, 20, -104}},
			{Name: "CityMovPlat02", Start: Vec3{-2, 35, -170}, End: Vec3{3, 37, -173}},
			{Name: "CityMovPlat03", Start: Vec3{50, 65, -224}, End: Vec3{50, 74, -227}},
		},
	}
}
