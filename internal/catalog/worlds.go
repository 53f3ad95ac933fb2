package catalog

func seedWorlds() []World {
	return []World{
		{ID: "world-floating-islands", Title: "Floating Islands", Tags: []string{"lobby", "fantasy"},
			VisualStyleNotes: "Soft clouds, pastel rocks, coins floating.",
			UseCases:         []string{"Lobby", "Spawn", "Parkour"},
			BuildChecklist:   []string{"Chunky islands", "Jump pads", "Coins"},
			Image3DURL:       "/images/world_islands.png"},
		{ID: "world-cute-shop", Title: "Cute Pet Shop", Tags: []string{"shop", "cute"},
			VisualStyleNotes: "Warm lights, rounded shelves, plush props.",
			UseCases:         []string{"Shop", "UI bg"},
			BuildChecklist:   []string{"Counter", "Shelves", "Cash register"},
			Image3DURL:       "/images/world_shop.png"},
		{ID: "world-sci-hub", Title: "Sci‑Fi Hub", Tags: []string{"sci-fi", "hub"},
			VisualStyleNotes: "Neon trims, hex panels, fog.",
			UseCases:         []string{"Hub", "Teleporter"},
			BuildChecklist:   []string{"Portal rings", "Holograms", "Pipes"},
			Image3DURL:       "/images/world_sci.png"},
		{ID: "world-cloud-track", Title: "Cloud Track", Tags: []string{"race", "sport"},
			VisualStyleNotes: "High contrast track, boosters, banners.",
			UseCases:         []string{"Race", "Time trial"},
			BuildChecklist:   []string{"Track loops", "Boosters", "Banners"},
			Image3DURL:       "/images/world_track.png"},
		{ID: "world-lava-cave", Title: "Lava Cave", Tags: []string{"obby", "lava"},
			VisualStyleNotes: "Orange glow, smoke, crystals.",
			UseCases:         []string{"Obby", "Mine"},
			BuildChecklist:   []string{"Lava rivers", "Crystals", "Falling rocks"},
			Image3DURL:       "/images/world_lava.png"},
		{ID: "world-winter-town", Title: "Winter Town", Tags: []string{"cozy", "winter"},
			VisualStyleNotes: "Snow sparkle, wood cabins, lights.",
			UseCases:         []string{"Roleplay", "Events"},
			BuildChecklist:   []string{"Cabins", "Trees", "Market"},
			Image3DURL:       "/images/world_winter.png"},
		{ID: "world-space-port", Title: "Space Port", Tags: []string{"sci-fi"},
			VisualStyleNotes: "Steel floors, blinking lights, panels.",
			UseCases:         []string{"Hub", "Story"},
			BuildChecklist:   []string{"Dock", "Control room", "Hallway"},
			Image3DURL:       "/images/world_space.png"},
		{ID: "world-beach-resort", Title: "Beach Resort", Tags: []string{"summer", "roleplay"},
			VisualStyleNotes: "Turquoise water, palm trees, towels.",
			UseCases:         []string{"Roleplay", "Racing"},
			BuildChecklist:   []string{"Bungalows", "Pier", "Karts"},
			Image3DURL:       "/images/world_beach.png"},
		{ID: "world-forest-camp", Title: "Forest Camp", Tags: []string{"nature", "cozy"},
			VisualStyleNotes: "Green fog, campfire, tents.",
			UseCases:         []string{"Roleplay", "Story"},
			BuildChecklist:   []string{"Campfire", "Tents", "Lake"},
			Image3DURL:       "/images/world_forest.png"},
		{ID: "world-city-neon", Title: "Neon City", Tags: []string{"city", "neon"},
			VisualStyleNotes: "Wet asphalt, neon signs, reflections.",
			UseCases:         []string{"PvP", "Racing"},
			BuildChecklist:   []string{"Alleys", "Billboards", "Crosswalks"},
			Image3DURL:       "/images/world_city.png"},
		{ID: "world-sky-castle", Title: "Sky Castle", Tags: []string{"fantasy"},
			VisualStyleNotes: "Crystal towers, floating shards, banners.",
			UseCases:         []string{"Story", "Boss"},
			BuildChecklist:   []string{"Bridge", "Throne", "Crystal garden"},
			Image3DURL:       "/images/world_castle.png"},
		{ID: "world-desert-ruins", Title: "Desert Ruins", Tags: []string{"desert", "explore"},
			VisualStyleNotes: "Dust, sandstone, statues.",
			UseCases:         []string{"Story", "Obby"},
			BuildChecklist:   []string{"Pillars", "Traps", "Relics"},
			Image3DURL:       "/images/world_desert.png"},
	}
}
