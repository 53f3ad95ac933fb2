package catalog

func idea(id, title, typ, difficulty string, tags []string, concept string, mechanics, hooks, monetization []string, thumb, hero, level string) Idea {
	return Idea{
		ID:                id,
		Title:             title,
		Type:              typ,
		Difficulty:        difficulty,
		Tags:              tags,
		ShortDescription:  shortDescription(concept),
		Concept:           concept,
		CoreMechanics:     mechanics,
		FunHooks:          hooks,
		MonetizationIdeas: monetization,
		Thumbnail3DURL:    thumb,
		HeroImageURL:      hero,
		RecommendedLevel:  level,
	}
}

func seedIdeas() []Idea {
	return []Idea{
		idea("idea-obby-lava", "Lava Parkour with Moving Platforms", "Obby", "Beginner", []string{"Obby", "Parkour"},
			"Dash across floating islands above lava rivers. Time your jumps on moving platforms and collect coins to unlock shortcuts.",
			[]string{"Jump timing", "Moving platforms", "Checkpoints", "Collectibles", "Speed pads"},
			[]string{"Daily challenges", "Hidden rooms", "Co-op races", "Seasonal events"},
			[]string{"Gamepasses: double coins, speed boost", "Dev products: shield, checkpoint skip", "Cosmetics: trails, pets"},
			"/images/idea_lava_obby.png", "/images/hero_lava_obby.png", "Beginner"),
		idea("idea-tycoon-pets", "Pet Rescue Tycoon", "Tycoon", "Intermediate", []string{"Tycoon", "Pets", "Simulator"},
			"Build a pet rescue center, treat animals, and expand rooms to serve more visitors.",
			[]string{"Gather resources", "Upgrade rooms", "Mini-games for pet care", "NPC adoption system"},
			[]string{"Events", "Rare pet drops", "Friend boosts"},
			[]string{"Gamepasses: double income", "Dev products: boost packs", "Cosmetics: skins"},
			"/images/idea_pet_tycoon.png", "/images/hero_pet_tycoon.png", "Intermediate"),
		idea("idea-sim-mining", "Crystal Mining Simulator", "Simulator", "Beginner", []string{"Simulator", "Mining"},
			"Mine colorful crystals, refine them, and sell to upgrade your drill.",
			[]string{"Resource nodes", "Backpack capacity", "Refinery", "Upgrades"},
			[]string{"Meteor showers", "Boss rock", "Obby shortcut caves"},
			[]string{"Gamepasses: extra capacity", "Dev products: boost potions", "Cosmetics: pickaxe skins"},
			"/images/idea_mining.png", "/images/hero_mining.png", "Beginner"),
		idea("idea-role-cafe", "Cozy Cafe Roleplay", "Roleplay", "Beginner", []string{"Roleplay", "Social"},
			"Run a cute cafe with friends, serve pastries, and decorate the shop.",
			[]string{"Cooking mini-game", "Customer queue", "Decor placement", "Emotes"},
			[]string{"Seasonal menus", "Competitions", "Photo mode"},
			[]string{"Cosmetics", "Gamepasses: VIP lounge", "Premium payouts"},
			"/images/idea_cafe.png", "/images/hero_cafe.png", "Beginner"),
		idea("idea-horror-mansion", "Haunted Mansion Story", "Horror", "Intermediate", []string{"Horror", "Story"},
			"Explore a spooky mansion, solve puzzles, and escape before midnight.",
			[]string{"Inventory puzzles", "Chase sequences", "Light management"},
			[]string{"Hidden endings", "Secret rooms"},
			[]string{"Cosmetics only", "Premium payouts"},
			"/images/idea_horror_mansion.png", "/images/hero_horror_mansion.png", "Intermediate"),
		idea("idea-story-space", "Lost Astronaut Story", "Story", "Intermediate", []string{"Story", "Sci-fi"},
			"Find a way home after your ship crashes on a neon planet.",
			[]string{"Dialogue choices", "Crafting", "Exploration"},
			[]string{"Time trials", "Photo collectibles"},
			[]string{"Cosmetics: suits", "Dev products: temporary boosts"},
			"/images/idea_space.png", "/images/hero_space.png", "Intermediate"),
		idea("idea-pvp-arena", "Neon PvP Arena", "PvP", "Advanced", []string{"PvP", "Action"},
			"Fast rounds in a compact neon arena with jump pads and powerups.",
			[]string{"Round-based", "Powerups", "Team vs team"},
			[]string{"Ranked ladder", "Season pass", "Clans"},
			[]string{"Cosmetics", "Gamepasses: private servers", "Dev products: boosters"},
			"/images/idea_pvp.png", "/images/hero_pvp.png", "Advanced"),
		idea("idea-obby-ice", "Ice Cave Obby", "Obby", "Beginner", []string{"Obby", "Winter"},
			"Slippery tunnels with sliding surfaces and falling icicles.",
			[]string{"Slide physics", "Timed doors", "Checkpoints"},
			[]string{"Speedrun boards", "Hidden penguin pet"},
			[]string{"Cosmetics: trails", "Gamepasses: double coins"},
			"/images/idea_ice.png", "/images/hero_ice.png", "Beginner"),
		idea("idea-tycoon-mall", "Mini Mall Tycoon", "Tycoon", "Intermediate", []string{"Tycoon", "Builder"},
			"Build a tiny mall with themed shops and hire NPCs.",
			[]string{"Income tick", "Hire & upgrade NPCs", "Decor placement"},
			[]string{"Events", "Limited-time shops"},
			[]string{"Dev products: cash packs", "Gamepasses: double income", "Cosmetics: outfits"},
			"/images/idea_mall.png", "/images/hero_mall.png", "Intermediate"),
		idea("idea-sim-racing", "Cloud Kart Racer", "Simulator", "Beginner", []string{"Racing", "Simulator"},
			"Arcade racing on cloud tracks with boosters and banners.",
			[]string{"Time trials", "Kart upgrades", "Boost pads"},
			[]string{"Ghost races", "Seasonal tracks"},
			[]string{"Cosmetics: karts", "Season pass", "Dev products: boosters"},
			"/images/idea_race.png", "/images/hero_race.png", "Beginner"),
		idea("idea-role-hospital", "Mini Hospital Roleplay", "Roleplay", "Beginner", []string{"Roleplay", "Builder"},
			"Treat patients in a friendly hospital and unlock new rooms.",
			[]string{"Mini-games", "NPC schedules", "Decor"},
			[]string{"Events", "Photo quests"},
			[]string{"Cosmetics", "Premium payouts"},
			"/images/idea_hospital.png", "/images/hero_hospital.png", "Beginner"),
		idea("idea-horror-forest", "Whispering Forest", "Horror", "Intermediate", []string{"Horror"},
			"Survive nights in a foggy forest with a roaming creature.",
			[]string{"Stealth", "Sound cues", "Crafting traps"},
			[]string{"Leaderboards", "Hidden lore"},
			[]string{"Cosmetics only"},
			"/images/idea_forest.png", "/images/hero_forest.png", "Intermediate"),
		idea("idea-story-school", "Mystery at Pixel High", "Story", "Beginner", []string{"Story", "School"},
			"Solve a school mystery using clues and mini-puzzles.",
			[]string{"Dialogue", "Puzzle rooms", "Collectibles"},
			[]string{"Photo mode", "Multiple endings"},
			[]string{"Cosmetics"},
			"/images/idea_school.png", "/images/hero_school.png", "Beginner"),
		idea("idea-pvp-battle-royale", "Tiny Battle Royale", "PvP", "Advanced", []string{"PvP", "Shooter"},
			"Quick 12-player rounds on micro islands.",
			[]string{"Drops", "Storm circle", "Attachments"},
			[]string{"Ranked", "Clans"},
			[]string{"Cosmetics", "Battle pass"},
			"/images/idea_battleroyale.png", "/images/hero_battleroyale.png", "Advanced"),
		idea("idea-obby-toy", "Toy Factory Obby", "Obby", "Beginner", []string{"Obby", "Cute"},
			"Colorful conveyor belts and bouncy toys as obstacles.",
			[]string{"Conveyors", "Jump pads", "Timing"},
			[]string{"Daily quests", "Secret plushies"},
			[]string{"Cosmetics", "Dev products: boosters"},
			"/images/idea_toy.png", "/images/hero_toy.png", "Beginner"),
		idea("idea-tycoon-farm", "Pixel Farm Tycoon", "Tycoon", "Beginner", []string{"Tycoon", "Farm"},
			"Grow crops, upgrade tractors, sell at market.",
			[]string{"Plant/harvest", "Upgrades", "Delivery quests"},
			[]string{"Seasonal crops", "Friend boosts"},
			[]string{"Gamepasses: double yield", "Cosmetics: skins"},
			"/images/idea_farm.png", "/images/hero_farm.png", "Beginner"),
		idea("idea-sim-bakery", "Bakery Simulator", "Simulator", "Beginner", []string{"Simulator", "Cooking"},
			"Mix ingredients, bake pastries, and decorate your shop.",
			[]string{"Recipe mini-games", "Upgrades", "Delivery"},
			[]string{"Events", "Photo mode"},
			[]string{"Cosmetics", "Boost packs"},
			"/images/idea_bakery.png", "/images/hero_bakery.png", "Beginner"),
		idea("idea-role-city", "Mini City Roleplay", "Roleplay", "Intermediate", []string{"Roleplay", "City"},
			"Jobs, apartments, vehicles in a tiny city.",
			[]string{"Job mini-games", "Housing", "Vehicles"},
			[]string{"Events", "Photo mode"},
			[]string{"Cosmetics", "Premium payouts"},
			"/images/idea_city.png", "/images/hero_city.png", "Intermediate"),
		idea("idea-horror-lab", "Lab Escape", "Horror", "Advanced", []string{"Horror", "Sci-fi"},
			"Escape a glitchy lab with puzzles and stealth.",
			[]string{"Stealth", "Puzzles", "Chase"},
			[]string{"Speedrun", "Hidden endings"},
			[]string{"Cosmetics only"},
			"/images/idea_lab.png", "/images/hero_lab.png", "Advanced"),
		idea("idea-story-fantasy", "Crystal Kingdom", "Story", "Beginner", []string{"Story", "Fantasy"},
			"Restore a shattered kingdom by finding crystal shards.",
			[]string{"Exploration", "Boss fights", "Crafting"},
			[]string{"Photo mode", "Quests"},
			[]string{"Cosmetics"},
			"/images/idea_crystal.png", "/images/hero_crystal.png", "Beginner"),
	}
}
