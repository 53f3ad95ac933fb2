package catalog

func seedPaths() []Path {
	return []Path{
		{
			ID:          "path-create-games",
			Title:       "Create Games",
			Slug:        "create-games",
			Description: "Earn Robux by building and publishing fair, fun experiences.",
			Steps: steps(
				Step{Title: "Learn Roblox Studio basics", Explanation: "Follow official tutorials and build small scenes."},
				Step{Title: "Publish a simple experience", Explanation: "Ship a tiny obby or cafe to learn the flow."},
				Step{Title: "Add gamepasses/dev products", Explanation: "Offer fair boosts and cosmetic items only."},
				Step{Title: "Add analytics & iterate", Explanation: "Watch retention and improve weekly."},
				Step{Title: "Promote safely", Explanation: "Use social posts and collaborate, no spam."},
			),
			Checklist: checklist("path-create-games",
				ChecklistItem{Label: "Install Roblox Studio"},
				ChecklistItem{Label: "Ship your first tiny game"},
				ChecklistItem{Label: "Add 1 cosmetic and 1 boost"},
				ChecklistItem{Label: "Test with 3 friends"},
				ChecklistItem{Label: "Read TOS monetization rules", IsOptional: true},
			),
			Tips:         []string{"Test with friends", "Focus on fun first", "Respect TOS", "Iterate weekly"},
			HeroImageURL: "/images/path_create_games.png",
		},
		{
			ID:          "path-ugc-items",
			Title:       "Create UGC Items",
			Slug:        "ugc-items",
			Description: "Design hats and accessories that follow UGC rules.",
			Steps: steps(
				Step{Title: "Learn a 3D tool (Blender)", Explanation: "Model simple shapes and export correctly."},
				Step{Title: "Understand submission rules", Explanation: "Check sizes, textures, and categories."},
				Step{Title: "Create 3 test items", Explanation: "Iterate on style and theme."},
				Step{Title: "Thumbnails & promotion", Explanation: "Clear renders with good lighting."},
				Step{Title: "Collaborate with creators", Explanation: "Bundles and cross-promotions."},
			),
			Checklist: checklist("path-ugc-items",
				ChecklistItem{Label: "Pick a modeling workflow"},
				ChecklistItem{Label: "Create 1 hat prototype"},
				ChecklistItem{Label: "Render & preview in Studio"},
				ChecklistItem{Label: "Read UGC guidelines", IsOptional: true},
			),
			Tips:         []string{"Trendy yet readable", "Clean thumbnails", "Optimize polycounts"},
			HeroImageURL: "/images/path_ugc.png",
		},
		{
			ID:          "path-gamepasses",
			Title:       "Gamepasses & Dev Products",
			Slug:        "gamepasses",
			Description: "Fair ways to monetize experiences without pay-to-win.",
			Steps: steps(
				Step{Title: "Design meaningful cosmetics", Explanation: "Trails, emotes, pets"},
				Step{Title: "Offer convenience boosts", Explanation: "Respect balance; avoid p2w"},
				Step{Title: "Price testing", Explanation: "Start low and adjust"},
				Step{Title: "A/B test variants", Explanation: "See what players value"},
				Step{Title: "Support & refunds", Explanation: "Keep trust high"},
			),
			Checklist: checklist("path-gamepasses",
				ChecklistItem{Label: "List 5 cosmetic ideas"},
				ChecklistItem{Label: "Design 3 useful boosts"},
				ChecklistItem{Label: "Set initial prices"},
				ChecklistItem{Label: "Test with friends"},
			),
			Tips:         []string{"Always fair", "Clear value", "No gambling"},
			HeroImageURL: "/images/path_gamepasses.png",
		},
		{
			ID:          "path-commissions",
			Title:       "Commissions & Building for Others",
			Slug:        "commissions",
			Description: "Earn by helping teams with building, UI, or scripting.",
			Steps: steps(
				Step{Title: "Create a mini portfolio", Explanation: "3 screenshots + role description"},
				Step{Title: "Join safe communities", Explanation: "Discords, forums with rules"},
				Step{Title: "Deliver small gigs", Explanation: "Fast feedback loops"},
				Step{Title: "Request testimonials", Explanation: "Build credibility"},
				Step{Title: "Scale pricing", Explanation: "Packages for work"},
			),
			Checklist: checklist("path-commissions",
				ChecklistItem{Label: "Make a portfolio page"},
				ChecklistItem{Label: "Finish 1 paid mini gig"},
				ChecklistItem{Label: "Ask for testimonial"},
			),
			Tips:         []string{"Avoid scams", "Contracts up front", "Be reliable"},
			HeroImageURL: "/images/path_commissions.png",
		},
		{
			ID:          "path-premium-payouts",
			Title:       "Roblox Premium/Engagement Payouts",
			Slug:        "premium-payouts",
			Description: "Design for healthy engagement to qualify for payouts.",
			Steps: steps(
				Step{Title: "Review Premium rules", Explanation: "Check current policies in docs"},
				Step{Title: "Improve day-1 fun", Explanation: "Great first 5 minutes"},
				Step{Title: "Improve day-7 retention", Explanation: "Reasons to return"},
				Step{Title: "Ethical loops", Explanation: "No dark patterns"},
				Step{Title: "Ship content updates", Explanation: "Predictable cadence"},
			),
			Checklist: checklist("path-premium-payouts",
				ChecklistItem{Label: "Read official rules"},
				ChecklistItem{Label: "Add daily/weekly quests"},
				ChecklistItem{Label: "Run retention test"},
			),
			Tips:         []string{"Fun first", "Healthy loops", "Respect players"},
			HeroImageURL: "/images/path_premium.png",
		},
	}
}
