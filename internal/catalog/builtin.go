package catalog

// Builtin returns the hand-written rooms served when no external content
// source is configured. Each call returns a fresh slice.
func Builtin() []Room {
	return []Room{
		{
			Slug:  "atrium",
			Title: "The Atrium",
			Exits: []string{"mirror", "stairs"},
			Variants: []Variant{
				{Tone: Neutral, Line: "You are here—unless you were."},
				{Tone: Sharp, Line: "You expected arrival. You arrived."},
				{Tone: Gentle, Line: "Welcome, or something near it."},
			},
			Content: "A space that opens and closes with your attention. The light shifts when you're not looking.",
		},
		{
			Slug:  "mirror",
			Title: "The Mirror Hall",
			Exits: []string{"atrium", "corridor"},
			Variants: []Variant{
				{Tone: Gentle, Line: "Reflections that remember yesterday."},
				{Tone: Neutral, Line: "You see yourself, or someone similar."},
				{Tone: Sharp, Line: "The mirror shows a different room."},
			},
			Content: "Endless mirrors reflect endless corridors. Some show what was, others what could be.",
		},
		{
			Slug:  "stairs",
			Title: "The Stairwell",
			Exits: []string{"atrium", "attic"},
			Variants: []Variant{
				{Tone: Neutral, Line: "Steps go up and down from here."},
				{Tone: Sharp, Line: "Each step changes the architecture."},
				{Tone: Gentle, Line: "The stairs remember your footprints."},
			},
			Content: "Spiraling stairs that lead to places that may or may not exist when you arrive.",
		},
		{
			Slug:  "corridor",
			Title: "The Corridor",
			Exits: []string{"mirror", "garden"},
			Variants: []Variant{
				{Tone: Sharp, Line: "The corridor rearranges itself behind you."},
				{Tone: Neutral, Line: "A hallway that goes somewhere. Eventually."},
				{Tone: Gentle, Line: "The walls breathe slowly with your passage."},
			},
			Content: "A hallway that changes length when you blink. Doors appear and disappear based on need rather than architecture.",
		},
		{
			Slug:  "attic",
			Title: "The Attic",
			Exits: []string{"stairs", "memory"},
			Variants: []Variant{
				{Tone: Gentle, Line: "Dust motes dance to forgotten music."},
				{Tone: Neutral, Line: "Everything you've ever owned is here."},
				{Tone: Sharp, Line: "The attic contains things you haven't created yet."},
			},
			Content: "A space filled with objects that have histories, some yours, some belonging to people you've never met.",
		},
		{
			Slug:  "garden",
			Title: "The Garden",
			Exits: []string{"corridor", "greenhouse"},
			Variants: []Variant{
				{Tone: Gentle, Line: "Plants grow in patterns you half-remember."},
				{Tone: Neutral, Line: "A garden that tends to its own cultivation."},
				{Tone: Sharp, Line: "The garden grows memories instead of flowers."},
			},
			Content: "Impossible plants grow here—some made of glass, others of sound, all tended by invisible gardeners.",
		},
		{
			Slug:  "memory",
			Title: "The Memory",
			Exits: []string{"attic", "threshold"},
			Variants: []Variant{
				{Tone: Sharp, Line: "You remember this room from a dream."},
				{Tone: Gentle, Line: "Some memories are rooms you can revisit."},
				{Tone: Neutral, Line: "This space exists only when remembered."},
			},
			Content: "A room made of memories that shift and rearrange. The furniture is made of moments, the windows show scenes from lives you could have lived.",
		},
		{
			Slug:  "greenhouse",
			Title: "The Greenhouse",
			Exits: []string{"garden", "atrium"},
			Variants: []Variant{
				{Tone: Neutral, Line: "Glass traps light and time in equal measure."},
				{Tone: Sharp, Line: "The plants here grow through time."},
				{Tone: Gentle, Line: "Each leaf is a different season."},
			},
			Content: "A greenhouse where seasons coexist. Winter frost patterns grow on summer leaves while spring blossoms fall onto autumn soil.",
		},
		{
			Slug:  "threshold",
			Title: "The Threshold",
			Exits: []string{"memory"},
			Variants: []Variant{
				{Tone: Gentle, Line: "Every exit is also an entrance."},
				{Tone: Sharp, Line: "You have been here before, many times."},
				{Tone: Neutral, Line: "The space between spaces."},
			},
			Content: "Not quite a room, not quite a passage. A place of becoming and unbecoming. The air here tastes of possibility.",
		},
	}
}
