package quest

// Lore is a short cultural note shown when the player visits a place,
// raises a building or plays an activity.
type Lore struct {
	Title    string
	Text     string
	SamiWord string
}

// LoreWelcome is shown at the start of a new game.
const LoreWelcome = "welcome"

var lore = map[string]Lore{
	"tent": {
		Title:    "Lávvu - The Traditional Sámi Tent",
		Text:     "The lávvu is a traditional Sámi dwelling, similar to a tipi. It's portable and designed for the nomadic lifestyle, allowing Sámi people to move with their reindeer herds.",
		SamiWord: "Lávvu (Tent)",
	},
	"reindeer": {
		Title:    "Boazu - Reindeer",
		Text:     "Reindeer herding (boazodoallu) is central to Sámi culture. Reindeer provide food, clothing, and materials. Sámi people have been herding reindeer for thousands of years.",
		SamiWord: "Boazu (Reindeer)",
	},
	"reindeer-farm": {
		Title:    "Boazodoallu - Reindeer Herding",
		Text:     "Reindeer herding is not just a job for the Sámi - it's a way of life that connects them to their land, culture, and traditions. Each reindeer is important to the herd.",
		SamiWord: "Boazodoallu (Reindeer Herding)",
	},
	"storage": {
		Title:    "Gárdi - Storage",
		Text:     "Traditional Sámi storage buildings (gárdi) were used to store food, tools, and supplies. They were built to withstand the harsh Arctic climate.",
		SamiWord: "Gárdi (Storage)",
	},
	LocationClassroom: {
		Title:    "Skuvla - School",
		Text:     "Education is important in Sámi culture. Schools help preserve the Sámi language and teach about traditional ways of life.",
		SamiWord: "Skuvla (School)",
	},
	string(MiniGamePainting): {
		Title:    "Dáidda - Art",
		Text:     "Sámi art includes duodji (handicrafts) and traditional patterns. Art is an important way to express Sámi culture and identity.",
		SamiWord: "Dáidda (Art)",
	},
	LocationLake: {
		Title:    "Jiekŋaguollevuohta - Ice Fishing",
		Text:     "Ice fishing is an important traditional activity for the Sámi people. They fish through holes in the ice during winter, providing food for their families.",
		SamiWord: "Jiekŋaguollevuohta (Ice Fishing)",
	},
	LocationKitchen: {
		Title:    "Bidos - Traditional Sámi Stew",
		Text:     "Bidos is a traditional Sámi stew made with reindeer meat and vegetables. It's a hearty meal that provides warmth and nutrition during the cold Arctic winters.",
		SamiWord: "Bidos (Traditional Stew)",
	},
	LoreWelcome: {
		Title:    "Welcome to Sámi Adventure!",
		Text:     "Learn about Sámi culture and language while building your own Sámi settlement. Complete tasks to earn rewards and discover more about this rich culture!",
		SamiWord: "Bures boahtin! (Welcome!)",
	},
}

// LoreFor looks up the note for a location, building type or activity.
func LoreFor(id string) (Lore, bool) {
	l, ok := lore[id]
	return l, ok
}

// Lore returns the note for an objective: its mini-game first, then its
// location, then its target.
func (t Template) Lore() (Lore, bool) {
	for _, key := range []string{string(t.MiniGame), t.Location, t.Target} {
		if key == "" {
			continue
		}
		if l, ok := lore[key]; ok {
			return l, true
		}
	}
	return Lore{}, false
}

var buildingUnlocks = map[string][]string{
	"reindeer-farm": {"reindeer"},
}

// BuildingUnlocks lists the decorations a building grants when used.
func BuildingUnlocks(buildingType string) []string {
	return append([]string(nil), buildingUnlocks[buildingType]...)
}
