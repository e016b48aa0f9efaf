package catalog

// Item is a single vocabulary entry. Identity is the ID; an item belongs
// to exactly one section.
type Item struct {
	ID          string `json:"id"`
	Dutch       string `json:"word_nl"`
	English     string `json:"word_en"`
	ImagePrompt string `json:"image_prompt"`
}

// Section is a themed group of vocabulary items forming one curriculum unit.
// Section order in the source document defines the unlock chain.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Document is the root of the vocabulary whitelist source.
type Document struct {
	Sections []Section `json:"sections"`
}

// Meta is fixed display metadata for a section.
type Meta struct {
	Icon string
}

// sectionMeta maps section ids to display metadata. Unknown sections fall
// back to DefaultMeta.
var sectionMeta = map[string]Meta{
	"vegetables":     {Icon: "leaf"},
	"animals":        {Icon: "heart"},
	"colors":         {Icon: "droplet"},
	"food_drinks":    {Icon: "coffee"},
	"transportation": {Icon: "truck"},
	"places":         {Icon: "map-pin"},
	"family":         {Icon: "users"},
	"jobs":           {Icon: "briefcase"},
	"fruits":         {Icon: "circle"},
	"numbers":        {Icon: "hash"},
	"daily_actions":  {Icon: "activity"},
}

// DefaultMeta is used for sections without a metadata entry.
var DefaultMeta = Meta{Icon: "book"}

// MetaFor returns the display metadata for a section id.
func MetaFor(sectionID string) Meta {
	if m, ok := sectionMeta[sectionID]; ok {
		return m
	}
	return DefaultMeta
}
