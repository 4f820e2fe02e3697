package domain

// Closed sets of permitted values for the categorical booking fields. These
// mirror the options offered by the public booking form; anything else is
// either rejected (scalar fields) or dropped (room/service lists).

const (
	LangDE = "de"
	LangEN = "en"
)

var eventTypes = map[string]struct{}{
	"business":   {},
	"wedding":    {},
	"birthday":   {},
	"party":      {},
	"conference": {},
	"workshop":   {},
	"other":      {},
}

var rooms = map[string]struct{}{
	"hall":    {},
	"lab":     {},
	"barclub": {},
	"outdoor": {},
}

var services = map[string]struct{}{
	"catering":   {},
	"tech":       {},
	"decoration": {},
	"seating":    {},
	"bar":        {},
	"security":   {},
}

var languages = map[string]struct{}{
	LangDE: {},
	LangEN: {},
}

func IsEventType(v string) bool {
	_, ok := eventTypes[v]
	return ok
}

func IsRoom(v string) bool {
	_, ok := rooms[v]
	return ok
}

func IsService(v string) bool {
	_, ok := services[v]
	return ok
}

func IsLanguage(v string) bool {
	_, ok := languages[v]
	return ok
}

// eventTypeLabels carries the display names used in the notification emails.
var eventTypeLabels = map[string]map[string]string{
	"business":   {LangDE: "Business Event", LangEN: "Business Event"},
	"wedding":    {LangDE: "Hochzeit", LangEN: "Wedding"},
	"birthday":   {LangDE: "Geburtstag", LangEN: "Birthday"},
	"party":      {LangDE: "Party", LangEN: "Party"},
	"conference": {LangDE: "Konferenz/Tagung", LangEN: "Conference/Meeting"},
	"workshop":   {LangDE: "Workshop/Seminar", LangEN: "Workshop/Seminar"},
	"other":      {LangDE: "Sonstiges", LangEN: "Other"},
}

// EventTypeLabelFor translates an event type for display. Unknown types fall
// back to the raw value so the emails never render an empty label.
func EventTypeLabelFor(eventType, lang string) string {
	if byLang, ok := eventTypeLabels[eventType]; ok {
		if label, ok := byLang[lang]; ok {
			return label
		}
	}
	return eventType
}
