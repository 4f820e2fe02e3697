package domain

// Booking is a fully validated, HTML-escaped booking request. It is only
// ever constructed by the validation pipeline once every field has passed
// its own check; partially valid records do not exist.
type Booking struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Company   string   `json:"company,omitempty"`
	EventType string   `json:"eventType"`
	EventDate string   `json:"eventDate"` // YYYY-MM-DD
	EventTime string   `json:"eventTime"` // HH:MM, 24h
	Duration  int      `json:"duration"`  // hours
	Guests    int      `json:"guests"`
	Rooms     []string `json:"rooms"`
	Services  []string `json:"services,omitempty"`
	Message   string   `json:"message,omitempty"`
	Lang      string   `json:"lang"` // "de" or "en"
}

// FullName is used in email subjects and salutations.
func (b *Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

// EventTypeLabel returns the display label for the booking's event type in
// the booking's language.
func (b *Booking) EventTypeLabel() string {
	return EventTypeLabelFor(b.EventType, b.Lang)
}
