package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// FormValue accepts both JSON strings and numbers. The public form posts
// every scalar as a string, but API clients tend to send numeric fields as
// numbers; both end up as the raw string here and the field validators
// decide what parses.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errors.New("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	case 'n': // null
		*v = ""
		return nil
	case '{', '[', 't', 'f':
		return errors.New("expected string or number")
	default:
		if _, err := strconv.ParseFloat(string(data), 64); err != nil {
			return err
		}
		*v = FormValue(data)
		return nil
	}
}

func (v FormValue) String() string { return string(v) }

// Input is the decoded request payload before any validation has run. It
// lives for the duration of one request.
type Input struct {
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	EventType string    `json:"eventType"`
	EventDate string    `json:"eventDate"`
	EventTime string    `json:"eventTime"`
	Duration  FormValue `json:"duration"`
	Guests    FormValue `json:"guests"`
	Rooms     []string  `json:"rooms"`
	Services  []string  `json:"services"`
	Message   string    `json:"message"`
	Lang      string    `json:"lang"`
	CSRFToken string    `json:"csrf_token"`
}
