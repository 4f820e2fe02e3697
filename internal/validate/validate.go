// Package validate implements the booking request validation pipeline.
//
// Validation runs in two phases. Required-field presence is checked first in
// a fixed field order and fails fast with a single error, so a client that
// forgot a field gets exactly one message. Once every required field is
// present, all field validators run unconditionally and their failures are
// aggregated, so a client that filled fields incorrectly gets the complete
// list in one round trip.
package validate

import (
	"html"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/seeeye/area710-booking/internal/domain"
)

const (
	nameMinLen    = 2
	nameMaxLen    = 50
	emailMaxLen   = 100
	phoneMinLen   = 5
	phoneMaxLen   = 30
	companyMaxLen = 100
	messageMaxLen = 2000
	durationMax   = 24
	guestsMax     = 1000
	maxYearsAhead = 2

	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// requiredFields is the fixed presence-check order. The first absent field
// is the one reported.
var requiredFields = []string{
	"firstName", "lastName", "email", "phone",
	"eventType", "eventDate", "eventTime", "duration", "guests",
}

// Result is the outcome of one pipeline run. Exactly one of Booking,
// Missing or Errors is populated.
type Result struct {
	Booking *domain.Booking
	Missing *FieldError  // a required field was absent; nothing else ran
	Errors  []FieldError // field contract violations, in validator order
}

// Pipeline validates raw booking input. The clock is injectable so date
// range checks are deterministic under test.
type Pipeline struct {
	now func() time.Time
}

func New() *Pipeline {
	return &Pipeline{now: time.Now}
}

func NewWithClock(now func() time.Time) *Pipeline {
	return &Pipeline{now: now}
}

// Run validates in, returning a fully sanitized booking only when every
// field passes its contract.
func (p *Pipeline) Run(in *Input) Result {
	if missing := checkRequired(in); missing != nil {
		return Result{Missing: missing}
	}

	var (
		errs []FieldError
		b    domain.Booking
	)
	collect := func(err *FieldError) {
		if err != nil {
			errs = append(errs, *err)
		}
	}

	var err *FieldError
	b.FirstName, err = validateName("firstName", in.FirstName)
	collect(err)
	b.LastName, err = validateName("lastName", in.LastName)
	collect(err)
	b.Email, err = validateEmail(in.Email)
	collect(err)
	b.Phone, err = validatePhone(in.Phone)
	collect(err)
	b.Company, err = validateCompany(in.Company)
	collect(err)
	b.EventType, err = validateEventType(in.EventType)
	collect(err)
	b.EventDate, err = p.validateEventDate(in.EventDate)
	collect(err)
	b.EventTime, err = validateEventTime(in.EventTime)
	collect(err)
	b.Duration, err = validateIntRange("duration", in.Duration.String(), 1, durationMax)
	collect(err)
	b.Guests, err = validateIntRange("guests", in.Guests.String(), 1, guestsMax)
	collect(err)
	b.Rooms, err = validateRooms(in.Rooms)
	collect(err)
	b.Services = filterServices(in.Services)
	b.Message, err = validateMessage(in.Message)
	collect(err)
	b.Lang = normalizeLang(in.Lang)

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Booking: &b}
}

// checkRequired returns the first missing or blank required field, or nil.
func checkRequired(in *Input) *FieldError {
	values := map[string]string{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
		"phone":     in.Phone,
		"eventType": in.EventType,
		"eventDate": in.EventDate,
		"eventTime": in.EventTime,
		"duration":  in.Duration.String(),
		"guests":    in.Guests.String(),
	}
	for _, field := range requiredFields {
		if strings.TrimSpace(values[field]) == "" {
			return fieldErr(field, CodeMissingField, "field is required")
		}
	}
	return nil
}

func validateName(field, raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	if n := utf8.RuneCountInString(v); n < nameMinLen || n > nameMaxLen {
		return "", fieldErr(field, CodeLength, "must be between 2 and 50 characters")
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '-' && r != '\'' {
			return "", fieldErr(field, CodeFormat, "contains invalid characters")
		}
	}
	return html.EscapeString(v), nil
}

func validateEmail(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", fieldErr("email", CodeFormat, "invalid email address")
	}
	if utf8.RuneCountInString(v) > emailMaxLen {
		return "", fieldErr("email", CodeLength, "must not exceed 100 characters")
	}
	return v, nil
}

func validatePhone(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	for _, r := range v {
		if !unicode.IsDigit(r) && !unicode.IsSpace(r) &&
			r != '+' && r != '-' && r != '(' && r != ')' && r != '/' {
			return "", fieldErr("phone", CodeFormat, "contains invalid characters")
		}
	}
	if n := utf8.RuneCountInString(v); n < phoneMinLen || n > phoneMaxLen {
		return "", fieldErr("phone", CodeLength, "must be between 5 and 30 characters")
	}
	return html.EscapeString(v), nil
}

func validateCompany(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}
	if utf8.RuneCountInString(v) > companyMaxLen {
		return "", fieldErr("company", CodeLength, "must not exceed 100 characters")
	}
	return html.EscapeString(v), nil
}

func validateEventType(raw string) (string, *FieldError) {
	if !domain.IsEventType(raw) {
		return "", fieldErr("eventType", CodeWhitelist, "unknown event type")
	}
	return raw, nil
}

func (p *Pipeline) validateEventDate(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse(dateLayout, v)
	// Round-trip guard: time.Parse normalizes overflow dates like
	// 2024-02-30, which must be rejected, not silently corrected.
	if err != nil || t.Format(dateLayout) != v {
		return "", fieldErr("eventDate", CodeFormat, "must be a valid date in YYYY-MM-DD format")
	}
	now := p.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(today) {
		return "", fieldErr("eventDate", CodeRange, "must not be in the past")
	}
	if t.After(today.AddDate(maxYearsAhead, 0, 0)) {
		return "", fieldErr("eventDate", CodeRange, "too far in the future")
	}
	return v, nil
}

func validateEventTime(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	t, err := time.Parse(timeLayout, v)
	if err != nil || t.Format(timeLayout) != v {
		return "", fieldErr("eventTime", CodeFormat, "must be a valid time in HH:MM format")
	}
	return v, nil
}

func validateIntRange(field, raw string, min, max int) (int, *FieldError) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fieldErr(field, CodeType, "must be a whole number")
	}
	if n < min || n > max {
		return 0, fieldErr(field, CodeRange, "must be between "+strconv.Itoa(min)+" and "+strconv.Itoa(max))
	}
	return n, nil
}

// validateRooms keeps whitelist members in input order, duplicates included.
// Unknown entries are dropped silently; only an empty survivor set is an
// error, since at least one room must be requested.
func validateRooms(raw []string) ([]string, *FieldError) {
	kept := make([]string, 0, len(raw))
	for _, r := range raw {
		if domain.IsRoom(r) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return nil, fieldErr("rooms", CodeRequired, "at least one room must be selected")
	}
	return kept, nil
}

// filterServices applies the same silent-drop policy as rooms, but an empty
// result is fine; services are optional.
func filterServices(raw []string) []string {
	var kept []string
	for _, s := range raw {
		if domain.IsService(s) {
			kept = append(kept, s)
		}
	}
	return kept
}

func validateMessage(raw string) (string, *FieldError) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return "", nil
	}
	if utf8.RuneCountInString(v) > messageMaxLen {
		return "", fieldErr("message", CodeLength, "must not exceed 2000 characters")
	}
	return html.EscapeString(v), nil
}

// normalizeLang never errors; anything outside the supported set falls back
// to German, the venue's primary language.
func normalizeLang(raw string) string {
	if domain.IsLanguage(raw) {
		return raw
	}
	return domain.LangDE
}
