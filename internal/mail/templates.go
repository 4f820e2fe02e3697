package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/seeeye/area710-booking/internal/domain"
)

// RenderedEmail is a fully rendered message body ready for a Sender.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// Booking fields arrive pre-escaped from the validation pipeline, so the
// templates receive them as template.HTML to avoid double escaping.
type templateData struct {
	FirstName      template.HTML
	LastName       template.HTML
	Email          template.HTML
	Phone          template.HTML
	Company        template.HTML
	EventTypeLabel string
	EventDate      string
	EventTime      string
	Duration       int
	Guests         int
	RoomsText      template.HTML
	ServicesText   template.HTML
	HasServices    bool
	MessageHTML    template.HTML
	T              map[string]string
}

func newTemplateData(b *domain.Booking) templateData {
	noneLabel := "Keine Auswahl"
	if b.Lang == domain.LangEN {
		noneLabel = "No selection"
	}

	roomsText := noneLabel
	if len(b.Rooms) > 0 {
		roomsText = strings.Join(b.Rooms, ", ")
	}
	servicesText := noneLabel
	if len(b.Services) > 0 {
		servicesText = strings.Join(b.Services, ", ")
	}

	// Line breaks in the message become <br> for display; the content
	// itself is already escaped.
	messageHTML := strings.ReplaceAll(b.Message, "\n", "<br>\n")

	return templateData{
		FirstName:      template.HTML(b.FirstName),
		LastName:       template.HTML(b.LastName),
		Email:          template.HTML(b.Email),
		Phone:          template.HTML(b.Phone),
		Company:        template.HTML(b.Company),
		EventTypeLabel: b.EventTypeLabel(),
		EventDate:      b.EventDate,
		EventTime:      b.EventTime,
		Duration:       b.Duration,
		Guests:         b.Guests,
		RoomsText:      template.HTML(roomsText),
		ServicesText:   template.HTML(servicesText),
		HasServices:    len(b.Services) > 0,
		MessageHTML:    template.HTML(messageHTML),
	}
}

// customerCopy holds the localized strings of the confirmation mail.
var customerCopy = map[string]map[string]string{
	domain.LangDE: {
		"subject":        "Ihre Buchungsanfrage bei area710",
		"greeting":       "Vielen Dank für Ihre Buchungsanfrage!",
		"intro":          "Wir haben Ihre Anfrage erhalten und werden uns innerhalb von 24 Stunden bei Ihnen melden.",
		"summary_title":  "Zusammenfassung Ihrer Anfrage:",
		"event_title":    "Event-Details:",
		"rooms_title":    "Gewählte Räume:",
		"services_title": "Zusätzliche Services:",
		"questions":      "Bei Fragen erreichen Sie uns unter:",
		"at":             "am",
		"oclock":         "um",
		"hours":          "Stunden",
		"guests":         "Gäste",
	},
	domain.LangEN: {
		"subject":        "Your booking request at area710",
		"greeting":       "Thank you for your booking request!",
		"intro":          "We have received your request and will contact you within 24 hours.",
		"summary_title":  "Summary of your request:",
		"event_title":    "Event details:",
		"rooms_title":    "Selected rooms:",
		"services_title": "Additional services:",
		"questions":      "If you have any questions, please contact us:",
		"at":             "on",
		"oclock":         "at",
		"hours":          "hours",
		"guests":         "guests",
	},
}

const ownerTemplateHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset='UTF-8'>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #FCAB14, #CD1151); color: white; padding: 30px; text-align: center; }
        .content { background: #f9f9f9; padding: 30px; }
        .section { margin-bottom: 25px; }
        .section h3 { color: #FCAB14; border-bottom: 2px solid #FCAB14; padding-bottom: 5px; margin-bottom: 15px; }
        .info-row { display: flex; margin-bottom: 10px; }
        .label { font-weight: bold; min-width: 180px; color: #666; }
        .value { color: #333; }
        .footer { text-align: center; padding: 20px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>Neue Buchungsanfrage</h1>
            <p>area710 - UNIQUE EVENT LOCATION</p>
        </div>

        <div class='content'>
            <div class='section'>
                <h3>Kontaktdaten</h3>
                <div class='info-row'><span class='label'>Name:</span><span class='value'>{{.FirstName}} {{.LastName}}</span></div>
                {{if .Company}}<div class='info-row'><span class='label'>Firma:</span><span class='value'>{{.Company}}</span></div>{{end}}
                <div class='info-row'><span class='label'>E-Mail:</span><span class='value'><a href='mailto:{{.Email}}'>{{.Email}}</a></span></div>
                <div class='info-row'><span class='label'>Telefon:</span><span class='value'><a href='tel:{{.Phone}}'>{{.Phone}}</a></span></div>
            </div>

            <div class='section'>
                <h3>Event-Details</h3>
                <div class='info-row'><span class='label'>Art der Veranstaltung:</span><span class='value'>{{.EventTypeLabel}}</span></div>
                <div class='info-row'><span class='label'>Datum:</span><span class='value'>{{.EventDate}}</span></div>
                <div class='info-row'><span class='label'>Uhrzeit:</span><span class='value'>{{.EventTime}} Uhr</span></div>
                <div class='info-row'><span class='label'>Dauer:</span><span class='value'>{{.Duration}} Stunden</span></div>
                <div class='info-row'><span class='label'>Anzahl Gäste:</span><span class='value'>{{.Guests}} Personen</span></div>
            </div>

            <div class='section'>
                <h3>Raumauswahl</h3>
                <div class='info-row'><span class='label'>Gewünschte Räume:</span><span class='value'>{{.RoomsText}}</span></div>
            </div>

            {{if .HasServices}}
            <div class='section'>
                <h3>Zusätzliche Services</h3>
                <div class='info-row'><span class='label'>Gewählte Services:</span><span class='value'>{{.ServicesText}}</span></div>
            </div>
            {{end}}

            {{if .MessageHTML}}
            <div class='section'>
                <h3>Nachricht</h3>
                <p>{{.MessageHTML}}</p>
            </div>
            {{end}}
        </div>

        <div class='footer'>
            <p>Diese Anfrage wurde über das Buchungsformular auf area710.de gesendet.</p>
            <p>Bitte antworten Sie dem Kunden zeitnah.</p>
        </div>
    </div>
</body>
</html>
`

const customerTemplateHTML = `<!DOCTYPE html>
<html>
<head>
    <meta charset='UTF-8'>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #FCAB14, #CD1151); color: white; padding: 30px; text-align: center; }
        .content { background: #f9f9f9; padding: 30px; }
        .section { margin-bottom: 20px; }
        .section h3 { color: #FCAB14; margin-bottom: 10px; }
        .info-row { margin-bottom: 8px; }
        .label { font-weight: bold; color: #666; }
        .contact-box { background: white; padding: 20px; border-left: 4px solid #FCAB14; margin-top: 20px; }
        .footer { text-align: center; padding: 20px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class='container'>
        <div class='header'>
            <h1>{{index .T "greeting"}}</h1>
            <p>area710 - UNIQUE EVENT LOCATION</p>
        </div>

        <div class='content'>
            <p>Hallo {{.FirstName}} {{.LastName}},</p>
            <p>{{index .T "intro"}}</p>

            <h3>{{index .T "summary_title"}}</h3>

            <div class='section'>
                <p><span class='label'>{{index .T "event_title"}}</span></p>
                <div class='info-row'>{{.EventTypeLabel}} {{index .T "at"}} {{.EventDate}} {{index .T "oclock"}} {{.EventTime}}</div>
                <div class='info-row'>{{.Duration}} {{index .T "hours"}} | {{.Guests}} {{index .T "guests"}}</div>
            </div>

            <div class='section'>
                <p><span class='label'>{{index .T "rooms_title"}}</span></p>
                <div class='info-row'>{{.RoomsText}}</div>
            </div>

            {{if .HasServices}}
            <div class='section'>
                <p><span class='label'>{{index .T "services_title"}}</span></p>
                <div class='info-row'>{{.ServicesText}}</div>
            </div>
            {{end}}

            <div class='contact-box'>
                <p><strong>{{index .T "questions"}}</strong></p>
                <p>📞 +49 7031 41073-11</p>
                <p>📧 info@area710.de</p>
                <p>🕒 Mo-Fr 10:00-18:00 Uhr</p>
            </div>
        </div>

        <div class='footer'>
            <p>Gottlieb-Binder-Straße 2 | D-71088 Holzgerlingen</p>
            <p>area710 eine Marke der seeeye Werbung &amp; Event GmbH</p>
        </div>
    </div>
</body>
</html>
`

var (
	ownerTemplate    = template.Must(template.New("owner").Parse(ownerTemplateHTML))
	customerTemplate = template.Must(template.New("customer").Parse(customerTemplateHTML))
)

// RenderOwnerNotification builds the internal notification mail. Owner mails
// are always German; the venue staff works in German regardless of the
// customer's language.
func RenderOwnerNotification(b *domain.Booking) (*RenderedEmail, error) {
	data := newTemplateData(b)

	var buf bytes.Buffer
	if err := ownerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render owner notification: %w", err)
	}

	text := fmt.Sprintf(
		"Neue Buchungsanfrage von %s %s\nE-Mail: %s\nTelefon: %s\n%s am %s um %s Uhr\n%d Stunden | %d Gäste\nRäume: %s\n",
		b.FirstName, b.LastName, b.Email, b.Phone,
		b.EventTypeLabel(), b.EventDate, b.EventTime,
		b.Duration, b.Guests, strings.Join(b.Rooms, ", "),
	)

	return &RenderedEmail{
		Subject: fmt.Sprintf("Neue Buchungsanfrage von %s %s", b.FirstName, b.LastName),
		HTML:    buf.String(),
		Text:    text,
	}, nil
}

// RenderCustomerConfirmation builds the confirmation mail in the booking's
// language.
func RenderCustomerConfirmation(b *domain.Booking) (*RenderedEmail, error) {
	tr, ok := customerCopy[b.Lang]
	if !ok {
		tr = customerCopy[domain.LangDE]
	}

	data := newTemplateData(b)
	data.T = tr

	var buf bytes.Buffer
	if err := customerTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render customer confirmation: %w", err)
	}

	text := fmt.Sprintf(
		"%s\n\n%s\n\n%s %s %s %s %s\n%d %s | %d %s\n",
		tr["greeting"], tr["intro"],
		b.EventTypeLabel(), tr["at"], b.EventDate, tr["oclock"], b.EventTime,
		b.Duration, tr["hours"], b.Guests, tr["guests"],
	)

	return &RenderedEmail{
		Subject: tr["subject"],
		HTML:    buf.String(),
		Text:    text,
	}, nil
}
