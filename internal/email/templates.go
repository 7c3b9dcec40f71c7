package email

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/kipkirui63/all-in-one/internal/model"
)

const notProvided = "Not provided"

var (
	contactTemplate = template.Must(template.New("contact").Parse(`
<h2>New Contact Form Submission</h2>
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{.Phone}}</p>
  <p><strong>Message:</strong></p>
  <div style="background-color: #f5f5f5; padding: 15px; border-left: 4px solid #007bff; margin: 10px 0;">
    {{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}
  </div>
  <hr>
  <p style="color: #666; font-size: 12px;">This email was sent from the CrispAI website contact form.</p>
</div>`))

	newsletterTemplate = template.Must(template.New("newsletter").Parse(`
<h2>New Newsletter Subscription</h2>
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>First Name:</strong> {{.FirstName}}</p>
  <p><strong>Last Name:</strong> {{.LastName}}</p>
  <p><strong>Subscription Date:</strong> {{.Date}}</p>
  <hr>
  <p style="color: #666; font-size: 12px;">This email was sent from the CrispAI website newsletter subscription form.</p>
</div>`))

	meetingConfirmationTemplate = template.Must(template.New("meetingConfirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Meeting Confirmation</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for booking a meeting with CrispAI. Your {{.TypeLower}} has been confirmed.</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Meeting Details</h3>
    <p><strong>Type:</strong> {{.Type}}</p>
    <p><strong>Date:</strong> {{.Date}}</p>
    <p><strong>Time:</strong> {{.Time}}</p>
    <p><strong>Duration:</strong> {{.Duration}} minutes</p>
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    {{if .Description}}<p><strong>Description:</strong> {{.Description}}</p>{{end}}
  </div>
  <p>A Google Meet link will be sent to you 15 minutes before the meeting.</p>
  <p>If you need to reschedule or cancel, please contact us at least 24 hours in advance.</p>
  <p>Best regards,<br>The CrispAI Team</p>
  <p>Email: info@crispai.ca<br>Phone: +1 (343) 580-1393</p>
</div>`))

	meetingAdminTemplate = template.Must(template.New("meetingAdmin").Parse(`
<h2>New Meeting Booking</h2>
<div style="font-family: Arial, sans-serif; line-height: 1.6;">
  <p><strong>Customer:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{or .Phone "Not provided"}}</p>
  <p><strong>Company:</strong> {{or .Company "Not provided"}}</p>
  <p><strong>Meeting Type:</strong> {{.Type}}</p>
  <p><strong>Date &amp; Time:</strong> {{.Date}} at {{.Time}}</p>
  <p><strong>Duration:</strong> {{.Duration}} minutes</p>
  <p><strong>Timezone:</strong> {{.Timezone}}</p>
  <p><strong>Description:</strong> {{or .Description "Not provided"}}</p>
  <p><strong>Meeting ID:</strong> {{.ID}}</p>
</div>`))

	meetingRescheduleTemplate = template.Must(template.New("meetingReschedule").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2563eb;">Meeting Rescheduled</h2>
  <p>Dear {{.Name}},</p>
  <p>Your {{.TypeLower}} has been rescheduled to a new time.</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0;">Updated Meeting Details</h3>
    <p><strong>Type:</strong> {{.Type}}</p>
    <p><strong>New Date:</strong> {{.Date}}</p>
    <p><strong>New Time:</strong> {{.Time}}</p>
    <p><strong>Duration:</strong> {{.Duration}} minutes</p>
    <p><strong>Timezone:</strong> {{.Timezone}}</p>
  </div>
  <p>Please update your calendar accordingly. A new Google Meet link will be sent to you.</p>
  <p>Best regards,<br>The CrispAI Team</p>
</div>`))
)

type contactData struct {
	Name  string
	Email string
	Phone string
	Lines []string
}

type newsletterData struct {
	Email     string
	FirstName string
	LastName  string
	Date      string
}

// meetingData is shared by the three meeting templates.
type meetingData struct {
	ID          int64
	Name        string
	Email       string
	Phone       string
	Company     string
	Description string
	Type        string
	TypeLower   string
	Date        string
	Time        string
	Timezone    string
	Duration    int
}

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func orNotProvided(p *string) string {
	if v := model.StringValue(p); v != "" {
		return v
	}
	return notProvided
}

func contactHTML(msg *model.ContactMessage) (string, error) {
	lines := strings.Split(strings.ReplaceAll(msg.Message, "\r\n", "\n"), "\n")
	return render(contactTemplate, contactData{
		Name:  msg.Name,
		Email: msg.Email,
		Phone: orNotProvided(msg.Phone),
		Lines: lines,
	})
}

func newsletterHTML(sub *model.NewsletterSubscription) (string, error) {
	return render(newsletterTemplate, newsletterData{
		Email:     sub.Email,
		FirstName: orNotProvided(sub.FirstName),
		LastName:  orNotProvided(sub.LastName),
		Date:      sub.SubscribedAt.UTC().Format("1/2/2006, 3:04:05 PM MST"),
	})
}

// meetingLocation resolves the meeting's IANA zone, falling back to UTC.
func meetingLocation(tz string) *time.Location {
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

func newMeetingData(m *model.Meeting) meetingData {
	local := m.PreferredDate.In(meetingLocation(m.Timezone))
	return meetingData{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       model.StringValue(m.Phone),
		Company:     model.StringValue(m.Company),
		Description: model.StringValue(m.Description),
		Type:        m.MeetingType,
		TypeLower:   strings.ToLower(m.MeetingType),
		Date:        local.Format("Monday, January 2, 2006"),
		Time:        local.Format("03:04 PM MST"),
		Timezone:    m.Timezone,
		Duration:    m.Duration,
	}
}
