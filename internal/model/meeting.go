package model

import "time"

// Meeting types offered on the booking form.
const (
	MeetingTypeConsultation = "AI Consultation"
	MeetingTypeProductDemo  = "Product Demo"
	MeetingTypeStrategy     = "Strategy Session"
	MeetingTypeSupport      = "Technical Support"
)

// Meeting statuses.
const (
	MeetingStatusPending   = "pending"
	MeetingStatusConfirmed = "confirmed"
	MeetingStatusCancelled = "cancelled"
	MeetingStatusCompleted = "completed"
)

// DefaultMeetingDuration is applied when a booking omits duration (minutes).
const DefaultMeetingDuration = 30

// Meeting is a booked session with the team.
type Meeting struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           *string   `json:"phone"`
	Company         *string   `json:"company"`
	MeetingType     string    `json:"meetingType"`
	PreferredDate   time.Time `json:"preferredDate"`
	Duration        int       `json:"duration"` // minutes
	Timezone        string    `json:"timezone"`
	Description     *string   `json:"description"`
	Status          string    `json:"status"`
	GoogleMeetLink  *string   `json:"googleMeetLink"`
	CalendarEventID *string   `json:"calendarEventId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EndTime returns PreferredDate plus Duration.
func (m *Meeting) EndTime() time.Time {
	return m.PreferredDate.Add(time.Duration(m.Duration) * time.Minute)
}

// ApplyDefaults fills duration and status when they are unset.
func (m *Meeting) ApplyDefaults() {
	if m.Duration <= 0 {
		m.Duration = DefaultMeetingDuration
	}
	if m.Status == "" {
		m.Status = MeetingStatusPending
	}
}

// Clone returns a deep copy of m.
func (m *Meeting) Clone() *Meeting {
	c := *m
	c.Phone = cloneString(m.Phone)
	c.Company = cloneString(m.Company)
	c.Description = cloneString(m.Description)
	c.GoogleMeetLink = cloneString(m.GoogleMeetLink)
	c.CalendarEventID = cloneString(m.CalendarEventID)
	return &c
}

// MeetingUpdate is a partial update. Nil fields are left unchanged.
// For the optional fields (Phone, Company, Description, GoogleMeetLink,
// CalendarEventID) a pointer to "" clears the stored value.
// ID and CreatedAt are not part of it and can never change.
type MeetingUpdate struct {
	Name            *string
	Email           *string
	Phone           *string
	Company         *string
	MeetingType     *string
	PreferredDate   *time.Time
	Duration        *int
	Timezone        *string
	Description     *string
	Status          *string
	GoogleMeetLink  *string
	CalendarEventID *string
}

// IsEmpty reports whether u changes nothing.
func (u MeetingUpdate) IsEmpty() bool {
	return u == MeetingUpdate{}
}

// Apply merges u into m and stamps UpdatedAt with now.
func (u MeetingUpdate) Apply(m *Meeting, now time.Time) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Email != nil {
		m.Email = *u.Email
	}
	if u.Phone != nil {
		m.Phone = NullIfEmpty(u.Phone)
	}
	if u.Company != nil {
		m.Company = NullIfEmpty(u.Company)
	}
	if u.MeetingType != nil {
		m.MeetingType = *u.MeetingType
	}
	if u.PreferredDate != nil {
		m.PreferredDate = *u.PreferredDate
	}
	if u.Duration != nil {
		m.Duration = *u.Duration
	}
	if u.Timezone != nil {
		m.Timezone = *u.Timezone
	}
	if u.Description != nil {
		m.Description = NullIfEmpty(u.Description)
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	if u.GoogleMeetLink != nil {
		m.GoogleMeetLink = NullIfEmpty(u.GoogleMeetLink)
	}
	if u.CalendarEventID != nil {
		m.CalendarEventID = NullIfEmpty(u.CalendarEventID)
	}
	m.UpdatedAt = now
}

// NullIfEmpty maps "" to nil and otherwise returns a copy of p.
func NullIfEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return cloneString(p)
}
