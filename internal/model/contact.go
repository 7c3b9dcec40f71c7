package model

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of m.
func (m *ContactMessage) Clone() *ContactMessage {
	c := *m
	c.Phone = cloneString(m.Phone)
	return &c
}
