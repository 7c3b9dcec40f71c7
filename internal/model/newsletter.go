package model

import "time"

// NewsletterSubscription is one address on the newsletter list. Email is unique.
type NewsletterSubscription struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// Clone returns a deep copy of s.
func (s *NewsletterSubscription) Clone() *NewsletterSubscription {
	c := *s
	c.FirstName = cloneString(s.FirstName)
	c.LastName = cloneString(s.LastName)
	return &c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
