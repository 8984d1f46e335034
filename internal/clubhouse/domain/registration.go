package domain

import "time"

// Status is the lifecycle state of a registration. Only StatusActive is
// ever assigned.
type Status string

const StatusActive Status = "active"

// TimestampLayout is the format of Registration.Timestamp.
const TimestampLayout = time.RFC3339

type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"` // stored as received
	Name      string `json:"name"`
	Timestamp string `json:"timestamp"`
	Status    Status `json:"status"`
}

// NewRegistration builds an active registration stamped with now.
func NewRegistration(email, password, name string, now time.Time) Registration {
	return Registration{
		Email:     email,
		Password:  password,
		Name:      name,
		Timestamp: now.UTC().Format(TimestampLayout),
		Status:    StatusActive,
	}
}

