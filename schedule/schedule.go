package schedule

import "time"

// MentorSchedule is a published time window during which a mentor can be
// booked. Deleting a schedule only flips it to INACTIVE.
type MentorSchedule struct {
	ID              string    `json:"id"`
	MentorID        string    `json:"mentorId"`
	AvailableFrom   time.Time `json:"availableFrom"`
	AvailableTo     time.Time `json:"availableTo"`
	AvailableStatus string    `json:"availableStatus"`
	DateCreated     time.Time `json:"dateCreated"`
	DateUpdated     time.Time `json:"dateUpdated"`
}
