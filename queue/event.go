// Package queue publishes booking lifecycle events to the message broker so
// downstream consumers (notifications, analytics) can react without querying
// the primary database.
package queue

// BookingEvent is emitted after every successful lifecycle mutation.
type BookingEvent struct {
	BookingID  string `json:"bookingId"`
	ScheduleID string `json:"scheduleId"`
	MentorID   string `json:"mentorId"`
	GroupID    string `json:"groupId"`
	Status     string `json:"status"`
	PointPay   int    `json:"pointPay"`
	OccurredAt string `json:"occurredAt"`
}
