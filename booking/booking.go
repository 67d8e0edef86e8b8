package booking

import "time"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Availability marks whether a record can still be acted upon. Terminal
// bookings are flipped to INACTIVE instead of being deleted.
type Availability string

const (
	Active   Availability = "ACTIVE"
	Inactive Availability = "INACTIVE"
)

type Actor string

const (
	ActorMentor  Actor = "MENTOR"
	ActorStudent Actor = "STUDENT"
)

type LedgerKind string

const (
	LedgerRedeemed LedgerKind = "REDEEMED"
	LedgerAdjusted LedgerKind = "ADJUSTED"
	LedgerExpired  LedgerKind = "EXPIRED"
)

type Booking struct {
	ID           string       `json:"id"`
	ScheduleID   string       `json:"scheduleId"`
	MentorID     string       `json:"mentorId"`
	GroupID      string       `json:"groupId"`
	Status       Status       `json:"status"`
	Availability Availability `json:"availability"`
	PointPay     int          `json:"pointPay"`
	DateCreated  time.Time    `json:"dateCreated"`
	DateUpdated  time.Time    `json:"dateUpdated"`
}

// LedgerEntry is an immutable audit record of a point-affecting lifecycle
// event. Entries are only ever appended, never updated or deleted.
type LedgerEntry struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"bookingId"`
	Kind        LedgerKind `json:"kind"`
	Points      int        `json:"points"`
	DateCreated time.Time  `json:"dateCreated"`
}

type Event int

const (
	EventAccept Event = iota
	EventReject
	EventCancelByMentor
	EventCancelByStudent
)

func (e Event) String() string {
	switch e {
	case EventAccept:
		return "accept"
	case EventReject:
		return "reject"
	case EventCancelByMentor:
		return "cancel-by-mentor"
	case EventCancelByStudent:
		return "cancel-by-student"
	}
	return "unknown"
}

// LedgerEffect pairs the ledger entry a transition must append with the
// direction points move. Movement is -1 when the group pays, +1 when it is
// refunded and 0 when the event is recorded without moving points (the
// student cancellation penalty).
type LedgerEffect struct {
	Kind     LedgerKind
	Points   int
	Movement int
}

func (e LedgerEffect) TotalDelta() int {
	return e.Movement * e.Points
}

// PerMemberDelta splits the movement evenly across members using integer
// division. The remainder of a non-divisible split is absorbed at the group
// total, so sum(member points) can drift from the total by Points % members.
func (e LedgerEffect) PerMemberDelta(memberCount int) int {
	return e.Movement * (e.Points / memberCount)
}

const (
	pointsPerMemberSlot = 10
	slotMinutes         = 30
)

// PointPay computes the price of a booking: 10 points per member for every
// full 30-minute slot of the schedule window.
func PointPay(memberCount int, from, to time.Time) (int, error) {
	minutes := int(to.Sub(from).Minutes())

	if minutes <= 0 {
		return 0, ErrInvalidDuration
	}

	return memberCount * pointsPerMemberSlot * (minutes / slotMinutes), nil
}

// Transition computes the next state of a booking for a lifecycle event,
// together with the ledger effect that must be persisted in the same
// transaction. Every pair not listed here is illegal: terminal bookings never
// change again and PENDING can never be revisited.
func Transition(b Booking, ev Event) (Booking, *LedgerEffect, error) {
	if b.Availability != Active {
		return Booking{}, nil, ErrInvalidBookingState
	}

	switch b.Status {
	case StatusPending:
		switch ev {
		case EventAccept:
			b.Status = StatusConfirmed
			return b, &LedgerEffect{Kind: LedgerRedeemed, Points: b.PointPay, Movement: -1}, nil
		case EventReject:
			b.Status = StatusRejected
			b.Availability = Inactive
			return b, nil, nil
		}
	case StatusConfirmed:
		switch ev {
		case EventCancelByMentor:
			b.Status = StatusCancelled
			b.Availability = Inactive
			return b, &LedgerEffect{Kind: LedgerAdjusted, Points: b.PointPay, Movement: 1}, nil
		case EventCancelByStudent:
			// No refund: the deduction made at acceptance stands.
			b.Status = StatusCancelled
			b.Availability = Inactive
			return b, &LedgerEffect{Kind: LedgerExpired, Points: b.PointPay, Movement: 0}, nil
		}
	}

	return Booking{}, nil, ErrInvalidBookingState
}
