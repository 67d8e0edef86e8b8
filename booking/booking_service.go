package booking

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mentorhub/mentor-booking-backend/group"
	"github.com/mentorhub/mentor-booking-backend/queue"
	"github.com/mentorhub/mentor-booking-backend/schedule"
)

type BookingRepository interface {
	GetActiveBookings(ctx context.Context) ([]Booking, error)
	GetHistoricalBookings(ctx context.Context) ([]Booking, error)
	GetBookingsPerClass(ctx context.Context, classID string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetLedgerEntries(ctx context.Context, bookingID string) ([]LedgerEntry, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	PerformTransition(ctx context.Context, id string, ev Event) (Booking, error)
}

type ScheduleDirectory interface {
	GetActiveSchedule(ctx context.Context, id string) (schedule.MentorSchedule, error)
}

type GroupDirectory interface {
	GetActiveGroup(ctx context.Context, id string) (group.Group, error)
}

type EventPublisher interface {
	PublishBookingEvent(ctx context.Context, event queue.BookingEvent) error
}

type Service struct {
	repo      BookingRepository
	schedules ScheduleDirectory
	groups    GroupDirectory
	publisher EventPublisher
	cache     *cache.Cache
	logger    *zap.Logger
}

func NewService(repo BookingRepository, schedules ScheduleDirectory, groups GroupDirectory, publisher EventPublisher, logger *zap.Logger) *Service {
	return &Service{
		repo:      repo,
		schedules: schedules,
		groups:    groups,
		publisher: publisher,
		cache:     cache.New(1*time.Minute, 5*time.Minute),
		logger:    logger,
	}
}

func (s *Service) GetActiveBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetActiveBookings(ctx)
}

func (s *Service) GetHistoricalBookings(ctx context.Context) ([]Booking, error) {
	return s.repo.GetHistoricalBookings(ctx)
}

func (s *Service) FindBookingsPerClass(ctx context.Context, classID string) ([]Booking, error) {
	return s.repo.GetBookingsPerClass(ctx, classID)
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindLedgerEntries(ctx context.Context, bookingID string) ([]LedgerEntry, error) {
	return s.repo.GetLedgerEntries(ctx, bookingID)
}

// CreateBooking validates the referenced schedule and group, prices the
// booking and stores it as PENDING. No points move until acceptance.
func (s *Service) CreateBooking(ctx context.Context, scheduleID, groupID string) (Booking, error) {
	sched, err := s.getActiveSchedule(ctx, scheduleID)

	if err != nil {
		return Booking{}, err
	}

	grp, err := s.groups.GetActiveGroup(ctx, groupID)

	if err != nil {
		return Booking{}, err
	}

	if len(grp.Members) == 0 {
		return Booking{}, ErrEmptyGroup
	}

	pointPay, err := PointPay(len(grp.Members), sched.AvailableFrom, sched.AvailableTo)

	if err != nil {
		return Booking{}, err
	}

	inserted, err := s.repo.InsertBooking(ctx, Booking{
		ScheduleID: sched.ID,
		MentorID:   sched.MentorID,
		GroupID:    grp.ID,
		PointPay:   pointPay,
	})

	if err == nil {
		s.publishEvent(ctx, inserted)
	}

	return inserted, err
}

func (s *Service) AcceptBooking(ctx context.Context, id string) (Booking, error) {
	b, err := s.repo.PerformTransition(ctx, id, EventAccept)

	if err == nil {
		s.publishEvent(ctx, b)
	}

	return b, err
}

func (s *Service) RejectBooking(ctx context.Context, id string) (Booking, error) {
	b, err := s.repo.PerformTransition(ctx, id, EventReject)

	if err == nil {
		s.publishEvent(ctx, b)
	}

	return b, err
}

func (s *Service) CancelBooking(ctx context.Context, id string, actor Actor) (Booking, error) {
	var ev Event

	switch actor {
	case ActorMentor:
		ev = EventCancelByMentor
	case ActorStudent:
		ev = EventCancelByStudent
	default:
		return Booking{}, ErrInvalidActor
	}

	b, err := s.repo.PerformTransition(ctx, id, ev)

	if err == nil {
		s.publishEvent(ctx, b)
	}

	return b, err
}

func (s *Service) getActiveSchedule(ctx context.Context, id string) (schedule.MentorSchedule, error) {
	if cached, found := s.cache.Get("schedule:" + id); found {
		return cached.(schedule.MentorSchedule), nil
	}

	sched, err := s.schedules.GetActiveSchedule(ctx, id)

	if err != nil {
		return schedule.MentorSchedule{}, err
	}

	s.cache.SetDefault("schedule:"+id, sched)

	return sched, nil
}

// publishEvent is best effort: a broker outage must not fail the booking
// operation that already committed.
func (s *Service) publishEvent(ctx context.Context, b Booking) {
	event := queue.BookingEvent{
		BookingID:  b.ID,
		ScheduleID: b.ScheduleID,
		MentorID:   b.MentorID,
		GroupID:    b.GroupID,
		Status:     string(b.Status),
		PointPay:   b.PointPay,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.publisher.PublishBookingEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish booking event",
			zap.String("booking", b.ID),
			zap.String("status", string(b.Status)),
			zap.Error(err),
		)
	}
}
