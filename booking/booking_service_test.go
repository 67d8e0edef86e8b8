package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	bk "github.com/mentorhub/mentor-booking-backend/booking"
	bk_mocks "github.com/mentorhub/mentor-booking-backend/booking/mocks"
	"github.com/mentorhub/mentor-booking-backend/group"
	"github.com/mentorhub/mentor-booking-backend/schedule"
)

type testDeps struct {
	repo      *bk_mocks.MockBookingRepository
	schedules *bk_mocks.MockScheduleDirectory
	groups    *bk_mocks.MockGroupDirectory
	publisher *bk_mocks.MockEventPublisher
	service   *bk.Service
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	schedules := bk_mocks.NewMockScheduleDirectory(ctrl)
	groups := bk_mocks.NewMockGroupDirectory(ctrl)
	publisher := bk_mocks.NewMockEventPublisher(ctrl)
	svc := bk.NewService(repo, schedules, groups, publisher, zap.NewNop())

	return ctrl, testDeps{
		repo: repo, schedules: schedules, groups: groups, publisher: publisher,
		service: svc, ctx: context.Background(),
	}
}

func activeSchedule(minutes int) schedule.MentorSchedule {
	from := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	return schedule.MentorSchedule{
		ID:              "s1",
		MentorID:        "m1",
		AvailableFrom:   from,
		AvailableTo:     from.Add(time.Duration(minutes) * time.Minute),
		AvailableStatus: "ACTIVE",
	}
}

func activeGroup() group.Group {
	return group.Group{
		ID:              "g1",
		Name:            "group one",
		ClassID:         "c1",
		TotalPoint:      300,
		AvailableStatus: "ACTIVE",
		Members: []group.Member{
			{StudentID: "st1", Point: 100},
			{StudentID: "st2", Point: 100},
			{StudentID: "st3", Point: 100},
		},
	}
}

func TestCreateBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		toInsert := bk.Booking{ScheduleID: "s1", MentorID: "m1", GroupID: "g1", PointPay: 90}
		inserted := toInsert
		inserted.ID = "b1"
		inserted.Status = bk.StatusPending
		inserted.Availability = bk.Active

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(activeGroup(), nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, toInsert).Return(inserted, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.Nil(t, err)
		require.Equal(t, inserted, got)
	})

	t.Run("schedule not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(schedule.MentorSchedule{}, schedule.ErrScheduleNotFound).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.ErrorIs(t, err, schedule.ErrScheduleNotFound)
	})

	t.Run("group not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(group.Group{}, group.ErrGroupNotFound).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.ErrorIs(t, err, group.ErrGroupNotFound)
	})

	t.Run("empty group", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		grp := activeGroup()
		grp.Members = nil

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(grp, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.ErrorIs(t, err, bk.ErrEmptyGroup)
	})

	t.Run("invalid schedule window", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(0), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(activeGroup(), nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.ErrorIs(t, err, bk.ErrInvalidDuration)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(activeGroup(), nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{}, errors.New("repo error")).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.Error(t, err)
	})

	t.Run("publisher failure does not fail the request", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(activeGroup(), nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{ID: "b1"}, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")

		require.Nil(t, err)
	})

	t.Run("schedule lookup is cached", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.schedules.EXPECT().GetActiveSchedule(deps.ctx, "s1").Return(activeSchedule(90), nil).Times(1)
		deps.groups.EXPECT().GetActiveGroup(deps.ctx, "g1").Return(activeGroup(), nil).Times(2)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{ID: "b1"}, nil).Times(2)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		_, err := deps.service.CreateBooking(deps.ctx, "s1", "g1")
		require.Nil(t, err)

		_, err = deps.service.CreateBooking(deps.ctx, "s1", "g1")
		require.Nil(t, err)
	})
}

func TestAcceptBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		confirmed := bk.Booking{ID: "123", Status: bk.StatusConfirmed, Availability: bk.Active, PointPay: 90}

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventAccept).Return(confirmed, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.AcceptBooking(deps.ctx, "123")

		require.Nil(t, err)
		require.Equal(t, confirmed, got)
	})

	t.Run("invalid state", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventAccept).Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AcceptBooking(deps.ctx, "123")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("conflict", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventAccept).Return(bk.Booking{}, bk.ErrBookingConflict).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.AcceptBooking(deps.ctx, "123")

		require.ErrorIs(t, err, bk.ErrBookingConflict)
	})
}

func TestRejectBooking(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		rejected := bk.Booking{ID: "123", Status: bk.StatusRejected, Availability: bk.Inactive}

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventReject).Return(rejected, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.RejectBooking(deps.ctx, "123")

		require.Nil(t, err)
		require.Equal(t, rejected, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventReject).Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RejectBooking(deps.ctx, "123")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {

	t.Run("by mentor", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		cancelled := bk.Booking{ID: "123", Status: bk.StatusCancelled, Availability: bk.Inactive, PointPay: 90}

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventCancelByMentor).Return(cancelled, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.CancelBooking(deps.ctx, "123", bk.ActorMentor)

		require.Nil(t, err)
		require.Equal(t, cancelled, got)
	})

	t.Run("by student", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		cancelled := bk.Booking{ID: "123", Status: bk.StatusCancelled, Availability: bk.Inactive, PointPay: 90}

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventCancelByStudent).Return(cancelled, nil).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		got, err := deps.service.CancelBooking(deps.ctx, "123", bk.ActorStudent)

		require.Nil(t, err)
		require.Equal(t, cancelled, got)
	})

	t.Run("unknown actor", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().PerformTransition(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, "123", bk.Actor("ADMIN"))

		require.ErrorIs(t, err, bk.ErrInvalidActor)
	})

	t.Run("invalid state", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().PerformTransition(deps.ctx, "123", bk.EventCancelByMentor).Return(bk.Booking{}, bk.ErrInvalidBookingState).Times(1)
		deps.publisher.EXPECT().PublishBookingEvent(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CancelBooking(deps.ctx, "123", bk.ActorMentor)

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}

func TestBookingQueries(t *testing.T) {
	bookings := []bk.Booking{{ID: "1", Status: bk.StatusPending, Availability: bk.Active}}

	t.Run("active", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetActiveBookings(deps.ctx).Return(bookings, nil).Times(1)

		got, err := deps.service.GetActiveBookings(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, bookings, got)
	})

	t.Run("historical", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetHistoricalBookings(deps.ctx).Return(bookings, nil).Times(1)

		got, err := deps.service.GetHistoricalBookings(deps.ctx)

		require.Nil(t, err)
		require.Equal(t, bookings, got)
	})

	t.Run("per class", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingsPerClass(deps.ctx, "c1").Return(bookings, nil).Times(1)

		got, err := deps.service.FindBookingsPerClass(deps.ctx, "c1")

		require.Nil(t, err)
		require.Equal(t, bookings, got)
	})

	t.Run("by id", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "123").Return(bookings[0], nil).Times(1)

		got, err := deps.service.FindBookingByID(deps.ctx, "123")

		require.Nil(t, err)
		require.Equal(t, bookings[0], got)
	})

	t.Run("ledger", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		entries := []bk.LedgerEntry{{ID: "l1", BookingID: "123", Kind: bk.LedgerRedeemed, Points: 90}}
		deps.repo.EXPECT().GetLedgerEntries(deps.ctx, "123").Return(entries, nil).Times(1)

		got, err := deps.service.FindLedgerEntries(deps.ctx, "123")

		require.Nil(t, err)
		require.Equal(t, entries, got)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetActiveBookings(deps.ctx).Return(nil, errors.New("repo error")).Times(1)

		got, err := deps.service.GetActiveBookings(deps.ctx)

		require.Error(t, err)
		require.Equal(t, 0, len(got))
	})
}
