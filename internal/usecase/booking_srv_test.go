package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T) (usecase.BookingService, *repository.Repository, int) {
	t.Helper()

	repo := newMemRepository()
	room := &entity.Room{
		RoomNumber: "101",
		Capacity:   4,
		Status:     entity.RoomStatusAvailable,
		CreatedAt:  time.Now(),
	}
	if err := repo.Room.Create(context.Background(), room); err != nil {
		t.Fatalf("seed room: %v", err)
	}

	return usecase.NewBookingService(repo, zap.NewNop()), repo, room.ID
}

func TestCreateBookingIsPending(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)
	customerID := uuid.New().String()

	created, err := svc.Create(context.Background(), customerID, &request.CreateBookingRequest{
		RoomID:      roomID,
		BookingDate: "2025-01-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}

	if got.Status != entity.BookingStatusPending {
		t.Errorf("status = %s, want %s", got.Status, entity.BookingStatusPending)
	}
	if got.RoomID != roomID {
		t.Errorf("room id = %d, want %d", got.RoomID, roomID)
	}
	if got.BookingDate != "2025-01-10" {
		t.Errorf("booking date = %s, want 2025-01-10", got.BookingDate)
	}
	if got.StartTime != "09:00" || got.EndTime != "10:00" {
		t.Errorf("slot = %s-%s, want 09:00-10:00", got.StartTime, got.EndTime)
	}
	if got.CustomerID != customerID {
		t.Errorf("customer id = %s, want %s", got.CustomerID, customerID)
	}
}

func TestCreateBookingUnknownRoom(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	_, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID:      999,
		BookingDate: "2025-01-10",
		StartTime:   "09:00",
		EndTime:     "10:00",
	})
	if err == nil {
		t.Fatal("expected error for unknown room")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestCreateBookingInvalidTimeRange(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)

	for _, slot := range []struct{ start, end string }{
		{"10:00", "09:00"},
		{"09:00", "09:00"},
	} {
		_, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
			RoomID:      roomID,
			BookingDate: "2025-01-10",
			StartTime:   slot.start,
			EndTime:     slot.end,
		})
		if err == nil {
			t.Fatalf("expected error for slot %s-%s", slot.start, slot.end)
		}
		if !strings.Contains(err.Error(), "invalid time range") {
			t.Errorf("slot %s-%s: error = %v, want invalid time range", slot.start, slot.end, err)
		}
	}
}

func TestGetByCustomerReturnsOnlyOwnBookings(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)
	alice := uuid.New().String()
	bob := uuid.New().String()

	req := &request.CreateBookingRequest{
		RoomID: roomID, BookingDate: "2025-01-10", StartTime: "09:00", EndTime: "10:00",
	}
	if _, err := svc.Create(context.Background(), alice, req); err != nil {
		t.Fatalf("create for alice: %v", err)
	}
	if _, err := svc.Create(context.Background(), bob, req); err != nil {
		t.Fatalf("create for bob: %v", err)
	}

	bookings, err := svc.GetByCustomer(context.Background(), alice)
	if err != nil {
		t.Fatalf("get by customer: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("got %d bookings, want 1", len(bookings))
	}
	if bookings[0].CustomerID != alice {
		t.Errorf("customer id = %s, want %s", bookings[0].CustomerID, alice)
	}

	all, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d bookings in total, want 2", len(all))
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)

	created, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID: roomID, BookingDate: "2025-01-10", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Cancel(context.Background(), created.ID); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if err := svc.Cancel(context.Background(), created.ID); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Status != entity.BookingStatusCancelled {
		t.Errorf("status = %s, want %s", got.Status, entity.BookingStatusCancelled)
	}
}

func TestCancelMissingBookingIsNotFound(t *testing.T) {
	svc, _, _ := newBookingFixture(t)

	err := svc.Cancel(context.Background(), uuid.New().String())
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestUpdateOverwritesFields(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)

	created, err := svc.Create(context.Background(), uuid.New().String(), &request.CreateBookingRequest{
		RoomID: roomID, BookingDate: "2025-01-10", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, &request.UpdateBookingRequest{
		RoomID:      roomID,
		BookingDate: "2025-02-01",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Status:      "Confirmed",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.BookingDate != "2025-02-01" {
		t.Errorf("booking date = %s, want 2025-02-01", updated.BookingDate)
	}
	if updated.Status != entity.BookingStatusConfirmed {
		t.Errorf("status = %s, want %s", updated.Status, entity.BookingStatusConfirmed)
	}
}

func TestUpdateMissingBookingIsNotFound(t *testing.T) {
	svc, _, roomID := newBookingFixture(t)

	_, err := svc.Update(context.Background(), uuid.New().String(), &request.UpdateBookingRequest{
		RoomID:      roomID,
		BookingDate: "2025-02-01",
		StartTime:   "14:00",
		EndTime:     "16:00",
		Status:      "Pending",
	})
	if err == nil {
		t.Fatal("expected not found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not found", err)
	}
}
