package usecase

import (
	"context"
	"fmt"
	"time"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"
	"room-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	Create(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetByCustomer(ctx context.Context, customerID string) ([]response.BookingResponse, error)
	GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	Update(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, bookingID string) error

	// GetAll is unrestricted by ownership; gated to staff/admin at the routes.
	GetAll(ctx context.Context) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

// Create makes a new Pending booking for the calling customer. The room must
// exist and the end time must follow the start time. Overlapping bookings for
// the same room and slot are not rejected.
func (s *bookingService) Create(ctx context.Context, customerID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	bookingDate, startTime, endTime, err := parseBookingSlot(req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		s.log.Error("Failed to check room", zap.Error(err), zap.Int("room_id", req.RoomID))
		return nil, fmt.Errorf("check room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", req.RoomID)
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CustomerID:  customerUUID,
		RoomID:      req.RoomID,
		BookingDate: bookingDate,
		StartTime:   startTime,
		EndTime:     endTime,
		Status:      entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_id", customerID),
			zap.Int("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_id", customerID),
		zap.Int("room_id", req.RoomID),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetByCustomer(ctx context.Context, customerID string) ([]response.BookingResponse, error) {
	customerUUID, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer ID format %s: %w", customerID, err)
	}

	bookings, err := s.repo.Booking.FindByCustomerID(ctx, customerUUID)
	if err != nil {
		s.log.Error("Failed to get customer bookings",
			zap.Error(err),
			zap.String("customer_id", customerID),
		)
		return nil, fmt.Errorf("get customer bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Update overwrites all mutable fields of an existing booking. A missing
// booking id is reported as not found rather than silently succeeding.
func (s *bookingService) Update(ctx context.Context, bookingID string, req *request.UpdateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	bookingDate, startTime, endTime, err := parseBookingSlot(req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	booking.RoomID = req.RoomID
	booking.BookingDate = bookingDate
	booking.StartTime = startTime
	booking.EndTime = endTime
	booking.Status = entity.BookingStatus(req.Status)

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		// Referential integrity backstop when the new room id is unknown
		if repository.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("room %d not found", req.RoomID)
		}
		s.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// Cancel sets the booking status to Cancelled. Cancelled is terminal, so
// cancelling twice is a no-op that still reports success.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	bookingUUID, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingUUID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s not found", bookingID)
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingUUID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("Booking cancelled", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all bookings", zap.Error(err))
		return nil, fmt.Errorf("get all bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

// ==================== HELPER METHODS ====================

// parseBookingSlot parses the wire formats and enforces end > start.
func parseBookingSlot(date, start, end string) (time.Time, string, string, error) {
	bookingDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid booking date %s: %w", date, err)
	}

	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid start time %s: %w", start, err)
	}

	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return time.Time{}, "", "", fmt.Errorf("invalid end time %s: %w", end, err)
	}

	if !endAt.After(startAt) {
		return time.Time{}, "", "", fmt.Errorf("invalid time range: end time must be after start time")
	}

	return bookingDate, startAt.Format("15:04"), endAt.Format("15:04"), nil
}
