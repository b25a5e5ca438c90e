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

	"go.uber.org/zap"
)

type RoomService interface {
	Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetAll(ctx context.Context) ([]response.RoomResponse, error)
	GetByID(ctx context.Context, id int) (*response.RoomResponse, error)
	Update(ctx context.Context, id int, req *request.RoomRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, id int) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Room number is unique
	existingRoom, err := s.repo.Room.FindByRoomNumber(ctx, req.RoomNumber)
	if err != nil {
		s.log.Error("Failed to check room number", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("check room number: %w", err)
	}
	if existingRoom != nil {
		return nil, fmt.Errorf("room number %s already exists", req.RoomNumber)
	}

	room := &entity.Room{
		RoomNumber:  req.RoomNumber,
		Capacity:    req.Capacity,
		Status:      entity.RoomStatus(req.Status),
		Description: req.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		// Concurrent creation can slip past the pre-check
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("room number %s already exists", req.RoomNumber)
		}
		s.log.Error("Failed to create room", zap.Error(err), zap.String("room_number", req.RoomNumber))
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.Int("room_id", room.ID),
		zap.String("room_number", room.RoomNumber),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetAll(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get all rooms", zap.Error(err))
		return nil, fmt.Errorf("get all rooms: %w", err)
	}

	out := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, response.RoomToResponse(room))
	}

	return out, nil
}

func (s *roomService) GetByID(ctx context.Context, id int) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", id)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// Update overwrites all room fields.
func (s *roomService) Update(ctx context.Context, id int, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %d not found", id)
	}

	room.RoomNumber = req.RoomNumber
	room.Capacity = req.Capacity
	room.Status = entity.RoomStatus(req.Status)
	room.Description = req.Description

	if err := s.repo.Room.Update(ctx, room); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("room number %s already exists", req.RoomNumber)
		}
		s.log.Error("Failed to update room", zap.Error(err), zap.Int("room_id", id))
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.Int("room_id", id))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// Delete removes a room unless non-cancelled bookings still reference it.
func (s *roomService) Delete(ctx context.Context, id int) error {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %d not found", id)
	}

	activeBookings, err := s.repo.Booking.CountActiveByRoomID(ctx, id)
	if err != nil {
		s.log.Error("Failed to count active bookings", zap.Error(err), zap.Int("room_id", id))
		return fmt.Errorf("count active bookings: %w", err)
	}
	if activeBookings > 0 {
		return fmt.Errorf("room %d is referenced by active bookings", id)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		// The store restricts deletion while bookings reference the room
		if repository.IsForeignKeyViolation(err) {
			return fmt.Errorf("room %d is referenced by active bookings", id)
		}
		s.log.Error("Failed to delete room", zap.Error(err), zap.Int("room_id", id))
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.Int("room_id", id))
	return nil
}
