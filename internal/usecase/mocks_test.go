package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"room-booking/internal/data/entity"
	"room-booking/internal/data/repository"

	"github.com/google/uuid"
)

// ---------- In-memory repositories ----------

type memUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("create user %s: duplicate email", user.Email)
		}
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var all []*entity.User
	for _, u := range m.users {
		cp := *u
		all = append(all, &cp)
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (m *memUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type memRoomRepo struct {
	nextID int
	rooms  map[int]*entity.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{nextID: 1, rooms: make(map[int]*entity.Room)}
}

func (m *memRoomRepo) Create(_ context.Context, room *entity.Room) error {
	room.ID = m.nextID
	m.nextID++
	cp := *room
	m.rooms[room.ID] = &cp
	return nil
}

func (m *memRoomRepo) FindByID(_ context.Context, id int) (*entity.Room, error) {
	r, ok := m.rooms[id]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRoomRepo) FindByRoomNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	for _, r := range m.rooms {
		if r.RoomNumber == roomNumber {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	var all []*entity.Room
	for id := 1; id < m.nextID; id++ {
		if r, ok := m.rooms[id]; ok {
			cp := *r
			all = append(all, &cp)
		}
	}
	return all, nil
}

func (m *memRoomRepo) Update(_ context.Context, room *entity.Room) error {
	if _, ok := m.rooms[room.ID]; !ok {
		return fmt.Errorf("room %d not found", room.ID)
	}
	cp := *room
	m.rooms[room.ID] = &cp
	return nil
}

func (m *memRoomRepo) Delete(_ context.Context, id int) error {
	if _, ok := m.rooms[id]; !ok {
		return fmt.Errorf("room %d not found", id)
	}
	delete(m.rooms, id)
	return nil
}

type memBookingRepo struct {
	order    []uuid.UUID
	bookings map[uuid.UUID]*entity.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (m *memBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	cp := *booking
	m.bookings[booking.ID] = &cp
	m.order = append(m.order, booking.ID)
	return nil
}

func (m *memBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBookingRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, id := range m.order {
		if b := m.bookings[id]; b.CustomerID == customerID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, id := range m.order {
		cp := *m.bookings[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memBookingRepo) Update(_ context.Context, booking *entity.Booking) error {
	if _, ok := m.bookings[booking.ID]; !ok {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}
	cp := *booking
	m.bookings[booking.ID] = &cp
	return nil
}

func (m *memBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return fmt.Errorf("booking %s not found", id.String())
	}
	b.Status = status
	return nil
}

func (m *memBookingRepo) CountActiveByRoomID(_ context.Context, roomID int) (int64, error) {
	var count int64
	for _, b := range m.bookings {
		if b.RoomID == roomID && b.Status != entity.BookingStatusCancelled {
			count++
		}
	}
	return count, nil
}

func newMemRepository() *repository.Repository {
	return &repository.Repository{
		User:    newMemUserRepo(),
		Room:    newMemRoomRepo(),
		Booking: newMemBookingRepo(),
	}
}
