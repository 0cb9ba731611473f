package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"stayease/internal/data/entity"
	"stayease/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. They mirror the storage semantics the SQL
// layer provides: soft deletes, the status guard on booking updates, and
// the joined list view.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email && user.DeletedAt == nil {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var users []*entity.User
	for _, user := range f.users {
		if user.DeletedAt == nil {
			copied := *user
			users = append(users, &copied)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if offset >= len(users) {
		return nil, nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end], nil
}

func (f *fakeUserRepo) CountAll(ctx context.Context) (int64, error) {
	var count int64
	for _, user := range f.users {
		if user.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	existing, ok := f.users[user.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("user %s not found", user.ID.String())
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	user, ok := f.users[id]
	if !ok || user.DeletedAt != nil {
		return fmt.Errorf("user %s not found", id.String())
	}
	now := time.Now()
	user.DeletedAt = &now
	return nil
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	copied := *session
	f.sessions[session.Token] = &copied
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return nil, nil
	}
	session, ok := f.sessions[parsed]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	parsed, err := uuid.Parse(token)
	if err != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	session, ok := f.sessions[parsed]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session not found or already revoked")
	}
	now := time.Now()
	session.RevokedAt = &now
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(ctx context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID && session.RevokedAt == nil {
			session.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) error {
	return nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, ok := f.rooms[id]
	if !ok || room.DeletedAt != nil {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for _, room := range f.rooms {
		if room.DeletedAt == nil {
			copied := *room
			rooms = append(rooms, &copied)
		}
	}
	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].CreatedAt.After(rooms[j].CreatedAt)
	})
	return rooms, nil
}

func (f *fakeRoomRepo) Update(ctx context.Context, room *entity.Room) error {
	existing, ok := f.rooms[room.ID]
	if !ok || existing.DeletedAt != nil {
		return fmt.Errorf("room %s not found", room.ID.String())
	}
	copied := *room
	f.rooms[room.ID] = &copied
	return nil
}

func (f *fakeRoomRepo) Delete(ctx context.Context, id uuid.UUID) error {
	room, ok := f.rooms[id]
	if !ok || room.DeletedAt != nil {
		return fmt.Errorf("room %s not found", id.String())
	}
	now := time.Now()
	room.DeletedAt = &now
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking
	order    []uuid.UUID
	users    *fakeUserRepo
	rooms    *fakeRoomRepo
}

func newFakeBookingRepo(users *fakeUserRepo, rooms *fakeRoomRepo) *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*entity.Booking),
		users:    users,
		rooms:    rooms,
	}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	copied := *booking
	f.bookings[booking.ID] = &copied
	f.order = append(f.order, booking.ID)
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) matches(booking *entity.Booking, search string, userID *uuid.UUID) bool {
	if userID != nil && booking.UserID != *userID {
		return false
	}
	if search == "" {
		return true
	}

	needle := strings.ToLower(search)
	if user, ok := f.users.users[booking.UserID]; ok {
		if strings.Contains(strings.ToLower(user.Name), needle) {
			return true
		}
	}
	if room, ok := f.rooms.rooms[booking.RoomID]; ok {
		if strings.Contains(strings.ToLower(room.TypeName), needle) {
			return true
		}
	}
	return false
}

func (f *fakeBookingRepo) FindAllDetailed(ctx context.Context, search string, userID *uuid.UUID, limit, offset int) ([]*repository.BookingListItem, error) {
	var items []*repository.BookingListItem
	for _, id := range f.order {
		booking := f.bookings[id]
		if !f.matches(booking, search, userID) {
			continue
		}

		item := &repository.BookingListItem{Booking: *booking}
		if user, ok := f.users.users[booking.UserID]; ok {
			item.RenterName = user.Name
		}
		if room, ok := f.rooms.rooms[booking.RoomID]; ok {
			item.RoomTypeName = room.TypeName
		}
		items = append(items, item)
	}

	if offset >= len(items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}

func (f *fakeBookingRepo) CountAllDetailed(ctx context.Context, search string, userID *uuid.UUID) (int64, error) {
	var count int64
	for _, booking := range f.bookings {
		if f.matches(booking, search, userID) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus, notes *string) error {
	booking, ok := f.bookings[bookingID]
	if !ok || booking.Status != from {
		return fmt.Errorf("booking %s is no longer %s, cannot move to %s", bookingID.String(), string(from), string(to))
	}

	booking.Status = to
	if notes != nil {
		booking.Notes = *notes
	}
	booking.UpdatedAt = time.Now()
	return nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
	order    []uuid.UUID
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	copied := *payment
	f.payments[payment.ID] = &copied
	f.order = append(f.order, payment.ID)
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	payment, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	copied := *payment
	return &copied, nil
}

func (f *fakePaymentRepo) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for _, id := range f.order {
		copied := *f.payments[id]
		payments = append(payments, &copied)
	}
	return payments, nil
}

func (f *fakePaymentRepo) Confirm(ctx context.Context, id uuid.UUID) error {
	payment, ok := f.payments[id]
	if !ok || payment.Status != entity.PaymentStatusPending {
		return fmt.Errorf("payment %s is not pending, cannot confirm", id.String())
	}
	payment.Status = entity.PaymentStatusSuccess
	payment.UpdatedAt = time.Now()
	return nil
}

// fixture bundles the fakes behind the repository struct the services take.
type fixture struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	rooms    *fakeRoomRepo
	bookings *fakeBookingRepo
	payments *fakePaymentRepo
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	rooms := newFakeRoomRepo()
	bookings := newFakeBookingRepo(users, rooms)
	payments := newFakePaymentRepo()

	return &fixture{
		repo: &repository.Repository{
			User:    users,
			Session: sessions,
			Room:    rooms,
			Booking: bookings,
			Payment: payments,
		},
		users:    users,
		sessions: sessions,
		rooms:    rooms,
		bookings: bookings,
		payments: payments,
	}
}

func (f *fixture) seedUser(name, email string, role entity.UserRole) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         name,
		Email:        email,
		PasswordHash: "hashed",
		Role:         role,
	}
	f.users.users[user.ID] = user
	return user
}

func (f *fixture) seedRoom(typeName string, pricePerNight int64, totalRooms int) *entity.Room {
	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		TypeName:      typeName,
		PricePerNight: pricePerNight,
		BedType:       entity.BedTypeQueen,
		HasAC:         true,
		TotalRooms:    totalRooms,
	}
	f.rooms.rooms[room.ID] = room
	return room
}
