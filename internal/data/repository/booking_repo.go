package repository

import (
	"context"
	"fmt"
	"strings"

	"stayease/internal/data/entity"
	"stayease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingListItem is a booking joined with the display fields the list view
// needs (renter name, room type name).
type BookingListItem struct {
	entity.Booking
	RenterName   string
	RoomTypeName string
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAllDetailed(ctx context.Context, search string, userID *uuid.UUID, limit, offset int) ([]*BookingListItem, error)
	CountAllDetailed(ctx context.Context, search string, userID *uuid.UUID) (int64, error)

	// UpdateStatus moves a booking from one status to another. The WHERE
	// clause carries the expected current status so a concurrent transition
	// cannot be silently overwritten.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus, notes *string) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference_id, user_id, room_id, room_count,
		                     check_in_date, check_out_date, notes, total_price, status,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.ReferenceID,
		booking.UserID,
		booking.RoomID,
		booking.RoomCount,
		booking.CheckInDate,
		booking.CheckOutDate,
		booking.Notes,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference_id", booking.ReferenceID),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ReferenceID, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, reference_id, user_id, room_id, room_count,
		       check_in_date, check_out_date, notes, total_price, status,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.ReferenceID,
		&booking.UserID,
		&booking.RoomID,
		&booking.RoomCount,
		&booking.CheckInDate,
		&booking.CheckOutDate,
		&booking.Notes,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAllDetailed(ctx context.Context, search string, userID *uuid.UUID, limit, offset int) ([]*BookingListItem, error) {
	// Build query with optional owner and search filters
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT b.id, b.reference_id, b.user_id, b.room_id, b.room_count,
		       b.check_in_date, b.check_out_date, b.notes, b.total_price, b.status,
		       b.created_at, b.updated_at, u.name, r.type_name
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN rooms r ON r.id = b.room_id
		WHERE 1=1
	`)

	args := []any{}
	argCount := 0

	if userID != nil {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND b.user_id = $%d", argCount))
		args = append(args, *userID)
	}

	if search != "" {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND (u.name ILIKE $%d OR r.type_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+search+"%")
	}

	argCount++
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY b.created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.String("search", search),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	var items []*BookingListItem
	for rows.Next() {
		var item BookingListItem
		err := rows.Scan(
			&item.ID,
			&item.ReferenceID,
			&item.UserID,
			&item.RoomID,
			&item.RoomCount,
			&item.CheckInDate,
			&item.CheckOutDate,
			&item.Notes,
			&item.TotalPrice,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.RenterName,
			&item.RoomTypeName,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return items, nil
}

func (r *bookingRepository) CountAllDetailed(ctx context.Context, search string, userID *uuid.UUID) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT COUNT(*)
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN rooms r ON r.id = b.room_id
		WHERE 1=1
	`)

	args := []any{}
	argCount := 0

	if userID != nil {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND b.user_id = $%d", argCount))
		args = append(args, *userID)
	}

	if search != "" {
		argCount++
		queryBuilder.WriteString(fmt.Sprintf(" AND (u.name ILIKE $%d OR r.type_name ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return total, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, from, to entity.BookingStatus, notes *string) error {
	var err error
	var affected int64

	if notes != nil {
		query := `UPDATE bookings SET status = $3, notes = $4, updated_at = NOW() WHERE id = $1 AND status = $2`
		result, execErr := r.db.Exec(ctx, query, bookingID, from, to, *notes)
		err = execErr
		if execErr == nil {
			affected = result.RowsAffected()
		}
	} else {
		query := `UPDATE bookings SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`
		result, execErr := r.db.Exec(ctx, query, bookingID, from, to)
		err = execErr
		if execErr == nil {
			affected = result.RowsAffected()
		}
	}

	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(to), err)
	}

	if affected == 0 {
		return fmt.Errorf("booking %s is no longer %s, cannot move to %s", bookingID.String(), string(from), string(to))
	}

	return nil
}
