package repository

import (
	"context"
	"fmt"

	"stayease/internal/data/entity"
	"stayease/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, type_name, description, price_per_night, bed_type,
		                  has_ac, has_fan, total_rooms, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.TypeName,
		room.Description,
		room.PricePerNight,
		room.BedType,
		room.HasAC,
		room.HasFan,
		room.TotalRooms,
		room.ImageURL,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("type_name", room.TypeName),
		)
		return fmt.Errorf("create room %s: %w", room.TypeName, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, type_name, description, price_per_night, bed_type,
		       has_ac, has_fan, total_rooms, image_url, created_at, updated_at, deleted_at
		FROM rooms
		WHERE id = $1 AND deleted_at IS NULL
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.TypeName,
		&room.Description,
		&room.PricePerNight,
		&room.BedType,
		&room.HasAC,
		&room.HasFan,
		&room.TotalRooms,
		&room.ImageURL,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, type_name, description, price_per_night, bed_type,
		       has_ac, has_fan, total_rooms, image_url, created_at, updated_at, deleted_at
		FROM rooms
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.TypeName,
			&room.Description,
			&room.PricePerNight,
			&room.BedType,
			&room.HasAC,
			&room.HasFan,
			&room.TotalRooms,
			&room.ImageURL,
			&room.CreatedAt,
			&room.UpdatedAt,
			&room.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate room rows", zap.Error(err))
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET type_name = $2, description = $3, price_per_night = $4, bed_type = $5,
		    has_ac = $6, has_fan = $7, total_rooms = $8, image_url = $9, updated_at = $10
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.TypeName,
		room.Description,
		room.PricePerNight,
		room.BedType,
		room.HasAC,
		room.HasFan,
		room.TotalRooms,
		room.ImageURL,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE rooms SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}
