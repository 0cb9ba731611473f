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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// Confirm flips a pending payment to success. The WHERE clause carries
	// the pending status so a payment is never confirmed twice.
	Confirm(ctx context.Context, id uuid.UUID) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, booking_id, renter_name, amount, status,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.BookingID,
		payment.RenterName,
		payment.Amount,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("booking_id", payment.BookingID.String()),
		)
		return fmt.Errorf("create payment for booking %s: %w", payment.BookingID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, booking_id, renter_name, amount, status, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.RenterName,
		&payment.Amount,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `
		SELECT id, booking_id, renter_name, amount, status, created_at, updated_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find payments", zap.Error(err))
		return nil, fmt.Errorf("find payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.RenterName,
			&payment.Amount,
			&payment.Status,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate payment rows", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, id, entity.PaymentStatusSuccess, entity.PaymentStatusPending)
	if err != nil {
		r.log.Error("Failed to confirm payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("confirm payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s is not pending, cannot confirm", id.String())
	}

	return nil
}
