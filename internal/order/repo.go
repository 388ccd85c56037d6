package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, o *Order) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderColumns = `id, display_id, customer_name, customer_gender, customer_phone, items,
    total_amount::text, payment_status, needs_delivery, delivery_address, delivery_time,
    pickup_date_time, notes, order_status, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = r.db.Exec(ctx, `
    INSERT INTO orders (id, display_id, customer_name, customer_gender, customer_phone, items,
      total_amount, payment_status, needs_delivery, delivery_address, delivery_time,
      pickup_date_time, notes, order_status, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7::numeric,$8,$9,$10,$11,$12,$13,$14,$15,$15)
  `, o.ID, o.DisplayID, o.CustomerName, o.CustomerGender, o.CustomerPhone, items,
		o.TotalAmount.String(), string(o.PaymentStatus), o.NeedsDelivery, o.DeliveryAddress,
		timePtr(o.DeliveryTime), timePtr(o.PickupDateTime), o.Notes, string(o.OrderStatus), o.CreatedAt)
	if err != nil {
		return err
	}
	o.UpdatedAt = o.CreatedAt
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List is a full scan, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// Update overwrites every mutable column. Concurrent edits are last-write-wins.
func (r *PGRepo) Update(ctx context.Context, o *Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET customer_name = $2, customer_gender = $3, customer_phone = $4, items = $5,
        total_amount = $6::numeric, payment_status = $7, needs_delivery = $8,
        delivery_address = $9, delivery_time = $10, pickup_date_time = $11,
        notes = $12, order_status = $13, updated_at = NOW()
    WHERE id = $1
  `, o.ID, o.CustomerName, o.CustomerGender, o.CustomerPhone, items,
		o.TotalAmount.String(), string(o.PaymentStatus), o.NeedsDelivery,
		o.DeliveryAddress, timePtr(o.DeliveryTime), timePtr(o.PickupDateTime),
		o.Notes, string(o.OrderStatus))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET order_status = $2, updated_at = NOW()
    WHERE id = $1
  `, id, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o                    Order
		items                []byte
		total                string
		payment, status      string
		deliveryAt, pickupAt *time.Time
	)
	if err := row.Scan(&o.ID, &o.DisplayID, &o.CustomerName, &o.CustomerGender, &o.CustomerPhone,
		&items, &total, &payment, &o.NeedsDelivery, &o.DeliveryAddress, &deliveryAt,
		&pickupAt, &o.Notes, &status, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("order %s: decode items: %w", o.ID, err)
	}
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("order %s: bad total %q: %w", o.ID, total, err)
	}
	o.TotalAmount = amount
	o.PaymentStatus = PaymentStatus(payment)
	o.OrderStatus = Status(status)
	o.DeliveryTime = instantPtr(deliveryAt)
	o.PickupDateTime = instantPtr(pickupAt)
	return &o, nil
}
