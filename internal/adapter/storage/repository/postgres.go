package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MikeRez0/ypbookstore/internal/adapter/storage"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var orderColumns = []string{
	"id", "reference", "user_id", "sub_total", "shipping_cost", "total",
	"address", "phone_number", "payment_method", "payment_status", "created_at", "updated_at",
}

type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		orderSt := r.db.QueryBuilder.Insert("orders").
			Columns("reference", "user_id", "sub_total", "shipping_cost", "total",
				"address", "phone_number", "payment_method", "payment_status").
			Values(order.Reference, order.UserID, order.SubTotal, order.ShippingCost, order.Total,
				order.Address, order.PhoneNumber, order.PaymentMethod, order.PaymentStatus).
			Suffix("returning id, created_at, updated_at")

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		var id int64
		err = tx.QueryRow(ctx, sql, args...).Scan(&id, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return err
		}

		itemsSt := r.db.QueryBuilder.Insert("order_items").
			Columns("order_id", "position", "book_id", "quantity")
		for i, item := range order.Items {
			itemsSt = itemsSt.Values(id, i, item.BookID, item.Quantity)
		}

		sql, args, err = itemsSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}

	return order, nil
}

func (r *Repository) ReadOrderByReference(ctx context.Context, ref domain.OrderReference) (*domain.Order, error) {
	orders, err := r.selectOrders(ctx, sq.Eq{"reference": ref})
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrDataNotFound
	}
	return orders[0], nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID uint64) ([]*domain.Order, error) {
	return r.selectOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) TransitionPaymentStatus(ctx context.Context,
	ref domain.OrderReference, to domain.PaymentStatus) error {
	if !to.IsTerminal() {
		return fmt.Errorf("transition to %s: %w", to, domain.ErrBadRequest)
	}

	statement := r.db.QueryBuilder.Update("orders").
		Set("payment_status", to).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"reference": ref, "payment_status": domain.PaymentStatusPending})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// nothing was updated: either the order is missing or no longer pending
	existsSt := r.db.QueryBuilder.Select("1").From("orders").Where(sq.Eq{"reference": ref})
	sql, args, err = existsSt.ToSql()
	if err != nil {
		return err
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrDataNotFound
		}
		return fmt.Errorf("check order existence: %w", err)
	}
	return domain.ErrPaymentAlreadyUpdated
}

func (r *Repository) selectOrders(ctx context.Context, where sq.Sqlizer) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(where).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	byID := make(map[int64]*domain.Order)
	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		order := domain.Order{}
		err := rows.Scan(
			&id,
			&order.Reference,
			&order.UserID,
			&order.SubTotal,
			&order.ShippingCost,
			&order.Total,
			&order.Address,
			&order.PhoneNumber,
			&order.PaymentMethod,
			&order.PaymentStatus,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		list = append(list, &order)
		byID[id] = &order
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return list, nil
	}

	err = r.attachItems(ctx, ids, byID)
	if err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) attachItems(ctx context.Context, ids []int64, byID map[int64]*domain.Order) error {
	statement := r.db.QueryBuilder.
		Select("order_id", "book_id", "quantity").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position")

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int64
		item := domain.OrderItem{}
		err := rows.Scan(&orderID, &item.BookID, &item.Quantity)
		if err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, item)
		}
	}

	return rows.Err()
}
