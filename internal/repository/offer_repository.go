package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"autoquotes/internal/models"
)

type offerRepository struct {
	db *sqlx.DB
}

func NewOfferRepository(db *sqlx.DB) OfferRepository {
	return &offerRepository{db: db}
}

// Create вставляет предложение атомарно: проверка существования и вставка
// в одной транзакции. Последнее слово за UNIQUE (request_id, seller_id) -
// проверка лишь быстрый отказ, ограничение - корректность.
func (r *offerRepository) Create(ctx context.Context, offer *models.Offer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM offers WHERE request_id = $1 AND seller_id = $2)`,
		offer.RequestID, offer.SellerID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при проверке предложения: %w", err)
	}

	if exists {
		return ErrDuplicateOffer
	}

	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO offers (request_id, seller_id, price, currency, availability, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = tx.GetContext(ctx, &offer.ID, query,
		offer.RequestID, offer.SellerID, offer.Price,
		offer.Currency, offer.Availability, offer.Comment, offer.CreatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrDuplicateOffer
		}
		return fmt.Errorf("ошибка при создании предложения: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return ErrDuplicateOffer
		}
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *offerRepository) GetWithSeller(ctx context.Context, offerID int64) (*models.OfferWithSeller, error) {
	query := `
		SELECT o.*,
			COALESCE(u.first_name, 'Seller') AS seller_name,
			u.telegram_id AS seller_telegram_id,
			u.username AS seller_username,
			u.phone_number AS seller_phone
		FROM offers o
		JOIN users u ON u.id = o.seller_id
		WHERE o.id = $1
	`

	var offer models.OfferWithSeller
	err := r.db.GetContext(ctx, &offer, query, offerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении предложения: %w", err)
	}

	return &offer, nil
}

func (r *offerRepository) CountByRequest(ctx context.Context, requestID int64) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM offers WHERE request_id = $1`

	err := r.db.GetContext(ctx, &count, query, requestID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте предложений: %w", err)
	}

	return count, nil
}

func (r *offerRepository) Exists(ctx context.Context, requestID, sellerID int64) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM offers WHERE request_id = $1 AND seller_id = $2)`

	err := r.db.GetContext(ctx, &exists, query, requestID, sellerID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке предложения: %w", err)
	}

	return exists, nil
}
