package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"autoquotes/internal/models"
)

type requestRepository struct {
	db *sqlx.DB
}

func NewRequestRepository(db *sqlx.DB) RequestRepository {
	return &requestRepository{db: db}
}

// Create сохраняет запрос вместе с фотографиями в одной транзакции:
// запрос без своих фото не должен быть виден читателям.
func (r *requestRepository) Create(ctx context.Context, req *models.Request, photoPaths []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO requests (client_id, brand, model, year, description, part_type, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err = tx.GetContext(ctx, &req.ID, query,
		req.ClientID, req.Brand, req.Model, req.Year,
		req.Description, req.PartType, req.Status,
		req.CreatedAt, req.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("ошибка при создании запроса: %w", err)
	}

	for _, path := range photoPaths {
		photo := models.RequestPhoto{
			RequestID: req.ID,
			FilePath:  path,
			CreatedAt: req.CreatedAt,
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO request_photos (request_id, file_path, created_at) VALUES ($1, $2, $3)`,
			photo.RequestID, photo.FilePath, photo.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении фото запроса: %w", err)
		}

		req.Photos = append(req.Photos, photo)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, requestID int64) (*models.Request, error) {
	var req models.Request

	query := `SELECT * FROM requests WHERE id = $1`

	err := r.db.GetContext(ctx, &req, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении запроса: %w", err)
	}

	photosQuery := `SELECT * FROM request_photos WHERE request_id = $1 ORDER BY id`

	err = r.db.SelectContext(ctx, &req.Photos, photosQuery, requestID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении фото запроса: %w", err)
	}

	return &req, nil
}

// GetDetail возвращает запрос со всеми предложениями и контактами продавцов
func (r *requestRepository) GetDetail(ctx context.Context, requestID int64) (*models.RequestDetail, error) {
	req, err := r.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT o.*,
			COALESCE(u.first_name, 'Seller') AS seller_name,
			u.telegram_id AS seller_telegram_id,
			u.username AS seller_username,
			u.phone_number AS seller_phone
		FROM offers o
		JOIN users u ON u.id = o.seller_id
		WHERE o.request_id = $1
		ORDER BY o.created_at
	`

	detail := models.RequestDetail{Request: *req}
	err = r.db.SelectContext(ctx, &detail.Offers, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении предложений запроса: %w", err)
	}

	return &detail, nil
}

func (r *requestRepository) ListActiveByClient(ctx context.Context, clientID int64) ([]models.RequestSummary, error) {
	query := `
		SELECT r.id, r.brand, r.model, r.year, r.description, r.created_at,
			COUNT(o.id) AS offer_count
		FROM requests r
		LEFT JOIN offers o ON o.request_id = r.id
		WHERE r.client_id = $1 AND r.status = 'active'
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`

	var items []models.RequestSummary
	err := r.db.SelectContext(ctx, &items, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении запросов клиента: %w", err)
	}

	return items, nil
}

// ListOpenForSeller - активные запросы по брендам продавца, на которые он
// еще не ответил
func (r *requestRepository) ListOpenForSeller(ctx context.Context, sellerID int64) ([]*models.Request, error) {
	query := `
		SELECT r.* FROM requests r
		WHERE r.status = 'active'
			AND r.brand IN (SELECT brand FROM seller_brands WHERE seller_id = $1)
			AND NOT EXISTS (
				SELECT 1 FROM offers o
				WHERE o.request_id = r.id AND o.seller_id = $1
			)
		ORDER BY r.created_at DESC
	`

	var requests []*models.Request
	err := r.db.SelectContext(ctx, &requests, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении открытых запросов: %w", err)
	}

	return requests, nil
}

// Close переводит active -> closed только для владельца.
// Закрытие уже закрытого запроса - не ошибка, просто "ничего не сделал".
func (r *requestRepository) Close(ctx context.Context, requestID, clientID int64) (bool, error) {
	query := `
		UPDATE requests SET status = 'closed'
		WHERE id = $1 AND client_id = $2 AND status = 'active'
	`

	result, err := r.db.ExecContext(ctx, query, requestID, clientID)
	if err != nil {
		return false, fmt.Errorf("ошибка при закрытии запроса: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	return rowsAffected > 0, nil
}

// ExpireStale переводит все просроченные активные запросы в expired.
// Идемпотентен: повторный запуск без новых просрочек вернет 0.
func (r *requestRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE requests SET status = 'expired'
		WHERE status = 'active' AND expires_at < $1
	`

	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("ошибка при истечении запросов: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	return rowsAffected, nil
}
