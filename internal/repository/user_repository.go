package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"autoquotes/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// UpsertIdentity создает пользователя при первом контакте и обновляет
// отображаемые поля при повторном. Всегда успешен.
func (r *userRepository) UpsertIdentity(ctx context.Context, telegramID int64, firstName, username string) (*models.User, error) {
	query := `
		INSERT INTO users (telegram_id, first_name, username)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (telegram_id) DO UPDATE SET
			first_name = COALESCE(NULLIF($2, ''), users.first_name),
			username = COALESCE(NULLIF($3, ''), users.username)
		RETURNING *
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, telegramID, firstName, username)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE telegram_id = $1`

	err := r.db.GetContext(ctx, &user, query, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	return &user, nil
}

// SetRole - одноразовое назначение, повторное назначение ничего не меняет
func (r *userRepository) SetRole(ctx context.Context, userID int64, role models.Role) error {
	query := `UPDATE users SET role = $1 WHERE id = $2 AND role IS NULL`

	_, err := r.db.ExecContext(ctx, query, role, userID)
	if err != nil {
		return fmt.Errorf("ошибка при назначении роли: %w", err)
	}

	return nil
}

func (r *userRepository) SetLanguage(ctx context.Context, userID int64, lang models.Language) error {
	query := `UPDATE users SET language = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, lang, userID)
	if err != nil {
		return fmt.Errorf("ошибка при смене языка: %w", err)
	}

	return nil
}

func (r *userRepository) SetPhone(ctx context.Context, userID int64, phone string) error {
	query := `UPDATE users SET phone_number = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, phone, userID)
	if err != nil {
		return fmt.Errorf("ошибка при сохранении телефона: %w", err)
	}

	return nil
}

// ReplaceBrands атомарно заменяет весь набор брендов продавца:
// удаление и вставка в одной транзакции, частичного обновления не бывает.
func (r *userRepository) ReplaceBrands(ctx context.Context, sellerID int64, brands []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM seller_brands WHERE seller_id = $1`, sellerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении брендов: %w", err)
	}

	for _, brand := range brands {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO seller_brands (seller_id, brand) VALUES ($1, $2)`,
			sellerID, brand,
		)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении бренда %s: %w", brand, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *userRepository) GetBrands(ctx context.Context, sellerID int64) ([]string, error) {
	query := `SELECT brand FROM seller_brands WHERE seller_id = $1 ORDER BY brand`

	var brands []string
	err := r.db.SelectContext(ctx, &brands, query, sellerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении брендов: %w", err)
	}

	return brands, nil
}

// FindSellersByBrand возвращает продавцов, обслуживающих бренд.
// Порядок не гарантируется, множественная семантика.
func (r *userRepository) FindSellersByBrand(ctx context.Context, brand string) ([]*models.User, error) {
	query := `
		SELECT u.* FROM users u
		JOIN seller_brands sb ON sb.seller_id = u.id
		WHERE sb.brand = $1
	`

	var sellers []*models.User
	err := r.db.SelectContext(ctx, &sellers, query, brand)
	if err != nil {
		return nil, fmt.Errorf("ошибка при поиске продавцов: %w", err)
	}

	return sellers, nil
}
