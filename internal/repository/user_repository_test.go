package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoquotes/internal/models"
)

func TestUserRepository_UpsertIdentity(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	query := `
		INSERT INTO users (telegram_id, first_name, username)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (telegram_id) DO UPDATE SET
			first_name = COALESCE(NULLIF($2, ''), users.first_name),
			username = COALESCE(NULLIF($3, ''), users.username)
		RETURNING *
	`

	rows := sqlmock.NewRows([]string{"id", "telegram_id", "first_name", "username", "phone_number", "role", "language"}).
		AddRow(int64(1), int64(123456), "Аброр", "abror", nil, nil, "ru")

	mock.ExpectQuery(query).
		WithArgs(int64(123456), "Аброр", "abror").
		WillReturnRows(rows)

	user, err := repo.UpsertIdentity(context.Background(), 123456, "Аброр", "abror")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.False(t, user.Role.Valid)
	assert.Equal(t, models.LanguageRU, user.Language)
}

func TestUserRepository_GetByTelegramID(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	query := `SELECT * FROM users WHERE telegram_id = $1`

	t.Run("Неизвестный пользователь", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(777)).WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByTelegramID(context.Background(), 777)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestUserRepository_SetRole(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	query := `UPDATE users SET role = $1 WHERE id = $2 AND role IS NULL`

	// повторное назначение не меняет строку, но и не является ошибкой
	mock.ExpectExec(query).
		WithArgs(models.RoleSeller, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetRole(context.Background(), 1, models.RoleSeller)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ReplaceBrands(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	ctx := context.Background()

	deleteQuery := `DELETE FROM seller_brands WHERE seller_id = $1`
	insertQuery := `INSERT INTO seller_brands (seller_id, brand) VALUES ($1, $2)`

	t.Run("Полная замена набора", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertQuery).
			WithArgs(int64(5), "Chevrolet").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertQuery).
			WithArgs(int64(5), "Toyota").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := repo.ReplaceBrands(ctx, 5, []string{"Chevrolet", "Toyota"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Откат при ошибке вставки", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(insertQuery).
			WithArgs(int64(5), "Chevrolet").
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.ReplaceBrands(ctx, 5, []string{"Chevrolet"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindSellersByBrand(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	query := `
		SELECT u.* FROM users u
		JOIN seller_brands sb ON sb.seller_id = u.id
		WHERE sb.brand = $1
	`

	rows := sqlmock.NewRows([]string{"id", "telegram_id", "first_name", "username", "phone_number", "role", "language"}).
		AddRow(int64(5), int64(111), "Аброр", "abror", "+998901234567", "seller", "uz").
		AddRow(int64(6), int64(222), "Бекзод", nil, nil, "seller", "ru")

	mock.ExpectQuery(query).WithArgs("Chevrolet").WillReturnRows(rows)

	sellers, err := repo.FindSellersByBrand(context.Background(), "Chevrolet")

	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.True(t, sellers[0].IsSeller())
	assert.Equal(t, models.LanguageUZ, sellers[0].Language)
}
