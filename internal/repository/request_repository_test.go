package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autoquotes/internal/models"
)

func TestRequestRepository_Create(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewRequestRepository(sqlxDB)

	ctx := context.Background()

	insertQuery := `
		INSERT INTO requests (client_id, brand, model, year, description, part_type, status, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	photoQuery := `INSERT INTO request_photos (request_id, file_path, created_at) VALUES ($1, $2, $3)`

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	req := &models.Request{
		ClientID:    3,
		Brand:       "Chevrolet",
		Model:       "Cobalt",
		Year:        2021,
		Description: "Передний бампер",
		PartType:    models.PartTypeOriginal,
		Status:      models.StatusActive,
		CreatedAt:   createdAt,
		ExpiresAt:   createdAt.Add(48 * time.Hour),
	}

	t.Run("Запрос и фото в одной транзакции", func(t *testing.T) {
		photos := []string{"requests/a/1.jpg", "requests/a/2.jpg"}

		mock.ExpectBegin()
		mock.ExpectQuery(insertQuery).
			WithArgs(
				req.ClientID, req.Brand, req.Model, req.Year,
				req.Description, req.PartType, req.Status,
				req.CreatedAt, req.ExpiresAt,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
		mock.ExpectExec(photoQuery).
			WithArgs(int64(42), photos[0], createdAt).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(photoQuery).
			WithArgs(int64(42), photos[1], createdAt).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		err := repo.Create(ctx, req, photos)

		require.NoError(t, err)
		assert.Equal(t, int64(42), req.ID)
		assert.Len(t, req.Photos, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Откат при ошибке сохранения фото", func(t *testing.T) {
		req2 := *req
		req2.ID = 0
		req2.Photos = nil

		mock.ExpectBegin()
		mock.ExpectQuery(insertQuery).
			WithArgs(
				req2.ClientID, req2.Brand, req2.Model, req2.Year,
				req2.Description, req2.PartType, req2.Status,
				req2.CreatedAt, req2.ExpiresAt,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(43)))
		mock.ExpectExec(photoQuery).
			WithArgs(int64(43), "requests/b/1.jpg", createdAt).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		err := repo.Create(ctx, &req2, []string{"requests/b/1.jpg"})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRequestRepository_Close(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewRequestRepository(sqlxDB)

	ctx := context.Background()

	query := `
		UPDATE requests SET status = 'closed'
		WHERE id = $1 AND client_id = $2 AND status = 'active'
	`

	t.Run("Владелец закрывает активный запрос", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(42), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		closed, err := repo.Close(ctx, 42, 3)

		assert.NoError(t, err)
		assert.True(t, closed)
	})

	t.Run("Чужой или неактивный запрос не трогается", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(int64(42), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		closed, err := repo.Close(ctx, 42, 99)

		assert.NoError(t, err)
		assert.False(t, closed)
	})
}

func TestRequestRepository_ExpireStale(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewRequestRepository(sqlxDB)

	ctx := context.Background()
	now := time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC)

	query := `
		UPDATE requests SET status = 'expired'
		WHERE status = 'active' AND expires_at < $1
	`

	t.Run("Просроченные запросы переводятся в expired", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(now).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.ExpireStale(ctx, now)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("Повторный запуск без просрочек возвращает ноль", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(now).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.ExpireStale(ctx, now)

		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestRequestRepository_ListActiveByClient(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewRequestRepository(sqlxDB)

	query := `
		SELECT r.id, r.brand, r.model, r.year, r.description, r.created_at,
			COUNT(o.id) AS offer_count
		FROM requests r
		LEFT JOIN offers o ON o.request_id = r.id
		WHERE r.client_id = $1 AND r.status = 'active'
		GROUP BY r.id
		ORDER BY r.created_at DESC
	`

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "brand", "model", "year", "description", "created_at", "offer_count"}).
		AddRow(int64(2), "Chevrolet", "Cobalt", 2021, "Бампер", createdAt.Add(time.Hour), 2).
		AddRow(int64(1), "Daewoo", "Nexia", 2015, "Фара", createdAt, 0)

	mock.ExpectQuery(query).WithArgs(int64(3)).WillReturnRows(rows)

	items, err := repo.ListActiveByClient(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].OfferCount)
	assert.Equal(t, "Daewoo", items[1].Brand)
}
