package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"autoquotes/internal/config"
)

// Storage - коллаборатор хранения фото: принимает бинарные файлы,
// возвращает стабильные ссылки-пути. Ядро хранит только ссылки.
type Storage interface {
	UploadPhoto(ctx context.Context, requestRef string, fileName string, file io.Reader, size int64) (string, error)
	PhotoURL(ctx context.Context, objectName string) (string, error)
	DeletePhoto(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании клиента MinIO: %w", err)
	}

	m := &MinIOClient{client: client, cfg: cfg}

	if err := m.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.cfg.MinIO.BucketName)
	if err != nil {
		return fmt.Errorf("ошибка при проверке бакета: %w", err)
	}

	if !exists {
		err = m.client.MakeBucket(ctx, m.cfg.MinIO.BucketName, minio.MakeBucketOptions{
			Region: m.cfg.MinIO.Region,
		})
		if err != nil {
			return fmt.Errorf("ошибка при создании бакета: %w", err)
		}
	}

	return nil
}

// UploadPhoto загружает одно фото и возвращает имя объекта
func (m *MinIOClient) UploadPhoto(ctx context.Context, requestRef string, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectName := fmt.Sprintf("requests/%s/%d/%02d/%s%s",
		requestRef,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}

// PhotoURL возвращает временную подписанную ссылку на объект
func (m *MinIOClient) PhotoURL(ctx context.Context, objectName string) (string, error) {
	presigned, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName, objectName,
		m.cfg.MinIO.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка при получении ссылки на фото: %w", err)
	}

	return presigned.String(), nil
}

func (m *MinIOClient) DeletePhoto(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.cfg.MinIO.BucketName, objectName,
		minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
