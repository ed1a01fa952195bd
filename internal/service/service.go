package service

import (
	"context"
	"log"

	"autoquotes/internal/config"
	"autoquotes/internal/models"
	"autoquotes/internal/repository"
	"autoquotes/internal/storage"
)

type Service struct {
	User    UserService
	Request RequestService
	Offer   OfferService
	Notify  NotificationService
}

// NewService собирает сервисы и связывает события создания запроса и
// предложения с диспетчером уведомлений. Рассылка идет после фиксации
// транзакции, ее сбой не откатывает бизнес-операцию.
func NewService(repo *repository.Repository, cfg *config.Config, st storage.Storage) *Service {
	notify := NewNotificationService(repo.User, st)

	onRequestCreated := func(ctx context.Context, req *models.Request) {
		if _, err := notify.NotifyNewRequest(ctx, req); err != nil {
			log.Printf("Ошибка рассылки по запросу #%d: %v", req.ID, err)
		}
	}

	onOfferCreated := func(ctx context.Context, offer *models.Offer, req *models.Request) {
		if err := notify.NotifyNewOffer(ctx, offer, req); err != nil {
			log.Printf("Ошибка уведомления о предложении #%d: %v", offer.ID, err)
		}
	}

	return &Service{
		User:    NewUserService(repo.User),
		Request: NewRequestService(repo.Request, repo.User, cfg.RequestTTL, onRequestCreated),
		Offer:   NewOfferService(repo.Offer, repo.Request, repo.User, onOfferCreated),
		Notify:  notify,
	}
}
