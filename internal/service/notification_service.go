package service

import (
	"context"
	"log"
	"strconv"

	"autoquotes/internal/locales"
	"autoquotes/internal/models"
	"autoquotes/internal/repository"
	"autoquotes/internal/storage"
)

// Messenger - транспорт доставки сообщений (чат-бот). Ядро формирует
// локализованный текст, транспорт отвечает за клавиатуры и отправку.
type Messenger interface {
	SendText(chatID int64, text string) error
	SendRequestNotification(chatID int64, text string, requestID int64, lang models.Language) error
	SendOfferNotification(chatID int64, text string, offerID int64, lang models.Language) error
	SendPhotoAlbum(chatID int64, urls []string) error
}

type NotificationService interface {
	// Bind подключает транспорт; до подключения доставка пропускается
	Bind(m Messenger)
	NotifyNewRequest(ctx context.Context, req *models.Request) (int, error)
	NotifyNewOffer(ctx context.Context, offer *models.Offer, req *models.Request) error
}

type notificationService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	msg      Messenger
}

func NewNotificationService(userRepo repository.UserRepository, st storage.Storage) NotificationService {
	return &notificationService{
		userRepo: userRepo,
		storage:  st,
	}
}

func (n *notificationService) Bind(m Messenger) {
	n.msg = m
}

func requestArgs(req *models.Request, lang models.Language) locales.Args {
	return locales.Args{
		"request_id":  strconv.FormatInt(req.ID, 10),
		"brand":       req.Brand,
		"model":       req.Model,
		"year":        strconv.Itoa(req.Year),
		"description": req.Description,
		"part_type":   locales.PartTypeLabel(req.PartType, lang),
	}
}

// NotifyNewRequest рассылает уведомления подходящим продавцам и
// подтверждение клиенту. Доставка каждому получателю независима:
// сбой одной не блокирует остальные и не влияет на сам запрос.
// Возвращает число успешных доставок продавцам.
func (n *notificationService) NotifyNewRequest(ctx context.Context, req *models.Request) (int, error) {
	if n.msg == nil {
		log.Println("Транспорт уведомлений не подключен, рассылка пропущена")
		return 0, nil
	}

	sellers, err := n.userRepo.FindSellersByBrand(ctx, req.Brand)
	if err != nil {
		return 0, err
	}

	// подтверждение клиенту: вариант зависит только от пустоты множества
	client, err := n.userRepo.GetByID(ctx, req.ClientID)
	if err == nil {
		key := "request_created"
		if len(sellers) == 0 {
			key = "request_created_no_sellers"
		}

		text := locales.T(key, client.Language, requestArgs(req, client.Language))
		if sendErr := n.msg.SendText(client.TelegramID, text); sendErr != nil {
			log.Printf("Не удалось отправить подтверждение клиенту %d: %v", client.TelegramID, sendErr)
		}
	} else {
		log.Printf("Не удалось получить клиента запроса #%d: %v", req.ID, err)
	}

	// подписанные ссылки на фото считаем один раз на рассылку
	var photoURLs []string
	for _, photo := range req.Photos {
		u, urlErr := n.storage.PhotoURL(ctx, photo.FilePath)
		if urlErr != nil {
			log.Printf("Не удалось получить ссылку на фото %s: %v", photo.FilePath, urlErr)
			continue
		}
		photoURLs = append(photoURLs, u)
	}

	notified := 0
	for _, seller := range sellers {
		text := locales.T("new_request_notification", seller.Language, requestArgs(req, seller.Language))

		if len(photoURLs) > 0 {
			if sendErr := n.msg.SendPhotoAlbum(seller.TelegramID, photoURLs); sendErr != nil {
				log.Printf("Не удалось отправить фото продавцу %d: %v", seller.TelegramID, sendErr)
			}
		}

		if sendErr := n.msg.SendRequestNotification(seller.TelegramID, text, req.ID, seller.Language); sendErr != nil {
			log.Printf("Не удалось уведомить продавца %d: %v", seller.TelegramID, sendErr)
			continue
		}

		notified++
	}

	return notified, nil
}

// NotifyNewOffer - единичная доставка клиенту запроса, best-effort
func (n *notificationService) NotifyNewOffer(ctx context.Context, offer *models.Offer, req *models.Request) error {
	if n.msg == nil {
		log.Println("Транспорт уведомлений не подключен, рассылка пропущена")
		return nil
	}

	client, err := n.userRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		return err
	}

	seller, err := n.userRepo.GetByID(ctx, offer.SellerID)
	if err != nil {
		return err
	}

	lang := client.Language
	commentLine := ""
	if offer.Comment.Valid && offer.Comment.String != "" {
		commentLine = "💬 " + offer.Comment.String
	}

	args := requestArgs(req, lang)
	args["seller_name"] = seller.DisplayName()
	args["price"] = locales.FormatPrice(offer.Price)
	args["currency"] = locales.CurrencyLabel(offer.Currency, lang)
	args["availability"] = locales.AvailabilityLabel(offer.Availability, lang)
	args["comment_line"] = commentLine

	text := locales.T("new_offer", lang, args)

	if err := n.msg.SendOfferNotification(client.TelegramID, text, offer.ID, lang); err != nil {
		log.Printf("Не удалось уведомить клиента %d о предложении: %v", client.TelegramID, err)
	}

	return nil
}
