package bot

import (
	"sync"

	"autoquotes/internal/models"
)

// step - шаг короткоживущего диалогового автомата, привязанного к чату:
// регистрация и многошаговый ответ продавца. Состояние живет только в
// памяти; на сохраненные данные влияет лишь финальная фиксация.
type step int

const (
	stepNone step = iota

	// регистрация: язык -> контакт -> роль -> бренды (продавец)
	stepRegLanguage
	stepRegContact
	stepRegRole
	stepRegBrands

	// ответ продавца: цена -> валюта -> наличие -> комментарий
	stepOfferPrice
	stepOfferCurrency
	stepOfferAvailability
	stepOfferComment

	// настройки: пересбор набора брендов
	stepSettingsBrands
)

// session - частичные данные текущего шага
type session struct {
	Step      step
	Language  models.Language
	FirstName string

	// выбор брендов
	SelectedBrands map[string]bool

	// черновик предложения
	RequestID    int64
	Price        int64
	Currency     models.Currency
	Availability models.Availability
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

// Get возвращает сессию чата, создавая пустую при необходимости
func (s *sessionStore) Get(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		sess = &session{}
		s.sessions[chatID] = sess
	}
	return sess
}

func (s *sessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}
