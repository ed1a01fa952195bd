package service

import (
	"context"
	"log"
	"time"
)

// Sweeper - периодическая фоновая задача: переводит просроченные активные
// запросы в expired. Сбой одного запуска не прерывает расписание.
type Sweeper struct {
	requests RequestService
	interval time.Duration
}

func NewSweeper(requests RequestService, interval time.Duration) *Sweeper {
	return &Sweeper{
		requests: requests,
		interval: interval,
	}
}

// Run блокирует до отмены контекста
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Паника при истечении запросов: %v", r)
		}
	}()

	count, err := s.requests.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Ошибка при истечении запросов: %v", err)
		return
	}

	if count > 0 {
		log.Printf("Истекло запросов: %d", count)
	}
}
