package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSweeper_Run(t *testing.T) {
	t.Run("Срабатывает по расписанию и останавливается по контексту", func(t *testing.T) {
		requestRepo := new(MockRequestRepository)

		swept := make(chan struct{}, 10)
		requestRepo.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { swept <- struct{}{} }).
			Return(int64(1), nil)

		svc := NewRequestService(requestRepo, new(MockUserRepository), 48*time.Hour, nil)
		sweeper := NewSweeper(svc, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan struct{})
		go func() {
			sweeper.Run(ctx)
			close(done)
		}()

		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("очистка не запустилась")
		}

		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("цикл не остановился по отмене контекста")
		}
	})

	t.Run("Ошибка хранилища не прерывает расписание", func(t *testing.T) {
		requestRepo := new(MockRequestRepository)

		calls := make(chan struct{}, 10)
		requestRepo.On("ExpireStale", mock.Anything, mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) { calls <- struct{}{} }).
			Return(int64(0), assert.AnError)

		svc := NewRequestService(requestRepo, new(MockUserRepository), 48*time.Hour, nil)
		sweeper := NewSweeper(svc, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go sweeper.Run(ctx)

		for i := 0; i < 2; i++ {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("очистка перестала запускаться после ошибки")
			}
		}
	})
}
