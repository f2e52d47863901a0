package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"consolidador/internal/domain/entities"
)

const defaultPollInterval = 15 * time.Second

// pollOrders runs list immediately and then every interval on its own
// goroutine. The returned stop function cancels the loop and waits for it to
// exit; calling it more than once is safe.
func pollOrders(
	ctx context.Context,
	interval time.Duration,
	list func(ctx context.Context) ([]entities.Order, error),
	onSnapshot func([]entities.Order),
	onError func(error),
) func() {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			orders, err := list(ctx)
			switch {
			case ctx.Err() != nil:
				return
			case err != nil:
				log.Printf("[remote][subscription] poll failed err=%v", err)
				if onError != nil {
					onError(err)
				}
			default:
				onSnapshot(orders)
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}
