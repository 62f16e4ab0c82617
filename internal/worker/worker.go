package worker

import "context"

// Worker - фоновый обработчик. Start блокируется до остановки или отмены ctx.
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
