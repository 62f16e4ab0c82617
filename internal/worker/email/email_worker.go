package email

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/tourism-portal/internal/domain"
	"github.com/tourism-portal/internal/domain/repository"
	"github.com/tourism-portal/internal/worker"
)

const (
	maxBatchSize       = 10
	defaultReadTimeout = 5 * time.Second
	errorPause         = time.Second
)

// Результаты обработки письма
const (
	resultSent      = "sent"
	resultRetried   = "retried"
	resultFailed    = "failed"
	resultMalformed = "malformed"
)

var deliveries = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "portal_email_deliveries_total",
	Help: "Email outbox deliveries by kind and result",
}, []string{"kind", "result"})

// OutboxWorker читает stream:email:outbox и отправляет письма через Mailer.
// Неудачная отправка публикуется повторно с увеличенным Attempt, пока не
// исчерпан лимит попыток.
type OutboxWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	mailer       repository.Mailer
	consumerName string
	maxRetries   int
	readTimeout  time.Duration
	now          func() time.Time
}

// NewOutboxWorker создает новый OutboxWorker
func NewOutboxWorker(
	streamRepo repository.StreamRepository,
	mailer repository.Mailer,
	consumerGroup string,
	maxRetries int,
	readTimeout time.Duration,
	logger *zap.Logger,
) *OutboxWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}

	return &OutboxWorker{
		BaseWorker:   worker.NewBaseWorker("email-outbox", consumerGroup, logger),
		streamRepo:   streamRepo,
		mailer:       mailer,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:   maxRetries,
		readTimeout:  readTimeout,
		now:          time.Now,
	}
}

// Start запускает воркер
func (w *OutboxWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting OutboxWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_retries", w.maxRetries))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamEmailOutbox, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.ProcessBatch(ctx); err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			w.Pause(ctx, errorPause)
		}
	}
}

// ProcessBatch читает и обрабатывает пачку писем. Возвращает число прочитанных сообщений.
func (w *OutboxWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamEmailOutbox,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
		w.readTimeout,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	for _, msg := range messages {
		w.handle(ctx, msg)
	}
	return len(messages), nil
}

func (w *OutboxWorker) handle(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger().With(zap.String("message_id", msg.ID))

	var event domain.EmailOutboxEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || !event.Message.HasBody() || event.Message.To == "" {
		logger.Warn("Malformed outbox message, dropping", zap.Error(err))
		deliveries.WithLabelValues(string(event.Kind), resultMalformed).Inc()
		w.ack(ctx, msg.ID)
		return
	}

	logger = logger.With(
		zap.String("kind", string(event.Kind)),
		zap.Int("attempt", event.Attempt),
	)

	sendErr := w.mailer.Send(ctx, event.Message)
	if sendErr == nil {
		deliveries.WithLabelValues(string(event.Kind), resultSent).Inc()
		logger.Info("Email delivered")
		w.ack(ctx, msg.ID)
		return
	}

	if event.Attempt+1 >= w.maxRetries {
		deliveries.WithLabelValues(string(event.Kind), resultFailed).Inc()
		logger.Error("Email delivery failed, retries exhausted", zap.Error(sendErr))
		w.ack(ctx, msg.ID)
		return
	}

	retry := event
	retry.Attempt++
	retry.LastError = sendErr.Error()
	retry.EnqueuedAt = w.now().UTC()
	if err := w.streamRepo.PublishToStream(ctx, domain.StreamEmailOutbox, &retry); err != nil {
		// Без ack сообщение остаётся в pending группы
		logger.Error("Failed to republish email for retry", zap.Error(err))
		return
	}

	deliveries.WithLabelValues(string(event.Kind), resultRetried).Inc()
	logger.Warn("Email delivery failed, scheduled retry", zap.Error(sendErr))
	w.ack(ctx, msg.ID)
}

func (w *OutboxWorker) ack(ctx context.Context, id string) {
	if err := w.streamRepo.AckMessage(ctx, domain.StreamEmailOutbox, w.ConsumerGroup(), id); err != nil {
		w.Logger().Error("Failed to ack message", zap.String("message_id", id), zap.Error(err))
	}
}
