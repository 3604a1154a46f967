package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/babylonlabs-io/nft-staking-engine/internal/config"
	"github.com/babylonlabs-io/nft-staking-engine/internal/types"
)

// PublisherInterface is what the ledger service publishes observability
// events through. Publishing is fire-and-forget from the ledger's point of
// view: a failed publish never fails the ledger operation.
type PublisherInterface interface {
	PushStakedEvent(ctx context.Context, ev *types.StakedEvent) error
	PushUnstakedEvent(ctx context.Context, ev *types.UnstakedEvent) error
	PushRewardRateChangedEvent(ctx context.Context, ev *types.RewardRateChangedEvent) error
	Shutdown()
}

type QueueManager struct {
	cfg     *config.QueueConfig
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

func NewQueueManager(cfg *config.QueueConfig, logger *zap.Logger) (*QueueManager, error) {
	amqpURI := fmt.Sprintf("amqp://%s:%s@%s", cfg.QueueUser, cfg.QueuePassword, cfg.Url)

	conn, err := amqp.Dial(amqpURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	return &QueueManager{
		cfg:     cfg,
		conn:    conn,
		channel: channel,
		logger:  logger.With(zap.String("module", "queue")),
	}, nil
}

func (qm *QueueManager) PushStakedEvent(ctx context.Context, ev *types.StakedEvent) error {
	return qm.publish(ctx, types.EventAssetStaked, ev)
}

func (qm *QueueManager) PushUnstakedEvent(ctx context.Context, ev *types.UnstakedEvent) error {
	return qm.publish(ctx, types.EventAssetUnstaked, ev)
}

func (qm *QueueManager) PushRewardRateChangedEvent(ctx context.Context, ev *types.RewardRateChangedEvent) error {
	return qm.publish(ctx, types.EventRewardRateChanged, ev)
}

func (qm *QueueManager) publish(ctx context.Context, eventType types.EventTypes, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", eventType, err)
	}

	ctx, cancel := context.WithTimeout(ctx, qm.cfg.PublishTimeout)
	defer cancel()

	err = qm.channel.PublishWithContext(
		ctx,
		qm.cfg.Exchange,
		eventType.String(), // routing key
		false,              // mandatory
		false,              // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.New().String(),
			Timestamp:    time.Now(),
			Type:         eventType.String(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	qm.logger.Debug("published event", zap.String("event_type", eventType.String()))
	return nil
}

// Shutdown gracefully stops the interaction with the queue, ensuring all resources are properly released.
func (qm *QueueManager) Shutdown() {
	qm.logger.Info("shutting down queue manager")

	if err := qm.channel.Close(); err != nil {
		qm.logger.Error("failed to close rabbitmq channel", zap.Error(err))
	}
	if err := qm.conn.Close(); err != nil {
		qm.logger.Error("failed to close rabbitmq connection", zap.Error(err))
	}
}
