package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	kafka "github.com/segmentio/kafka-go"

	"github.com/slms-platform/erp-server-go-authz/internal/domain/model"
	"github.com/slms-platform/erp-server-go-authz/internal/infra/config"
)

// messageWriter は Kafka Writer の抽象インターフェース。
// テスト時にモックへ差し替え可能にする。
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...writerMessage) error
	Close() error
}

// writerMessage は Kafka に送信するメッセージを表す。
type writerMessage struct {
	Topic string
	Key   []byte
	Value []byte
}

// kafkaGoWriter は kafka-go の Writer をラップする本番実装。
type kafkaGoWriter struct {
	w *kafka.Writer
}

func (k *kafkaGoWriter) WriteMessages(ctx context.Context, msgs ...writerMessage) error {
	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		kafkaMsgs[i] = kafka.Message{
			Topic: m.Topic,
			Key:   m.Key,
			Value: m.Value,
		}
	}
	return k.w.WriteMessages(ctx, kafkaMsgs...)
}

func (k *kafkaGoWriter) Close() error {
	return k.w.Close()
}

// DenialEventProducer はアクセス拒否イベントを監査シンクトピックに転送する。
// イベントの永続化・集計は監査サービス側の責務。
type DenialEventProducer struct {
	writer messageWriter
	topic  string
}

// NewDenialEventProducer は新しい DenialEventProducer を作成する。
func NewDenialEventProducer(cfg config.KafkaConfig) *DenialEventProducer {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{}, // プリンシパル単位でパーティションを安定させる
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &DenialEventProducer{
		writer: &kafkaGoWriter{w: w},
		topic:  cfg.Topic,
	}
}

// Publish は拒否イベントを配信する。
// 呼び出し側（ガード）は失敗をログに留め、拒否レスポンス自体は停止させないこと。
func (p *DenialEventProducer) Publish(ctx context.Context, event *model.DenialEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize denial event: %w", err)
	}

	msg := writerMessage{
		Topic: p.topic,
		Key:   []byte(event.PrincipalID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish denial event: %w", err)
	}

	return nil
}

// Close はプロデューサーを閉じる。
func (p *DenialEventProducer) Close() error {
	return p.writer.Close()
}
