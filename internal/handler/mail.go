package handler

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/zivo-app/business-hours/backend/internal/domain"
)

// AMQPMailPublisher 将邮件消息投递到邮件队列，由 mail worker 负责发送
type AMQPMailPublisher struct {
	channel *amqp.Channel
	queue   string
}

func NewAMQPMailPublisher(ch *amqp.Channel, queue string) *AMQPMailPublisher {
	return &AMQPMailPublisher{
		channel: ch,
		queue:   queue,
	}
}

func (p *AMQPMailPublisher) Publish(ctx context.Context, msg domain.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		"",
		p.queue,
		true,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
