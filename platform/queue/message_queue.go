package queue

import (
	"context"
	"time"
)

// MessageQueue is the redis-backed work queue between notifier and worker.
type MessageQueue interface {
	PushToQueue(queueName string, value interface{}) error
	PopFromQueue(ctx context.Context, queueName string, timeout time.Duration) (string, error)
}

type MessageQueueService struct {
	MQ MessageQueue
}

func NewMessageService(mq MessageQueue) MessageQueue {
	return &MessageQueueService{MQ: mq}
}

func (mq *MessageQueueService) PushToQueue(queueName string, value interface{}) error {
	return mq.MQ.PushToQueue(queueName, value)
}

func (mq *MessageQueueService) PopFromQueue(ctx context.Context, queueName string, timeout time.Duration) (string, error) {
	return mq.MQ.PopFromQueue(ctx, queueName, timeout)
}
