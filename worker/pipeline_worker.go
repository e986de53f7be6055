package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"intelliforms_backend/models"
	"intelliforms_backend/pkg/logging"
	"intelliforms_backend/services"
)

const popTimeout = 5 * time.Second

// Start consumes queued upload tasks until ctx is cancelled. Errors are
// terminal per message and logged only; redelivery is whatever the transport
// does, which this worker does not configure.
func Start(ctx context.Context, mq services.MessageQueue, pipeline *services.PipelineService, topic string) {
	logging.Logger.Info("pipeline worker started", "topic", topic)
	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("pipeline worker shutting down")
			return
		default:
		}

		payload, err := mq.PopFromQueue(ctx, topic, popTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				continue
			}
			logging.Logger.Error("fail PopFromQueue", "error", err)
			time.Sleep(time.Second)
			continue
		}
		if payload == "" {
			continue
		}

		var task models.UploadTask
		if err := json.Unmarshal([]byte(payload), &task); err != nil {
			logging.Logger.Error("fail decoding queue message", "error", err, "payload", payload)
			continue
		}

		if err := pipeline.Process(ctx, task); err != nil {
			logging.Logger.Error("processing aborted", "message_id", task.MessageID, "error", err)
		}
	}
}
