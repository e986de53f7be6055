package bootstrap

import (
	"intelliforms_backend/config"
	"intelliforms_backend/pkg/logging"
	"intelliforms_backend/platform/queue"
	"intelliforms_backend/platform/redis"
	"intelliforms_backend/platform/storage"
)

// Infrastructure holds the external clients, constructed once at process
// start and passed by reference to the services.
type Infrastructure struct {
	Redis   *redis.Service
	Storage *storage.Service
	Queue   queue.MessageQueue
}

func NewInfrastructure(cfg *config.Config) (*Infrastructure, error) {
	infra := &Infrastructure{}

	// redis services
	redisService, err := redis.InitRedis(cfg)
	if err != nil {
		logging.Logger.Error("fail Initializing Redis", "error", err)
		return nil, err
	}
	infra.Redis = redisService

	// storage services
	storageService, err := storage.InitStorageService(cfg)
	if err != nil {
		logging.Logger.Error("fail Initializing Bucket", "error", err)
		return nil, err
	}
	infra.Storage = storageService

	// message queue
	queueService := queue.NewMessageService(redisService)
	infra.Queue = queueService

	return infra, nil
}

func (infra *Infrastructure) Shutdown() error {
	if err := infra.Redis.Rdb.Close(); err != nil {
		logging.Logger.Error("fail closing redis", "error", err)
		return err
	}
	return nil
}
