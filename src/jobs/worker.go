package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/seeder"

	"github.com/hibiken/asynq"
)

// Handler ผูก task handler เข้ากับ Store
type Handler struct {
	Store *database.Store
}

// HandleSeedTask - รัน seeder จาก payload
func (h *Handler) HandleSeedTask(ctx context.Context, t *asynq.Task) error {
	logger.L().Info("🎯 Start seed task")

	var payload SeedPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		logger.L().Error("❌ Payload decode error", "error", err)
		// payload เสีย retry ไปก็ไม่หาย
		return fmt.Errorf("decode seed payload: %v: %w", err, asynq.SkipRetry)
	}

	res, err := seeder.Seed(ctx, h.Store, seeder.NewGenerator(payload.Seed), payload.StudentsPerClass)
	if err != nil {
		logger.L().Error("❌ Seed task failed", "error", err)
		return err
	}

	logger.L().Info("✅ Seed task done", "branches", res.Branches, "classes", res.Classes, "students", res.Students)
	return nil
}

// NewServeMux ลงทะเบียน handler ทุกตัว
func NewServeMux(store *database.Store) *asynq.ServeMux {
	h := &Handler{Store: store}
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSeedRecords, h.HandleSeedTask)
	return mux
}

// RunWorker รัน asynq server จนกว่า ctx จะถูกยกเลิก
func RunWorker(ctx context.Context, opt asynq.RedisClientOpt, store *database.Store) error {
	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 2,
		Queues:      map[string]int{"default": 1},
		Logger:      workerLogger{},
	})
	if err := srv.Start(NewServeMux(store)); err != nil {
		return err
	}
	logger.L().Info("🚀 Asynq worker started")

	<-ctx.Done()
	srv.Shutdown()
	logger.L().Info("Asynq worker stopped")
	return nil
}

// workerLogger ส่ง log ของ asynq เข้า zap
type workerLogger struct{}

func (workerLogger) Debug(args ...interface{}) { logger.L().SugaredLogger.Debug(args...) }
func (workerLogger) Info(args ...interface{})  { logger.L().SugaredLogger.Info(args...) }
func (workerLogger) Warn(args ...interface{})  { logger.L().SugaredLogger.Warn(args...) }
func (workerLogger) Error(args ...interface{}) { logger.L().SugaredLogger.Error(args...) }
func (workerLogger) Fatal(args ...interface{}) { logger.L().SugaredLogger.Fatal(args...) }
