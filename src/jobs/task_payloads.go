package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeSeedRecords = "records:seed"

// SeedPayload - Seed = 0 คือสุ่ม
type SeedPayload struct {
	StudentsPerClass int    `json:"students_per_class"`
	Seed             uint64 `json:"seed,omitempty"`
}

func NewSeedTask(payload SeedPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeSeedRecords, b), nil
}
