package controllers

import (
	"encoding/json"
	"net/http"

	"Backend-NMIT-Records/src/jobs"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// SeedRequest body ของ endpoint seed (ทุก field optional)
type SeedRequest struct {
	StudentsPerClass *int   `json:"studentsPerClass"`
	Seed             uint64 `json:"seed"`
}

func (ctl *Controller) seedPayload(c *fiber.Ctx) (jobs.SeedPayload, error) {
	payload := jobs.SeedPayload{StudentsPerClass: ctl.Config.Seed.StudentsPerClass}
	if len(c.Body()) == 0 {
		return payload, nil
	}

	var req SeedRequest
	if err := c.BodyParser(&req); err != nil {
		return payload, err
	}
	if req.StudentsPerClass != nil {
		payload.StudentsPerClass = *req.StudentsPerClass
	}
	payload.Seed = req.Seed
	return payload, nil
}

// EnqueueSeed godoc
// @Summary      Enqueue seed job
// @Description  Enqueue a records:seed task for the asynq worker. Requires Redis.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SeedRequest  false  "Seed options"
// @Success      202  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /admin/jobs/seed [post]
func (ctl *Controller) EnqueueSeed(c *fiber.Ctx) error {
	payload, err := ctl.seedPayload(c)
	if err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	if ctl.Asynq == nil {
		return utils.WriteError(c, http.StatusServiceUnavailable, "BACKEND_UNAVAILABLE", "asynq client not initialized")
	}

	task, err := jobs.NewSeedTask(payload)
	if err != nil {
		return utils.HandleError(c, err)
	}

	info, err := ctl.Asynq.EnqueueContext(c.UserContext(), task, asynq.TaskID("seed-"+uuid.NewString()), asynq.MaxRetry(1))
	if err != nil {
		return utils.HandleError(c, err)
	}

	return c.Status(http.StatusAccepted).JSON(fiber.Map{
		"status":           "enqueued",
		"taskId":           info.ID,
		"studentsPerClass": payload.StudentsPerClass,
	})
}

// RunSeedNow godoc
// @Summary      Run seed in-process
// @Description  Run the seed handler synchronously. Does not require Redis.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      SeedRequest  false  "Seed options"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /admin/jobs/seed/run-now [post]
func (ctl *Controller) RunSeedNow(c *fiber.Ctx) error {
	payload, err := ctl.seedPayload(c)
	if err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	b, _ := json.Marshal(payload)
	t := asynq.NewTask(jobs.TypeSeedRecords, b)

	// เรียก handler ตรง ๆ แบบเดียวกับ worker
	h := &jobs.Handler{Store: ctl.Store}
	if err := h.HandleSeedTask(c.UserContext(), t); err != nil {
		return utils.HandleError(c, err)
	}

	return c.JSON(fiber.Map{"status": "executed", "studentsPerClass": payload.StudentsPerClass})
}
