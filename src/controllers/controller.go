package controllers

import (
	"Backend-NMIT-Records/src/config"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/utils"

	"github.com/hibiken/asynq"
)

// Controller รวม dependency ที่ handler ทุกตัวต้องใช้
type Controller struct {
	Store     *database.Store
	Config    *config.Config
	Blacklist *utils.TokenBlacklist
	Asynq     *asynq.Client // nil ถ้าไม่มี Redis
}

func New(store *database.Store, cfg *config.Config, blacklist *utils.TokenBlacklist, asynqClient *asynq.Client) *Controller {
	return &Controller{
		Store:     store,
		Config:    cfg,
		Blacklist: blacklist,
		Asynq:     asynqClient,
	}
}
