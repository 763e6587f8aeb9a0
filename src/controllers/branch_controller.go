package controllers

import (
	"net/http"

	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/branches"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateBranch godoc
// @Summary Create branch
// @Description Create a branch (department). Names are unique.
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body models.CreateBranchInput true "Branch"
// @Success 201 {object} models.Branch
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /branch [post]
func (ctl *Controller) CreateBranch(c *fiber.Ctx) error {
	var input models.CreateBranchInput
	if err := c.BodyParser(&input); err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	branch, err := branches.CreateBranch(c.UserContext(), ctl.Store, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(branch)
}

// ListBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Success 200 {array} models.Branch
// @Failure 503 {object} models.ErrorResponse
// @Router /branches [get]
func (ctl *Controller) ListBranches(c *fiber.Ctx) error {
	list, err := branches.ListBranches(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(list)
}
