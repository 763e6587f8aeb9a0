package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/students"
	"Backend-NMIT-Records/src/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateStudent godoc
// @Summary Create student
// @Description Create a student. role defaults to "Student", electives to [], cgpa to 0.
// @Tags students
// @Accept json
// @Produce json
// @Param student body models.CreateStudentInput true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /student [post]
func (ctl *Controller) CreateStudent(c *fiber.Ctx) error {
	var input models.CreateStudentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.WriteError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid input format")
	}

	student, err := students.CreateStudent(c.UserContext(), ctl.Store, input)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(student)
}

// GetAllStudents godoc
// @Summary List all students
// @Tags students
// @Produce json
// @Success 200 {array} models.Student
// @Router /student/all [get]
func (ctl *Controller) GetAllStudents(c *fiber.Ctx) error {
	list, err := students.FindAllStudents(c.UserContext(), ctl.Store)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(list)
}

// GetStudentByID godoc
// @Summary Get student with class and branch
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /student/{id} [get]
func (ctl *Controller) GetStudentByID(c *fiber.Ctx) error {
	return ctl.respondDetail(c, students.FindStudentByID)
}

// GetStudentByIDNoPhone godoc
// @Summary Get student without phone
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /student/{id}/no-phone [get]
func (ctl *Controller) GetStudentByIDNoPhone(c *fiber.Ctx) error {
	return ctl.respondDetail(c, students.FindStudentByIDNoPhone)
}

// GetStudentByIDNoPhoneLean godoc
// @Summary Get student without phone (lean projection)
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.StudentDetail
// @Failure 404 {object} models.ErrorResponse
// @Router /student/{id}/no-phone-lean [get]
func (ctl *Controller) GetStudentByIDNoPhoneLean(c *fiber.Ctx) error {
	return ctl.respondDetail(c, students.FindStudentByIDNoPhoneLean)
}

type detailFinder func(ctx context.Context, store *database.Store, id string) (*models.StudentDetail, error)

func (ctl *Controller) respondDetail(c *fiber.Ctx, find detailFinder) error {
	student, err := find(c.UserContext(), ctl.Store, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	if student == nil {
		return utils.WriteError(c, http.StatusNotFound, "NOT_FOUND", "Student not found")
	}
	return c.JSON(student)
}

// DeleteStudent godoc
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /student/{id} [delete]
func (ctl *Controller) DeleteStudent(c *fiber.Ctx) error {
	deleted, err := students.DeleteStudentByID(c.UserContext(), ctl.Store, c.Params("id"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	if deleted == nil {
		return utils.WriteError(c, http.StatusNotFound, "NOT_FOUND", "Student not found")
	}
	return c.JSON(deleted)
}

// GetStudentsPaginated godoc
// @Summary List students page by page
// @Tags students
// @Produce json
// @Param page query int false "Page (1-indexed)" default(1)
// @Param pageSize query int false "Page size" default(10)
// @Success 200 {object} models.PaginatedStudents
// @Failure 400 {object} models.ErrorResponse
// @Router /students [get]
func (ctl *Controller) GetStudentsPaginated(c *fiber.Ctx) error {
	params := models.DefaultPagination()

	var err error
	if params.Page, err = intQuery(c, "page", params.Page); err != nil {
		return utils.HandleError(c, err)
	}
	if params.PageSize, err = intQuery(c, "pageSize", params.PageSize); err != nil {
		return utils.HandleError(c, err)
	}

	result, err := students.FindAllStudentsPaginated(c.UserContext(), ctl.Store, params.Page, params.PageSize)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(result)
}

// GetStudentsByClass godoc
// @Summary Students of a class (class populated)
// @Tags students
// @Produce json
// @Param classId path string true "Class ID"
// @Success 200 {array} models.StudentWithClass
// @Router /students/class/{classId} [get]
func (ctl *Controller) GetStudentsByClass(c *fiber.Ctx) error {
	list, err := students.FindStudentsByClass(c.UserContext(), ctl.Store, c.Params("classId"))
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(list)
}

// SearchStudents godoc
// @Summary Search students by age and electives
// @Tags students
// @Produce json
// @Param ageLt query int false "age < ageLt"
// @Param ageGt query int false "age > ageGt"
// @Param ageOutside query bool false "match age < ageLt OR age > ageGt"
// @Param electives query string false "comma separated, any of"
// @Param excludeElectives query string false "comma separated, none of"
// @Success 200 {array} models.Student
// @Failure 400 {object} models.ErrorResponse
// @Router /students/search [get]
func (ctl *Controller) SearchStudents(c *fiber.Ctx) error {
	q, err := parseStudentQuery(c)
	if err != nil {
		return utils.HandleError(c, err)
	}

	list, err := students.FindStudents(c.UserContext(), ctl.Store, q)
	if err != nil {
		return utils.HandleError(c, err)
	}
	return c.JSON(list)
}

func parseStudentQuery(c *fiber.Ctx) (models.StudentQuery, error) {
	var q models.StudentQuery
	for _, p := range []struct {
		key string
		dst **int
	}{{"ageLt", &q.AgeLt}, {"ageGt", &q.AgeGt}} {
		raw := c.Query(p.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, apperrors.NewValidationError("%s must be an integer", p.key)
		}
		*p.dst = &n
	}

	if raw := c.Query("ageOutside"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return q, apperrors.NewValidationError("ageOutside must be a boolean")
		}
		q.AgeOutside = b
	}

	q.Electives = cleanList(c.Query("electives"))
	q.ExcludeElectives = cleanList(c.Query("excludeElectives"))
	return q, nil
}

func cleanList(raw string) []string {
	var result []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}

func intQuery(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidationError("%s must be an integer", key)
	}
	return n, nil
}
