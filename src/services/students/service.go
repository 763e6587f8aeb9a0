package students

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/branches"
	"Backend-NMIT-Records/src/services/classes"
	"Backend-NMIT-Records/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

var byIDAsc = bson.D{{Key: "_id", Value: 1}}

// CreateStudent - สร้างนักศึกษาใหม่ ค่า default: role=Student, electives=[], cgpa=0
func CreateStudent(ctx context.Context, store *database.Store, input models.CreateStudentInput) (*models.Student, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Phone = strings.TrimSpace(input.Phone)
	input.ClassID = strings.TrimSpace(input.ClassID)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:        primitive.NewObjectID(),
		Name:      input.Name,
		Age:       *input.Age,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      models.RoleStudent,
		Electives: []string{},
	}
	if r := strings.TrimSpace(input.Role); r != "" {
		student.Role = r
	}
	if input.Electives != nil {
		student.Electives = input.Electives
	}
	if input.CGPA != nil {
		student.CGPA = *input.CGPA
	}
	if input.ClassID != "" {
		classID, err := primitive.ObjectIDFromHex(input.ClassID)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid class ID")
		}
		student.Class = &classID
	}

	ctx, cancel := database.Ctx(ctx, queryTimeout)
	defer cancel()

	if _, err := store.Students.InsertOne(ctx, student); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewDuplicateKeyError("email already exists: " + student.Email)
		}
		logger.L().Error("❌ Error inserting student", "email", student.Email, "error", err)
		return nil, apperrors.FromStore("create student", err)
	}

	logger.L().Info("Student created", "id", student.ID.Hex())
	return student, nil
}

// FindStudentByID - คืนนักศึกษาพร้อม class และ class.branch
// id ผิดรูปแบบหรือไม่พบ -> (nil, nil)
func FindStudentByID(ctx context.Context, store *database.Store, id string) (*models.StudentDetail, error) {
	return findStudentDetail(ctx, store, id, options.FindOne(), true)
}

// FindStudentByIDNoPhone - เหมือน FindStudentByID แต่ไม่มี phone
func FindStudentByIDNoPhone(ctx context.Context, store *database.Store, id string) (*models.StudentDetail, error) {
	return findStudentDetail(ctx, store, id, options.FindOne().SetProjection(noPhoneProjection()), false)
}

// FindStudentByIDNoPhoneLean - ผลลัพธ์เหมือน NoPhone แต่ตัด field ที่ไม่ใช้ออกตั้งแต่ projection
func FindStudentByIDNoPhoneLean(ctx context.Context, store *database.Store, id string) (*models.StudentDetail, error) {
	opts := options.FindOne().SetProjection(bson.M{
		"name":      1,
		"age":       1,
		"class":     1,
		"email":     1,
		"role":      1,
		"electives": 1,
		"cgpa":      1,
	})
	return findStudentDetail(ctx, store, id, opts, false)
}

func findStudentDetail(ctx context.Context, store *database.Store, id string, opts *options.FindOneOptions, withPhone bool) (*models.StudentDetail, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	student, err := findOne(ctx, store, bson.M{"_id": objID}, opts)
	if err != nil || student == nil {
		return nil, err
	}

	detail := toDetail(student, withPhone)
	if student.Class == nil {
		return detail, nil
	}

	class, err := classes.FindClassByID(ctx, store, *student.Class)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return detail, nil
	}

	detail.Class = &models.ClassDetail{ID: class.ID, Name: class.Name}
	if class.Branch != nil {
		branch, err := branches.FindBranchByID(ctx, store, *class.Branch)
		if err != nil {
			return nil, err
		}
		detail.Class.Branch = branch
	}
	return detail, nil
}

func findOne(ctx context.Context, store *database.Store, filter bson.M, opts *options.FindOneOptions) (*models.Student, error) {
	ctx, cancel := database.Ctx(ctx, queryTimeout)
	defer cancel()

	var student models.Student
	err := store.Students.FindOne(ctx, filter, opts).Decode(&student)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore("find student", err)
	}
	return &student, nil
}

// FindAllStudents - ดึงนักศึกษาทั้งหมด เรียงตาม _id
func FindAllStudents(ctx context.Context, store *database.Store) ([]models.Student, error) {
	return find(ctx, store, "find all students", bson.M{}, options.Find().SetSort(byIDAsc))
}

// FindAllStudentsPaginated - แบ่งหน้าด้วย skip/limit
// หน้าที่อยู่นอกช่วง 1..totalPages จะได้ data ว่าง แต่ metadata ถูกต้อง
func FindAllStudentsPaginated(ctx context.Context, store *database.Store, page, pageSize int) (*models.PaginatedStudents, error) {
	params := models.PaginationParams{Page: page, PageSize: pageSize}
	if params.PageSize < 1 {
		return nil, apperrors.NewValidationError("pageSize must be at least 1")
	}

	countCtx, cancel := database.Ctx(ctx, queryTimeout)
	total, err := store.Students.CountDocuments(countCtx, bson.M{})
	cancel()
	if err != nil {
		return nil, apperrors.FromStore("count students", err)
	}

	result := &models.PaginatedStudents{
		Data:       []models.Student{},
		Pagination: models.NewPaginationMeta(total, params),
	}
	if !params.InRange(result.Pagination) {
		return result, nil
	}

	opts := options.Find().
		SetSort(byIDAsc).
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.PageSize))
	data, err := find(ctx, store, "find students page", bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	result.Data = data
	return result, nil
}

// FindStudentsByClass - นักศึกษาใน class เดียว populate class (ไม่ populate branch)
func FindStudentsByClass(ctx context.Context, store *database.Store, classID string) ([]models.StudentWithClass, error) {
	objID, err := primitive.ObjectIDFromHex(classID)
	if err != nil {
		return []models.StudentWithClass{}, nil
	}

	list, err := find(ctx, store, "find students by class", bson.M{"class": objID}, options.Find().SetSort(byIDAsc))
	if err != nil {
		return nil, err
	}

	out := make([]models.StudentWithClass, 0, len(list))
	if len(list) == 0 {
		return out, nil
	}

	class, err := classes.FindClassByID(ctx, store, objID)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		out = append(out, toWithClass(s, class))
	}
	return out, nil
}

// FindStudents - ค้นหาตามอายุ / วิชาเลือก
func FindStudents(ctx context.Context, store *database.Store, q models.StudentQuery) ([]models.Student, error) {
	filter, err := BuildStudentFilter(q)
	if err != nil {
		return nil, err
	}
	return find(ctx, store, "search students", filter, options.Find().SetSort(byIDAsc))
}

// DeleteStudentByID - ลบและคืนเอกสารที่ถูกลบ (nil ถ้าไม่พบ)
func DeleteStudentByID(ctx context.Context, store *database.Store, id string) (*models.Student, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := database.Ctx(ctx, queryTimeout)
	defer cancel()

	var deleted models.Student
	err = store.Students.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore("delete student", err)
	}

	logger.L().Info("Student deleted", "id", id)
	return &deleted, nil
}

// ProfileEmailLookup - จับเวลาการค้นหาด้วย email และคืนรายชื่อ index ของ students
func ProfileEmailLookup(ctx context.Context, store *database.Store, email string) (*models.IndexProfile, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperrors.NewValidationError("email is required")
	}

	start := time.Now()
	if _, err := findOne(ctx, store, bson.M{"email": email}, options.FindOne()); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	ctx, cancel := database.Ctx(ctx, queryTimeout)
	defer cancel()

	specs, err := store.Students.Indexes().ListSpecifications(ctx)
	if err != nil {
		return nil, apperrors.FromStore("list student indexes", err)
	}

	profile := &models.IndexProfile{
		LookupMillis: float64(elapsed.Microseconds()) / 1000,
		Indexes:      make([]string, 0, len(specs)),
	}
	for _, spec := range specs {
		profile.Indexes = append(profile.Indexes, spec.Name)
	}
	return profile, nil
}

func find(ctx context.Context, store *database.Store, op string, filter bson.M, opts *options.FindOptions) ([]models.Student, error) {
	ctx, cancel := database.Ctx(ctx, queryTimeout)
	defer cancel()

	cursor, err := store.Students.Find(ctx, filter, opts)
	if err != nil {
		return nil, apperrors.FromStore(op, err)
	}
	defer cursor.Close(ctx)

	students := []models.Student{}
	if err := cursor.All(ctx, &students); err != nil {
		return nil, apperrors.FromStore(op, err)
	}
	for i := range students {
		if students[i].Electives == nil {
			students[i].Electives = []string{}
		}
	}
	return students, nil
}
