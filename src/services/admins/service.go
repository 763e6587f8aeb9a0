package admins

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeed ข้อมูลของ admin ที่จะถูกสร้างตอนเริ่มระบบ
type AdminSeed struct {
	Name     string
	Age      int
	Email    string
	Phone    string
	Password string
}

// DefaultAdminSeed ค่ามาตรฐานของ admin เริ่มต้น
func DefaultAdminSeed(password string) AdminSeed {
	return AdminSeed{
		Name:     "admin",
		Age:      20,
		Email:    "admin@nmitMock.ac",
		Phone:    "9080706050",
		Password: password,
	}
}

// CreateAdminUser - สร้าง admin ถ้ายังไม่มี (upsert + $setOnInsert)
// คืน true เมื่อสร้างใหม่, false เมื่อมีอยู่แล้ว
func CreateAdminUser(ctx context.Context, store *database.Store, seed AdminSeed) (bool, error) {
	hashed, err := hashPassword(seed.Password)
	if err != nil {
		return false, err
	}

	ctx, cancel := database.Ctx(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"role": models.RoleAdmin}
	update := bson.M{"$setOnInsert": bson.M{
		"name":     seed.Name,
		"age":      seed.Age,
		"email":    strings.ToLower(seed.Email),
		"phone":    seed.Phone,
		"role":     models.RoleAdmin,
		"password": hashed,
	}}

	res, err := store.Admins.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		// มีอีก process upsert ไปก่อน (unique index บน role)
		if mongo.IsDuplicateKeyError(err) {
			logger.L().Info("Admin user already exists")
			return false, nil
		}
		logger.L().Error("❌ Error creating admin user", "error", err)
		return false, apperrors.FromStore("create admin user", err)
	}

	if res.UpsertedCount == 0 {
		logger.L().Info("Admin user already exists")
		return false, nil
	}
	logger.L().Info("✅ Admin user created", "email", seed.Email)
	return true, nil
}

// Login - ตรวจ email/password ของ admin
func Login(ctx context.Context, store *database.Store, input models.LoginInput) (*models.Admin, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := store.Admins.FindOne(ctx, bson.M{"email": input.Email, "role": models.RoleAdmin}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, apperrors.FromStore("find admin", err)
	}

	// ตรวจสอบ password
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		return nil, invalidCredentials()
	}

	admin.Password = ""
	return &admin, nil
}

func invalidCredentials() error {
	return &apperrors.AppError{Err: apperrors.ErrUnauthorized, Message: "invalid email or password"}
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}
