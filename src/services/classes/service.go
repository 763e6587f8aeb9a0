package classes

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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateClass - สร้าง class ภายใต้ branch
// ไม่ตรวจว่า branch มีอยู่จริง การอ้างถึงที่ไม่มีจะกลายเป็น null ตอนอ่าน
func CreateClass(ctx context.Context, store *database.Store, input models.CreateClassInput) (*models.Class, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.BranchID = strings.TrimSpace(input.BranchID)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	class := &models.Class{
		ID:   primitive.NewObjectID(),
		Name: input.Name,
	}
	if input.BranchID != "" {
		branchID, err := primitive.ObjectIDFromHex(input.BranchID)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid branch ID")
		}
		class.Branch = &branchID
	}

	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	if _, err := store.Classes.InsertOne(ctx, class); err != nil {
		logger.L().Error("❌ Error inserting class", "name", class.Name, "error", err)
		return nil, apperrors.FromStore("create class", err)
	}

	logger.L().Info("Class created", "id", class.ID.Hex())
	return class, nil
}

// ListClasses - ดึง class ทั้งหมด กรองตาม branch ได้
func ListClasses(ctx context.Context, store *database.Store, branchID string) ([]models.Class, error) {
	filter := bson.M{}
	if branchID != "" {
		objID, err := primitive.ObjectIDFromHex(branchID)
		if err != nil {
			return []models.Class{}, nil
		}
		filter["branch"] = objID
	}

	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	cursor, err := store.Classes.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, apperrors.FromStore("list classes", err)
	}
	defer cursor.Close(ctx)

	classes := []models.Class{}
	if err := cursor.All(ctx, &classes); err != nil {
		return nil, apperrors.FromStore("list classes", err)
	}
	return classes, nil
}

// FindClassByID - คืน nil ถ้าไม่พบ
func FindClassByID(ctx context.Context, store *database.Store, id primitive.ObjectID) (*models.Class, error) {
	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	var class models.Class
	err := store.Classes.FindOne(ctx, bson.M{"_id": id}).Decode(&class)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore("find class", err)
	}
	return &class, nil
}
