package branches

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

// CreateBranch - เพิ่ม branch ใหม่ ชื่อต้องไม่ซ้ำ (unique index)
func CreateBranch(ctx context.Context, store *database.Store, input models.CreateBranchInput) (*models.Branch, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := utils.ValidateStruct(input); err != nil {
		return nil, err
	}

	subjects := input.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	branch := &models.Branch{
		ID:       primitive.NewObjectID(),
		Name:     input.Name,
		Subjects: subjects,
	}

	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	if _, err := store.Branches.InsertOne(ctx, branch); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewDuplicateKeyError("branch name already exists: " + branch.Name)
		}
		logger.L().Error("❌ Error inserting branch", "name", branch.Name, "error", err)
		return nil, apperrors.FromStore("create branch", err)
	}

	logger.L().Info("Branch created", "id", branch.ID.Hex())
	return branch, nil
}

// ListBranches - ดึง branch ทั้งหมดเรียงตามชื่อ
func ListBranches(ctx context.Context, store *database.Store) ([]models.Branch, error) {
	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	cursor, err := store.Branches.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, apperrors.FromStore("list branches", err)
	}
	defer cursor.Close(ctx)

	branches := []models.Branch{}
	if err := cursor.All(ctx, &branches); err != nil {
		return nil, apperrors.FromStore("list branches", err)
	}
	return branches, nil
}

// FindBranchByID - คืน nil ถ้าไม่พบ
func FindBranchByID(ctx context.Context, store *database.Store, id primitive.ObjectID) (*models.Branch, error) {
	ctx, cancel := database.Ctx(ctx, 5*time.Second)
	defer cancel()

	var branch models.Branch
	err := store.Branches.FindOne(ctx, bson.M{"_id": id}).Decode(&branch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.FromStore("find branch", err)
	}
	return &branch, nil
}
