package stats

import (
	"context"
	"math"
	"time"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const aggregateTimeout = 10 * time.Second

// CalculateAverageCgpa - ค่าเฉลี่ย cgpa ของนักศึกษาทั้งหมด ปัด 3 ตำแหน่ง
func CalculateAverageCgpa(ctx context.Context, store *database.Store) (float64, error) {
	var rows []struct {
		Value *float64 `bson:"avgCgpa"`
	}
	if err := aggregate(ctx, store, "average cgpa", averageCgpaPipeline(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].Value == nil {
		return 0, apperrors.NewEmptyAggregationError("average cgpa")
	}
	return roundTo3(*rows[0].Value), nil
}

// FindHighestCgpa - cgpa สูงสุด
func FindHighestCgpa(ctx context.Context, store *database.Store) (float64, error) {
	var rows []struct {
		Value *float64 `bson:"maxCgpa"`
	}
	if err := aggregate(ctx, store, "highest cgpa", highestCgpaPipeline(), &rows); err != nil {
		return 0, err
	}
	if len(rows) == 0 || rows[0].Value == nil {
		return 0, apperrors.NewEmptyAggregationError("highest cgpa")
	}
	return *rows[0].Value, nil
}

// CountStudentsByAge - จำนวนนักศึกษาต่ออายุ เรียงอายุน้อยไปมาก
func CountStudentsByAge(ctx context.Context, store *database.Store) ([]models.AgeCount, error) {
	rows := []models.AgeCount{}
	if err := aggregate(ctx, store, "count by age", countByPipeline("age"), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CountStudentsByRole - จำนวนต่อ role
func CountStudentsByRole(ctx context.Context, store *database.Store) ([]models.RoleCount, error) {
	rows := []models.RoleCount{}
	if err := aggregate(ctx, store, "count by role", countByPipeline("role"), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CalculateAverageAgeByRole - อายุเฉลี่ยต่อ role (ไม่ปัด)
func CalculateAverageAgeByRole(ctx context.Context, store *database.Store) ([]models.RoleAverageAge, error) {
	rows := []models.RoleAverageAge{}
	if err := aggregate(ctx, store, "average age by role", averageAgeByRolePipeline(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func aggregate(ctx context.Context, store *database.Store, op string, pipeline mongo.Pipeline, out interface{}) error {
	ctx, cancel := database.Ctx(ctx, aggregateTimeout)
	defer cancel()

	cursor, err := store.Students.Aggregate(ctx, pipeline)
	if err != nil {
		return apperrors.FromStore(op, err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return apperrors.FromStore(op, err)
	}
	return nil
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
