package stats_test

import (
	"context"
	"testing"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/stats"
	"Backend-NMIT-Records/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func bucket(field string, v interface{}) bson.D {
	return bson.D{{Key: "_id", Value: nil}, {Key: field, Value: v}}
}

func TestCalculateAverageCgpa(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("average of 7, 8 and 9", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName), bucket("avgCgpa", 8.0)))

		avg, err := stats.CalculateAverageCgpa(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, 8.0, avg)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "aggregate", evt.CommandName)
		group := evt.Command.Lookup("pipeline", "0", "$group")
		assert.Equal(mt, "$cgpa", group.Document().Lookup("avgCgpa", "$avg").StringValue())
	})

	mt.Run("rounded to three decimals", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName), bucket("avgCgpa", 7.123456)))

		avg, err := stats.CalculateAverageCgpa(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, 7.123, avg)
	})

	mt.Run("no students", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName)))

		_, err := stats.CalculateAverageCgpa(ctx, store)
		assert.ErrorIs(mt, err, apperrors.ErrEmptyAggregation)
	})

	mt.Run("no numeric cgpa", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName), bucket("avgCgpa", nil)))

		_, err := stats.CalculateAverageCgpa(ctx, store)
		assert.ErrorIs(mt, err, apperrors.ErrEmptyAggregation)
	})
}

func TestFindHighestCgpa(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("max", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName), bucket("maxCgpa", 9.87)))

		max, err := stats.FindHighestCgpa(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, 9.87, max)
	})

	mt.Run("no students", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName)))

		_, err := stats.FindHighestCgpa(ctx, store)
		assert.ErrorIs(mt, err, apperrors.ErrEmptyAggregation)
	})
}

func TestCountStudentsByRole(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("Student, Student, admin", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName),
			bson.D{{Key: "_id", Value: "Student"}, {Key: "count", Value: int32(2)}},
			bson.D{{Key: "_id", Value: "admin"}, {Key: "count", Value: int32(1)}},
		))

		rows, err := stats.CountStudentsByRole(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, []models.RoleCount{{Role: "Student", Count: 2}, {Role: "admin", Count: 1}}, rows)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "$role", evt.Command.Lookup("pipeline", "0", "$group", "_id").StringValue())
		assert.Equal(mt, int32(1), evt.Command.Lookup("pipeline", "1", "$sort", "_id").Int32())
	})

	mt.Run("empty store gives empty slice", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName)))

		rows, err := stats.CountStudentsByRole(ctx, store)
		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})
}

func TestCountStudentsByAge(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("groups by age", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName),
			bson.D{{Key: "_id", Value: int32(18)}, {Key: "count", Value: int32(4)}},
			bson.D{{Key: "_id", Value: int32(21)}, {Key: "count", Value: int32(1)}},
		))

		rows, err := stats.CountStudentsByAge(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, []models.AgeCount{{Age: 18, Count: 4}, {Age: 21, Count: 1}}, rows)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "$age", evt.Command.Lookup("pipeline", "0", "$group", "_id").StringValue())
	})

	mt.Run("non-integer age still decodes", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName),
			bson.D{{Key: "_id", Value: int32(20)}, {Key: "count", Value: int32(3)}},
			bson.D{{Key: "_id", Value: 20.5}, {Key: "count", Value: int32(2)}},
		))

		rows, err := stats.CountStudentsByAge(ctx, store)
		require.NoError(mt, err)
		assert.Equal(mt, []models.AgeCount{{Age: 20, Count: 3}, {Age: 20.5, Count: 2}}, rows)
	})
}

func TestCalculateAverageAgeByRole(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("not rounded", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.StudentCollectionName),
			bson.D{{Key: "_id", Value: "Student"}, {Key: "avgAge", Value: 20.333333333333332}},
		))

		rows, err := stats.CalculateAverageAgeByRole(ctx, store)
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, "Student", rows[0].Role)
		assert.Equal(mt, 20.333333333333332, rows[0].AverageAge)
	})
}

func TestAggregateBackendFailure(t *testing.T) {
	mt := testutil.NewMockMongo(t)

	mt.Run("command error surfaces", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    16436,
			Message: "unrecognized pipeline stage",
			Name:    "Location16436",
		}))

		_, err := stats.CountStudentsByAge(context.Background(), store)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, apperrors.ErrEmptyAggregation)
	})
}
