package seeder_test

import (
	"context"
	"testing"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/seeder"
	"Backend-NMIT-Records/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGeneratorStudent(t *testing.T) {
	gen := seeder.NewGenerator(42)
	classID := primitive.NewObjectID()
	emails := map[string]bool{}

	for i := 0; i < 500; i++ {
		s := gen.Student(classID)

		assert.GreaterOrEqual(t, s.Age, seeder.MinAge)
		assert.LessOrEqual(t, s.Age, seeder.MaxAge)
		assert.GreaterOrEqual(t, s.CGPA, seeder.MinCGPA)
		assert.LessOrEqual(t, s.CGPA, seeder.MaxCGPA)
		// ทศนิยมไม่เกิน 2 ตำแหน่ง
		assert.InDelta(t, s.CGPA*100, float64(int64(s.CGPA*100+0.5)), 1e-6)

		assert.Equal(t, models.RoleStudent, s.Role)
		assert.Equal(t, []string{}, s.Electives)
		require.NotNil(t, s.Class)
		assert.Equal(t, classID, *s.Class)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Phone)

		assert.False(t, emails[s.Email], "duplicate email %s", s.Email)
		emails[s.Email] = true
	}
}

func TestGeneratorDeterministic(t *testing.T) {
	a := seeder.NewGenerator(7).Student(primitive.NilObjectID)
	b := seeder.NewGenerator(7).Student(primitive.NilObjectID)
	assert.Equal(t, a.Name, b.Name)
	assert.Equal(t, a.Email, b.Email)
	assert.Equal(t, a.CGPA, b.CGPA)
}

func TestGeneratorBranchAndClass(t *testing.T) {
	gen := seeder.NewGenerator(1)
	branch := gen.Branch("CSE")
	assert.Equal(t, "CSE", branch.Name)
	assert.Equal(t, seeder.DefaultSubjects, branch.Subjects)

	branch.Subjects[0] = "changed"
	assert.NotEqual(t, "changed", seeder.DefaultSubjects[0])

	class := gen.Class("A", branch.ID)
	require.NotNil(t, class.Branch)
	assert.Equal(t, branch.ID, *class.Branch)
}

func TestSeed(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	mt.Run("creates every branch, class and student", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		// branch + 3 x (class + students)
		for range seeder.BranchNames {
			mt.AddMockResponses(testutil.OK())
			for range seeder.ClassNames {
				mt.AddMockResponses(testutil.OK(), testutil.OK())
			}
		}

		res, err := seeder.Seed(ctx, store, seeder.NewGenerator(3), 2)
		require.NoError(mt, err)
		assert.Equal(mt, 6, res.Branches)
		assert.Equal(mt, 18, res.Classes)
		assert.Equal(mt, 36, res.Students)
		assert.Empty(mt, res.SkippedBranches)
	})

	mt.Run("existing branch is skipped", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		for i := range seeder.BranchNames {
			if i == 0 {
				mt.AddMockResponses(testutil.DuplicateKey())
				continue
			}
			mt.AddMockResponses(testutil.OK())
			for range seeder.ClassNames {
				mt.AddMockResponses(testutil.OK())
			}
		}

		res, err := seeder.Seed(ctx, store, seeder.NewGenerator(3), 0)
		require.NoError(mt, err)
		assert.Equal(mt, []string{"CSE"}, res.SkippedBranches)
		assert.Equal(mt, 5, res.Branches)
		assert.Equal(mt, 15, res.Classes)
		assert.Equal(mt, 0, res.Students)
	})

	mt.Run("negative count", func(mt *mtest.T) {
		store := testutil.MockStore(mt)

		_, err := seeder.Seed(ctx, store, seeder.NewGenerator(3), -1)
		assert.ErrorIs(mt, err, apperrors.ErrValidation)
	})
}
