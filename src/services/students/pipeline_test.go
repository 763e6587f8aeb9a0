package students

import (
	"testing"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func ptr(n int) *int { return &n }

func TestBuildStudentFilter(t *testing.T) {
	tests := []struct {
		name  string
		query models.StudentQuery
		want  bson.M
	}{
		{
			name:  "empty query matches everything",
			query: models.StudentQuery{},
			want:  bson.M{},
		},
		{
			name:  "younger than",
			query: models.StudentQuery{AgeLt: ptr(20)},
			want:  bson.M{"age": bson.M{"$lt": 20}},
		},
		{
			name:  "older than",
			query: models.StudentQuery{AgeGt: ptr(22)},
			want:  bson.M{"age": bson.M{"$gt": 22}},
		},
		{
			name:  "between is exclusive on both ends",
			query: models.StudentQuery{AgeGt: ptr(18), AgeLt: ptr(24)},
			want:  bson.M{"age": bson.M{"$gt": 18, "$lt": 24}},
		},
		{
			name:  "outside a range",
			query: models.StudentQuery{AgeLt: ptr(19), AgeGt: ptr(23), AgeOutside: true},
			want: bson.M{"$or": bson.A{
				bson.M{"age": bson.M{"$lt": 19}},
				bson.M{"age": bson.M{"$gt": 23}},
			}},
		},
		{
			name:  "electives any of",
			query: models.StudentQuery{Electives: []string{"AI", "ML"}},
			want:  bson.M{"electives": bson.M{"$in": []string{"AI", "ML"}}},
		},
		{
			name:  "electives none of",
			query: models.StudentQuery{ExcludeElectives: []string{"VLSI"}},
			want:  bson.M{"electives": bson.M{"$nin": []string{"VLSI"}}},
		},
		{
			name: "combined",
			query: models.StudentQuery{
				AgeLt:            ptr(21),
				Electives:        []string{"AI"},
				ExcludeElectives: []string{"Robotics"},
			},
			want: bson.M{
				"age":       bson.M{"$lt": 21},
				"electives": bson.M{"$in": []string{"AI"}, "$nin": []string{"Robotics"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BuildStudentFilter(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildStudentFilterErrors(t *testing.T) {
	cases := map[string]models.StudentQuery{
		"outside without upper bound": {AgeOutside: true, AgeLt: ptr(19)},
		"outside without lower bound": {AgeOutside: true, AgeGt: ptr(19)},
		"negative ageLt":              {AgeLt: ptr(-1)},
		"negative ageGt":              {AgeGt: ptr(-5)},
	}
	for name, q := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := BuildStudentFilter(q)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestToDetailRedactsPhone(t *testing.T) {
	s := &models.Student{Name: "x", Phone: "123"}

	assert.Nil(t, toDetail(s, false).Phone)

	withPhone := toDetail(s, true)
	require.NotNil(t, withPhone.Phone)
	assert.Equal(t, "123", *withPhone.Phone)
	assert.Equal(t, []string{}, withPhone.Electives)
}
