package admins_test

import (
	"context"
	"testing"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/models"
	"Backend-NMIT-Records/src/services/admins"
	"Backend-NMIT-Records/src/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"golang.org/x/crypto/bcrypt"
)

func upserted() bson.D {
	return testutil.OK(
		bson.E{Key: "n", Value: int32(1)},
		bson.E{Key: "nModified", Value: int32(0)},
		bson.E{Key: "upserted", Value: bson.A{
			bson.D{{Key: "index", Value: int32(0)}, {Key: "_id", Value: primitive.NewObjectID()}},
		}},
	)
}

func matched() bson.D {
	return testutil.OK(bson.E{Key: "n", Value: int32(1)}, bson.E{Key: "nModified", Value: int32(0)})
}

func TestCreateAdminUser(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()
	seed := admins.DefaultAdminSeed("secret")

	mt.Run("two sequential calls create exactly one admin", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(upserted(), matched())

		created, err := admins.CreateAdminUser(ctx, store, seed)
		require.NoError(mt, err)
		assert.True(mt, created)

		created, err = admins.CreateAdminUser(ctx, store, seed)
		require.NoError(mt, err)
		assert.False(mt, created)
	})

	mt.Run("single atomic upsert keyed by role", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(upserted())

		_, err := admins.CreateAdminUser(ctx, store, seed)
		require.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "update", evt.CommandName)

		stmt := evt.Command.Lookup("updates", "0").Document()
		assert.True(mt, stmt.Lookup("upsert").Boolean())
		assert.Equal(mt, models.RoleAdmin, stmt.Lookup("q", "role").StringValue())

		onInsert := stmt.Lookup("u", "$setOnInsert").Document()
		assert.Equal(mt, "admin@nmitmock.ac", onInsert.Lookup("email").StringValue())
		assert.Equal(mt, "9080706050", onInsert.Lookup("phone").StringValue())

		hash := onInsert.Lookup("password").StringValue()
		assert.NotEqual(mt, "secret", hash)
		assert.NoError(mt, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))

		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("lost race counts as already exists", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.DuplicateKey())

		created, err := admins.CreateAdminUser(ctx, store, seed)
		require.NoError(mt, err)
		assert.False(mt, created)
	})
}

func TestLogin(t *testing.T) {
	mt := testutil.NewMockMongo(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)

	adminDoc := bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "name", Value: "admin"},
		{Key: "email", Value: "admin@nmitmock.ac"},
		{Key: "role", Value: models.RoleAdmin},
		{Key: "password", Value: string(hash)},
	}

	mt.Run("valid credentials", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.AdminCollectionName), adminDoc))

		admin, err := admins.Login(ctx, store, models.LoginInput{Email: "Admin@nmitMock.ac", Password: "admin"})
		require.NoError(mt, err)
		assert.Equal(mt, models.RoleAdmin, admin.Role)
		assert.Empty(mt, admin.Password)
	})

	mt.Run("wrong password", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.AdminCollectionName), adminDoc))

		_, err := admins.Login(ctx, store, models.LoginInput{Email: "admin@nmitmock.ac", Password: "nope"})
		assert.ErrorIs(mt, err, apperrors.ErrUnauthorized)
	})

	mt.Run("unknown email", func(mt *mtest.T) {
		store := testutil.MockStore(mt)
		mt.AddMockResponses(testutil.Cursor(testutil.Namespace(store, database.AdminCollectionName)))

		_, err := admins.Login(ctx, store, models.LoginInput{Email: "who@nmit.ac", Password: "x"})
		assert.ErrorIs(mt, err, apperrors.ErrUnauthorized)
	})

	mt.Run("missing password", func(mt *mtest.T) {
		store := testutil.MockStore(mt)

		_, err := admins.Login(ctx, store, models.LoginInput{Email: "admin@nmitmock.ac"})
		assert.ErrorIs(mt, err, apperrors.ErrValidation)
	})
}
