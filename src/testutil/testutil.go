package testutil

import (
	"testing"
	"time"

	"Backend-NMIT-Records/src/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// NewMockMongo สร้าง mtest.T ที่คุยกับ mock deployment (ไม่ต้องมี MongoDB จริง)
// ใช้ mt.Run(...) แล้วสร้าง Store ในแต่ละ subtest ด้วย MockStore
func NewMockMongo(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

// MockStore ผูก Store เข้ากับ client ของ subtest
func MockStore(mt *mtest.T) *database.Store {
	return database.NewStore(mt.Client, mt.DB.Name())
}

// Namespace "<db>.<collection>" สำหรับ cursor response
func Namespace(store *database.Store, coll string) string {
	return store.DB.Name() + "." + coll
}

// Cursor - response ของ find/aggregate ที่มีแค่ first batch
func Cursor(ns string, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

// Count - response ของ CountDocuments
func Count(ns string, n int64) bson.D {
	if n == 0 {
		return Cursor(ns)
	}
	return Cursor(ns, bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: n}})
}

// OK - response ของคำสั่งเขียนที่สำเร็จ
func OK(elems ...bson.E) bson.D {
	return mtest.CreateSuccessResponse(elems...)
}

// DuplicateKey - write error code 11000
func DuplicateKey() bson.D {
	return mtest.CreateWriteErrorsResponse(mtest.WriteError{
		Index:   0,
		Code:    11000,
		Message: "E11000 duplicate key error",
	})
}

// Within รัน fn แล้วคืนเวลาที่ใช้ ถ้าเกิน limit ถือว่า test fail
func Within(t *testing.T, limit time.Duration, fn func()) time.Duration {
	t.Helper()
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	if elapsed > limit {
		t.Errorf("⏱️ took %v, limit %v", elapsed, limit)
	}
	return elapsed
}
