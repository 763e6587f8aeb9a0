package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Backend-NMIT-Records/src/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ชื่อ collection ที่ใช้ในระบบ
const (
	BranchCollectionName  = "branches"
	ClassCollectionName   = "classes"
	StudentCollectionName = "students"
	AdminCollectionName   = "admins"
)

// Store คือ handle ของ MongoDB ที่ต้องส่งต่อให้ทุก service
type Store struct {
	Client *mongo.Client
	DB     *mongo.Database

	Branches *mongo.Collection
	Classes  *mongo.Collection
	Students *mongo.Collection
	Admins   *mongo.Collection
}

// NewStore ผูก collection ทั้งหมดจาก client ที่เชื่อมต่อแล้ว
func NewStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		Client:   client,
		DB:       db,
		Branches: db.Collection(BranchCollectionName),
		Classes:  db.Collection(ClassCollectionName),
		Students: db.Collection(StudentCollectionName),
		Admins:   db.Collection(AdminCollectionName),
	}
}

// Connect เชื่อมต่อ MongoDB และ ping primary ก่อนคืนค่า Store
func Connect(ctx context.Context, uri, dbName string, timeout time.Duration) (*Store, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI environment variable not set")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	logger.L().Info("✅ MongoDB connected successfully", "database", dbName)
	return NewStore(client, dbName), nil
}

// Disconnect ปิดการเชื่อมต่อ
func (s *Store) Disconnect(ctx context.Context) error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Disconnect(ctx)
}

// Ping ใช้กับ health check
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes สร้าง index ที่ระบบต้องพึ่ง (unique email, unique branch name, admin singleton)
func (s *Store) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	plan := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{s.Branches, []mongo.IndexModel{
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
		{s.Classes, []mongo.IndexModel{
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "branch", Value: 1}}},
		}},
		{s.Students, []mongo.IndexModel{
			{Keys: bson.D{{Key: "name", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "phone", Value: 1}}},
			{Keys: bson.D{{Key: "class", Value: 1}}},
		}},
		{s.Admins, []mongo.IndexModel{
			{Keys: bson.D{{Key: "role", Value: 1}}, Options: options.Index().SetUnique(true)},
		}},
	}

	for _, p := range plan {
		if _, err := p.coll.Indexes().CreateMany(ctx, p.models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", p.coll.Name(), err)
		}
	}
	return nil
}

// Ctx คืน context พร้อม timeout สำหรับ query หนึ่งครั้ง
func Ctx(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, d)
}
