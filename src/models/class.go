package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Class ห้องเรียน อ้างถึง Branch
type Class struct {
	ID     primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name   string              `bson:"name" json:"name"`
	Branch *primitive.ObjectID `bson:"branch,omitempty" json:"branch"`
}

// ClassDetail คือ Class ที่ resolve branch แล้ว (branch เป็น null ถ้าอ้างถึงเอกสารที่ไม่มี)
type ClassDetail struct {
	ID     primitive.ObjectID `json:"id"`
	Name   string             `json:"name"`
	Branch *Branch            `json:"branch"`
}

// CreateClassInput body ของ POST /class
type CreateClassInput struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	BranchID string `json:"branchId" validate:"omitempty,mongodb"`
}
