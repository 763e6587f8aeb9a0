package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Admin ผู้ดูแลระบบ (มีได้คนเดียว)
type Admin struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Age      int                `bson:"age" json:"age"`
	Email    string             `bson:"email" json:"email"`
	Phone    string             `bson:"phone" json:"phone"`
	Role     string             `bson:"role" json:"role"`
	Password string             `bson:"password,omitempty" json:"-"`
}

// LoginInput body ของ POST /auth/login
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
