package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Branch ภาควิชา
type Branch struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Subjects []string           `bson:"subjects" json:"subjects"`
}

// CreateBranchInput body ของ POST /branch
type CreateBranchInput struct {
	Name     string   `json:"name" validate:"required,min=1,max=100"`
	Subjects []string `json:"subjects" validate:"omitempty,dive,required"`
}
