package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleStudent = "Student"
	RoleAdmin   = "admin"
)

// Student นักศึกษา
type Student struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Age       int                 `bson:"age" json:"age"`
	Class     *primitive.ObjectID `bson:"class,omitempty" json:"class"`
	Email     string              `bson:"email" json:"email"`
	Phone     string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string              `bson:"role" json:"role"`
	Electives []string            `bson:"electives" json:"electives"`
	CGPA      float64             `bson:"cgpa" json:"cgpa"`
}

// StudentDetail คือ Student ที่ populate class และ class.branch แล้ว
type StudentDetail struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Age       int                `json:"age"`
	Email     string             `json:"email"`
	Phone     *string            `json:"phone,omitempty"`
	Role      string             `json:"role"`
	Electives []string           `json:"electives"`
	CGPA      float64            `json:"cgpa"`
	Class     *ClassDetail       `json:"class"`
}

// StudentWithClass populate แค่ class (branch ยังเป็น id)
type StudentWithClass struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Age       int                `json:"age"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Role      string             `json:"role"`
	Electives []string           `json:"electives"`
	CGPA      float64            `json:"cgpa"`
	Class     *Class             `json:"class"`
}

// CreateStudentInput body ของ POST /student
type CreateStudentInput struct {
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Age       *int     `json:"age" validate:"required,gte=0,lte=150"`
	Email     string   `json:"email" validate:"required,email"`
	Phone     string   `json:"phone" validate:"required,min=3,max=32"`
	ClassID   string   `json:"classId" validate:"omitempty,mongodb"`
	Role      string   `json:"role" validate:"omitempty,max=32"`
	Electives []string `json:"electives" validate:"omitempty,dive,required"`
	CGPA      *float64 `json:"cgpa" validate:"omitempty,gte=0,lte=10"`
}

// StudentQuery เงื่อนไขค้นหานักศึกษา (ทุก field เป็น optional)
type StudentQuery struct {
	AgeLt            *int
	AgeGt            *int
	AgeOutside       bool
	Electives        []string
	ExcludeElectives []string
}
