package seeder

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/database"
	"Backend-NMIT-Records/src/logger"
	"Backend-NMIT-Records/src/models"

	"github.com/brianvoe/gofakeit/v7"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	BranchNames = []string{"CSE", "ISE", "ECE", "MECH", "CIVIL", "EEE"}
	ClassNames  = []string{"A", "B", "C"}

	// วิชาที่ทุก branch ได้รับตอน seed
	DefaultSubjects = []string{
		"Engineering Mathematics",
		"Engineering Physics",
		"Engineering Chemistry",
		"Engineering Mechanics",
		"Computer Programming",
		"Data Structures and Algorithms",
		"Database Management Systems",
		"Operating Systems",
		"Computer Networks",
		"Artificial Intelligence",
		"Software Engineering",
		"Web Technologies",
		"Machine Learning",
		"Digital Signal Processing",
		"Control Systems",
		"VLSI Design",
		"Embedded Systems",
		"Internet of Things",
		"Cloud Computing",
		"Cybersecurity",
		"Robotics",
		"Power Systems",
		"Thermodynamics",
		"Fluid Mechanics",
		"Heat Transfer",
		"Structural Engineering",
		"Transportation Engineering",
		"Environmental Engineering",
		"Surveying",
	}
)

const (
	MinAge  = 18
	MaxAge  = 25
	MinCGPA = 3.7
	MaxCGPA = 10.0
)

// Result สรุปจำนวนเอกสารที่ถูกสร้าง
type Result struct {
	Branches        int      `json:"branches"`
	Classes         int      `json:"classes"`
	Students        int      `json:"students"`
	SkippedBranches []string `json:"skippedBranches"`
}

// Generator สร้างข้อมูลปลอม ใช้ seed เดิมจะได้ข้อมูลเดิม
type Generator struct {
	faker *gofakeit.Faker
	seq   int
}

// NewGenerator - seed = 0 ให้ gofakeit สุ่ม seed เอง
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Branch - branch ใหม่พร้อมรายวิชา
func (g *Generator) Branch(name string) models.Branch {
	subjects := make([]string, len(DefaultSubjects))
	copy(subjects, DefaultSubjects)
	return models.Branch{ID: primitive.NewObjectID(), Name: name, Subjects: subjects}
}

// Class - class ที่อ้างถึง branch
func (g *Generator) Class(name string, branchID primitive.ObjectID) models.Class {
	id := branchID
	return models.Class{ID: primitive.NewObjectID(), Name: name, Branch: &id}
}

// Student - นักศึกษาปลอม อายุ 18-25, cgpa 3.7-10 ทศนิยม 2 ตำแหน่ง
func (g *Generator) Student(classID primitive.ObjectID) models.Student {
	g.seq++
	id := classID
	username := g.faker.Username()

	// ต่อท้ายลำดับ เพื่อไม่ให้ชน unique index ของ email
	local, domain, found := strings.Cut(strings.ToLower(g.faker.Email()), "@")
	if !found {
		domain = g.faker.DomainName()
	}
	email := fmt.Sprintf("%s.%d@%s", local, g.seq, domain)

	return models.Student{
		ID:        primitive.NewObjectID(),
		Name:      username,
		Age:       g.faker.IntRange(MinAge, MaxAge),
		Class:     &id,
		Email:     email,
		Phone:     g.faker.Phone(),
		Role:      models.RoleStudent,
		Electives: []string{},
		CGPA:      math.Round(g.faker.Float64Range(MinCGPA, MaxCGPA)*100) / 100,
	}
}

// Seed - สร้าง branch x class x นักศึกษา
// branch ที่ชื่อซ้ำจะถูก log แล้วข้ามไป (ไม่สร้าง class/นักศึกษาของ branch นั้น)
func Seed(ctx context.Context, store *database.Store, gen *Generator, studentsPerClass int) (*Result, error) {
	if studentsPerClass < 0 {
		return nil, apperrors.NewValidationError("students per class must not be negative")
	}

	res := &Result{SkippedBranches: []string{}}
	for _, branchName := range BranchNames {
		branch := gen.Branch(branchName)
		if err := insert(ctx, store.Branches.Name(), func(ctx context.Context) error {
			_, err := store.Branches.InsertOne(ctx, branch)
			return err
		}); err != nil {
			if errors.Is(err, apperrors.ErrDuplicateKey) {
				logger.L().Warn("⚠️ Failed to create branch, skipping", "branch", branchName, "error", err)
				res.SkippedBranches = append(res.SkippedBranches, branchName)
				continue
			}
			return res, err
		}
		res.Branches++

		for _, className := range ClassNames {
			class := gen.Class(className, branch.ID)
			if err := insert(ctx, store.Classes.Name(), func(ctx context.Context) error {
				_, err := store.Classes.InsertOne(ctx, class)
				return err
			}); err != nil {
				return res, err
			}
			res.Classes++

			if studentsPerClass == 0 {
				continue
			}
			docs := make([]interface{}, 0, studentsPerClass)
			for i := 0; i < studentsPerClass; i++ {
				docs = append(docs, gen.Student(class.ID))
			}
			if err := insert(ctx, store.Students.Name(), func(ctx context.Context) error {
				_, err := store.Students.InsertMany(ctx, docs)
				return err
			}); err != nil {
				return res, err
			}
			res.Students += len(docs)
		}
	}

	logger.L().Info("✅ Data generation completed",
		"branches", res.Branches, "classes", res.Classes, "students", res.Students)
	return res, nil
}

func insert(ctx context.Context, coll string, fn func(ctx context.Context) error) error {
	ctx, cancel := database.Ctx(ctx, 15*time.Second)
	defer cancel()
	return apperrors.FromStore("seed "+coll, fn(ctx))
}
