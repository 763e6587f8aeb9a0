package students

import (
	"Backend-NMIT-Records/src/apperrors"
	"Backend-NMIT-Records/src/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BuildStudentFilter - แปลง StudentQuery เป็น filter ของ MongoDB
//
//	ageLt / ageGt           -> {age: {$lt, $gt}}
//	ageOutside + ทั้งสองค่า -> {$or: [{age < ageLt}, {age > ageGt}]}
//	electives               -> {electives: {$in}}
//	excludeElectives        -> {electives: {$nin}}
func BuildStudentFilter(q models.StudentQuery) (bson.M, error) {
	filter := bson.M{}

	if q.AgeLt != nil && *q.AgeLt < 0 {
		return nil, apperrors.NewValidationError("ageLt must not be negative")
	}
	if q.AgeGt != nil && *q.AgeGt < 0 {
		return nil, apperrors.NewValidationError("ageGt must not be negative")
	}

	if q.AgeOutside {
		if q.AgeLt == nil || q.AgeGt == nil {
			return nil, apperrors.NewValidationError("ageOutside requires both ageLt and ageGt")
		}
		filter["$or"] = bson.A{
			bson.M{"age": bson.M{"$lt": *q.AgeLt}},
			bson.M{"age": bson.M{"$gt": *q.AgeGt}},
		}
	} else {
		age := bson.M{}
		if q.AgeLt != nil {
			age["$lt"] = *q.AgeLt
		}
		if q.AgeGt != nil {
			age["$gt"] = *q.AgeGt
		}
		if len(age) > 0 {
			filter["age"] = age
		}
	}

	electives := bson.M{}
	if len(q.Electives) > 0 {
		electives["$in"] = q.Electives
	}
	if len(q.ExcludeElectives) > 0 {
		electives["$nin"] = q.ExcludeElectives
	}
	if len(electives) > 0 {
		filter["electives"] = electives
	}

	return filter, nil
}

// noPhoneProjection ตัด phone ออกตั้งแต่ฝั่ง query
func noPhoneProjection() bson.M {
	return bson.M{"phone": 0}
}

func toDetail(s *models.Student, withPhone bool) *models.StudentDetail {
	detail := &models.StudentDetail{
		ID:        s.ID,
		Name:      s.Name,
		Age:       s.Age,
		Email:     s.Email,
		Role:      s.Role,
		Electives: s.Electives,
		CGPA:      s.CGPA,
	}
	if detail.Electives == nil {
		detail.Electives = []string{}
	}
	if withPhone {
		phone := s.Phone
		detail.Phone = &phone
	}
	return detail
}

func toWithClass(s models.Student, class *models.Class) models.StudentWithClass {
	electives := s.Electives
	if electives == nil {
		electives = []string{}
	}
	return models.StudentWithClass{
		ID:        s.ID,
		Name:      s.Name,
		Age:       s.Age,
		Email:     s.Email,
		Phone:     s.Phone,
		Role:      s.Role,
		Electives: electives,
		CGPA:      s.CGPA,
		Class:     class,
	}
}
