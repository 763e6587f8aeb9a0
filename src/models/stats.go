package models

// AgeCount ผลของ $group ตามอายุ
// age ที่ไม่ใช่จำนวนเต็มก็ยัง decode ได้
type AgeCount struct {
	Age   float64 `bson:"_id" json:"age"`
	Count int64   `bson:"count" json:"count"`
}

// RoleCount ผลของ $group ตาม role
type RoleCount struct {
	Role  string `bson:"_id" json:"role"`
	Count int64  `bson:"count" json:"count"`
}

// RoleAverageAge อายุเฉลี่ยต่อ role (ไม่ปัดทศนิยม)
type RoleAverageAge struct {
	Role       string  `bson:"_id" json:"role"`
	AverageAge float64 `bson:"avgAge" json:"averageAge"`
}

// IndexProfile ผลของ GET /stats
type IndexProfile struct {
	LookupMillis float64  `json:"lookupMillis"`
	Indexes      []string `json:"indexes"`
}
