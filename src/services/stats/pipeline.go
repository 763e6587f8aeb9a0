package stats

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// averageCgpaPipeline - { _id: null, avgCgpa: {$avg: "$cgpa"} }
func averageCgpaPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avgCgpa", Value: bson.D{{Key: "$avg", Value: "$cgpa"}}},
		}}},
	}
}

// highestCgpaPipeline - { _id: null, maxCgpa: {$max: "$cgpa"} }
func highestCgpaPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "maxCgpa", Value: bson.D{{Key: "$max", Value: "$cgpa"}}},
		}}},
	}
}

// countByPipeline - นับจำนวนต่อค่าของ field แล้วเรียงตาม _id
func countByPipeline(field string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// averageAgeByRolePipeline - อายุเฉลี่ยต่อ role
func averageAgeByRolePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "avgAge", Value: bson.D{{Key: "$avg", Value: "$age"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
