package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is a standalone testimonial document. Read-only surface; the
// creation path lives outside this API.
type Review struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Details string             `json:"details" bson:"details"`
	Rating  float64            `json:"rating,omitempty" bson:"rating,omitempty"`
	MealID  string             `json:"mealId,omitempty" bson:"mealId,omitempty"`
}
