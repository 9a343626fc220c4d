package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealRequest is an append-only log entry; there is no update or
// delete path.
type MealRequest struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	MealName  string             `json:"mealName" bson:"mealName"`
	Image     string             `json:"image" bson:"image"`
	Time      string             `json:"time" bson:"time"`
	Status    string             `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
