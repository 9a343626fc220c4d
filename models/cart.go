package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem holds a price snapshot taken when the meal was added; later
// meal edits do not touch it.
type CartItem struct {
	ID      primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email   string             `json:"email" bson:"email"`
	MealID  string             `json:"mealId" bson:"mealId"`
	Name    string             `json:"name,omitempty" bson:"name,omitempty"`
	Image   string             `json:"image,omitempty" bson:"image,omitempty"`
	Price   float64            `json:"price" bson:"price"`
	AddedAt time.Time          `json:"addedAt,omitempty" bson:"addedAt,omitempty"`
}
