package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MealReview is an inline review appended to a meal through the
// combined update endpoint.
type MealReview struct {
	User   string `json:"user" bson:"user"`
	Review string `json:"review" bson:"review"`
	Email  string `json:"email" bson:"email"`
}

type Meal struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Category string             `json:"category" bson:"category"`
	Price    float64            `json:"price" bson:"price"`
	Recipe   string             `json:"recipe,omitempty" bson:"recipe,omitempty"`
	Image    string             `json:"image,omitempty" bson:"image,omitempty"`
	Likes    int                `json:"likes" bson:"likes"`
	Reviews  []MealReview       `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Upcoming bool               `json:"upcoming" bson:"upcoming"`
}

// MealUpdate is the PATCH /meal/:id body. Nil pointers mean "leave the
// field alone"; Likes is an increment, not a replacement.
type MealUpdate struct {
	Name     *string     `json:"name,omitempty"`
	Category *string     `json:"category,omitempty"`
	Price    *float64    `json:"price,omitempty"`
	Recipe   *string     `json:"recipe,omitempty"`
	Image    *string     `json:"image,omitempty"`
	Upcoming *bool       `json:"upcoming,omitempty"`
	Likes    int         `json:"likes,omitempty"`
	Review   *MealReview `json:"review,omitempty"`
}
