package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Membership is a read-only catalog entry; the collection is seeded
// out of band and has no mutation endpoints.
type Membership struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price" bson:"price"`
	Badge string             `json:"badge,omitempty" bson:"badge,omitempty"`
	Perks []string           `json:"perks,omitempty" bson:"perks,omitempty"`
}
