package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records a confirmed payment intent together with the cart
// item ids it settled. Inserting the payment and clearing the carts are
// two separate writes.
type Payment struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Price         float64            `json:"price" bson:"price"`
	TransactionID string             `json:"transactionId" bson:"transactionId"`
	CartIDs       []string           `json:"cartIds" bson:"cartIds"`
	Status        string             `json:"status" bson:"status"`
	Date          time.Time          `json:"date" bson:"date"`
}
