package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is created on first sign-in. Role is "user" until an admin
// promotes the account.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Role      string             `json:"role,omitempty" bson:"role,omitempty"`
	CreatedAt time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

const RoleAdmin = "admin"

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
