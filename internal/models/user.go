package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	Phone        string    `bson:"phone" json:"phone"`
	Username     string    `bson:"username" json:"username"`
	PasswordHash string    `bson:"password_hash" json:"-"` // Don't return password hash in JSON
	Gender       string    `bson:"gender" json:"gender"`
	DOB          time.Time `bson:"dob" json:"dob"`
}
