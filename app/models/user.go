package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered customer account.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name"          json:"name"`
	Email         string             `bson:"email"         json:"email"` // unique index, see database/migrations
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	Password      string             `bson:"password"      json:"-"` // bcrypt hash, never serialised
	ProfileImage  string             `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
}
