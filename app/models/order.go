package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a single dish order. Orders are immutable once created and
// always belong to exactly one user.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Curry    string             `bson:"curry"    json:"curry"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Date     time.Time          `bson:"date"     json:"date"` // stamped by the server at creation
	Price    string             `bson:"price"    json:"price"`
	ImageURL string             `bson:"imageurl" json:"imageurl"`
	User     primitive.ObjectID `bson:"user"     json:"user"`
}
