package models

import "time"

// Patient is a contact snapshot captured at booking time. One record per
// appointment request, never updated afterwards.
type Patient struct {
	ID        string    `json:"id" bson:"id"`
	FirstName string    `json:"first_name" bson:"first_name"`
	LastName  string    `json:"last_name" bson:"last_name"`
	Phone     string    `json:"phone" bson:"phone"`
	Email     string    `json:"email" bson:"email"`
	Gender    string    `json:"gender" bson:"gender"`
	Age       int       `json:"age" bson:"age"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
