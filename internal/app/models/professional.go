package models

import "time"

type ProfessionalStatus string

const (
	ProfessionalPending  ProfessionalStatus = "pending"
	ProfessionalApproved ProfessionalStatus = "approved"
	ProfessionalRejected ProfessionalStatus = "rejected"
)

type Professional struct {
	ID             string             `json:"id" bson:"id"`
	FirstName      string             `json:"first_name" bson:"first_name"`
	LastName       string             `json:"last_name" bson:"last_name"`
	Email          string             `json:"email" bson:"email"`
	Phone          string             `json:"phone" bson:"phone"`
	Specialization string             `json:"specialization" bson:"specialization"`
	Qualification  string             `json:"qualification" bson:"qualification"`
	ConsultingFees float64            `json:"consulting_fees" bson:"consulting_fees"`
	ProfilePhoto   string             `json:"profile_photo,omitempty" bson:"profile_photo,omitempty"`
	Subdomain      string             `json:"subdomain" bson:"subdomain"`
	Status         ProfessionalStatus `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

func (p *Professional) IsApproved() bool {
	return p.Status == ProfessionalApproved
}

func (p *Professional) FullName() string {
	return p.FirstName + " " + p.LastName
}
