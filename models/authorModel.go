package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Author struct {
	ID          bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	FirstName   string        `json:"first_name" bson:"first_name" validate:"required,max=100"`
	FamilyName  string        `json:"family_name" bson:"family_name" validate:"required,max=100"`
	DateOfBirth *time.Time    `json:"date_of_birth,omitempty" bson:"date_of_birth,omitempty"`
	DateOfDeath *time.Time    `json:"date_of_death,omitempty" bson:"date_of_death,omitempty"`
}

// Name is the catalog display form, "family, first".
func (a Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return a.FamilyName + a.FirstName
	}
	return a.FamilyName + ", " + a.FirstName
}
