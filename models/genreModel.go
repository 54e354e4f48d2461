package models

import "go.mongodb.org/mongo-driver/v2/bson"

type Genre struct {
	ID   bson.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name" validate:"required,min=4,max=100"`
}

// NewGenre returns a validated genre ready for insertion.
func NewGenre(name string) (Genre, error) {
	g := Genre{Name: name}
	if err := Validate(g); err != nil {
		return Genre{}, err
	}
	return g, nil
}
