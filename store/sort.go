package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	Ascending  = 1
	Descending = -1
)

// SortField orders a listing by one document field.
type SortField struct {
	Field     string
	Direction int
}

func Asc(field string) SortField  { return SortField{Field: field, Direction: Ascending} }
func Desc(field string) SortField { return SortField{Field: field, Direction: Descending} }

// sortDoc turns fields into an ordered sort document. Order of fields is significant.
func sortDoc(fields []SortField) (bson.D, error) {
	doc := make(bson.D, 0, len(fields))
	for _, f := range fields {
		if f.Field == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidSort)
		}
		if f.Direction != Ascending && f.Direction != Descending {
			return nil, fmt.Errorf("%w: direction %d for %q", ErrInvalidSort, f.Direction, f.Field)
		}
		doc = append(doc, bson.E{Key: f.Field, Value: f.Direction})
	}
	return doc, nil
}
