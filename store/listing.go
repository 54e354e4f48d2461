package store

type ListingStatus int

const (
	ListingFound ListingStatus = iota
	ListingEmpty
	ListingFailed
)

func (s ListingStatus) String() string {
	switch s {
	case ListingFound:
		return "found"
	case ListingEmpty:
		return "empty"
	case ListingFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Listing is the outcome of a name listing. An empty collection and a failed
// query are distinct statuses; Err is only set when Status is ListingFailed.
type Listing struct {
	Status ListingStatus
	Names  []string
	Err    error
}

func NewListing(names []string, err error) Listing {
	switch {
	case err != nil:
		return Listing{Status: ListingFailed, Err: err}
	case len(names) == 0:
		return Listing{Status: ListingEmpty, Names: []string{}}
	default:
		return Listing{Status: ListingFound, Names: names}
	}
}
