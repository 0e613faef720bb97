package entity

// RankedResult annotates an entity with its distance to the query center
// and the size of the full matching set of the query that produced it.
type RankedResult[T any] struct {
	Item       T
	DistanceKm float64
	TotalCount int64
}

// RankedPage is one page of a ranked query.
type RankedPage[T any] struct {
	Items      []RankedResult[T]
	Pagination Pagination
}

// TotalCountOf reads the total count repeated on every row.
// An empty page has a total of zero.
func TotalCountOf[T any](rows []RankedResult[T]) int64 {
	if len(rows) == 0 {
		return 0
	}

	return rows[0].TotalCount
}

// Feed is the composed offers feed for one request.
type Feed struct {
	General    []RankedResult[*Offer]
	Subscribed []*Offer
	Meta       OffsetMeta
}
