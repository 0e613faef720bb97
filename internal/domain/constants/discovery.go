// Package constants holds values shared across discovery layers.
package constants

const (
	// AllCategories is the category sentinel meaning "no category filter".
	AllCategories = "Todas"

	// DefaultPageSize is the nearby endpoints page size.
	DefaultPageSize = 20
	// MaxPageSize caps any requested page or feed limit.
	MaxPageSize = 100
	// DefaultFeedLimit is the offers feed limit when none is requested.
	DefaultFeedLimit = 20

	// NearbyCacheControl is sent on nearby responses.
	NearbyCacheControl = "public, s-maxage=60, stale-while-revalidate=300"
)
