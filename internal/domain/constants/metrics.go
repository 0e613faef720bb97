package constants

// Query labels recorded by the metrics recorder.
const (
	QueryNearby           = "nearby"
	QueryNearbyWithOffers = "nearby_with_offers"
	QueryFeedGeneral      = "feed_general"
	QueryFeedSubscribed   = "feed_subscribed"
	QueryFeedFilter       = "feed_filter"
)

// Feed degradation reasons.
const (
	DegradedSubscriptions  = "subscriptions"
	DegradedSubscribedList = "subscribed_query"
)
