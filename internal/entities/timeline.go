package entities

// TimelineEntry is one step of the tracking view's status timeline.
type TimelineEntry struct {
	Status  OrderStatusType
	Label   string
	Done    bool
	Current bool
}
