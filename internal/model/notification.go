package model

// NotificationDetails is the delivery capability a frame client hands over when a
// subscriber enables notifications. It is stored as-is in the subscriber registry.
type NotificationDetails struct {
	URL   string `json:"url" validate:"required,url"`
	Token string `json:"token" validate:"required"`
}

// Subscriber is one registry entry.
type Subscriber struct {
	ID      int64
	Details NotificationDetails
}

// Notification is a single push addressed to one subscriber.
type Notification struct {
	SubscriberID int64
	Title        string
	Body         string
	LinkSlug     string
}
