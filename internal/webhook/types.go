package webhook

// Fixed notification texts sent on capability changes.
const (
	WelcomeTitle = "Welcome to Frames v2"
	WelcomeBody  = "Frame is now added to your client"

	EnabledTitle = "Ding ding ding"
	EnabledBody  = "Notifications are now enabled"

	PublicationTitlePrefix = "New post: "
)
