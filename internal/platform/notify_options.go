package platform

// Urgency maps to the freedesktop urgency hint.
type Urgency byte

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyCritical
)

// AppName is reported to notification daemons.
const AppName = "photoviewer"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// IconPath, when non-empty, points to an image the notification
	// center should show if the platform supports it.
	IconPath string
	Urgency  Urgency
	// TimeoutMS of 0 uses the platform default.
	TimeoutMS int32
}

func (o Options) timeout() int32 {
	if o.TimeoutMS <= 0 {
		return 5000
	}
	return o.TimeoutMS
}
