package platform

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender. Empty falls back to DefaultAppName.
	AppName string
	// IconPath, when non-empty, points to an image file shown alongside the
	// message where the notification center supports it.
	IconPath string
	// TimeoutMS is the display time; zero uses DefaultTimeoutMS.
	TimeoutMS int32
}

const (
	DefaultAppName   = "MixPaint"
	DefaultTimeoutMS = 5000
)

func (o Options) appName() string {
	if o.AppName == "" {
		return DefaultAppName
	}
	return o.AppName
}

func (o Options) timeout() int32 {
	if o.TimeoutMS <= 0 {
		return DefaultTimeoutMS
	}
	return o.TimeoutMS
}
