package types

const (
	// AppName is the application name used in CLI help and user agent
	AppName = "codefetch"

	// Version is the application version
	Version = "0.1.0"
)
