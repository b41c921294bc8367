package common

var version string

// GetVersion returns the current version of the app
func GetVersion() string {
	if version == "" {
		return "0.0.0-local"
	}
	return version
}

// SetVersion sets the version of the app from the build
func SetVersion(v string) {
	version = v
}
