package watchseed

var (
	// Version of the watchseed.
	Version = "v0.1.0"
	// Build timestamp of the watchseed.
	Build = "n/a"
)
