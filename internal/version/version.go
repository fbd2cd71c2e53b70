package version

// These variables are overridden at build time using -ldflags.
// Keep sensible defaults for local development.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// String renders the build stamp for the version endpoint and the
// startup log.
func String() string {
	s := Version + " (" + Commit + ")"
	if Dirty == "true" {
		s += " dirty"
	}
	return s
}
