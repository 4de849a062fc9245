package config

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags records the release metadata linked into the binary
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
