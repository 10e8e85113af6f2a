package version

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X git.home.luguber.info/inful/mdbook-chapter-path/internal/version.Version=v1.0.0".
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// MDBookVersion is the mdBook release whose preprocessor protocol this build targets.
// A host reporting a different version still gets served, with a warning.
const MDBookVersion = "0.4.40"

// MatchesHost reports whether the host's mdbook_version equals MDBookVersion.
// An empty host version is treated as a match since older hosts omit it.
func MatchesHost(hostVersion string) bool {
	return hostVersion == "" || hostVersion == MDBookVersion
}
