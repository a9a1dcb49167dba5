package version

// Version is the semantic version of rpcdoc.
const Version = "0.1.0"

var (
	// VersionWithMeta is Version with build metadata, set by the linker.
	VersionWithMeta = Version + "-dev"

	// Commit and Date describe the git commit the binary was built from,
	// set by the linker.
	Commit string
	Date   string
)
