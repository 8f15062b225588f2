package version

// Version is the release stamped into builds, overridden via ldflags.
var Version = "0.1.0"
