package version

// Version is overridden at release time via -ldflags "-X cvardump/internal/version.Version=...".
var Version = "dev"
