package config

// version is set via ldflags at build time.
var version = "dev"

func Version() string {
	return version
}
