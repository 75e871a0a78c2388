package utils

// Set at build time with -ldflags "-X .../common/utils.Version=x.y.z"
var Version = "0.1.0"

func GetVersion() string {
	return Version
}
