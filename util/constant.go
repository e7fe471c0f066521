package util

const (
	ProfileAddr   = "PROFILE_ADDR"
	ProfileEnable = "PROFILE_ENABLED"
)

const (
	DefaultProfileAddr = ":6060"
)

const (
	// CurrentFileName is the name of the actively written journal inside
	// the log directory.
	CurrentFileName = "current"
	// RotatedExt is the extension of rotated, immutable log files.
	RotatedExt = ".log"
)
