// Package config provides environment-based configuration for camview.
// The viewer has no CLI surface; everything tunable comes from CAMVIEW_*
// environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
)

// Defaults for the capture side.
const (
	// DefaultFPS is the frame rate requested from the device. The request
	// is best-effort; drivers are free to ignore it.
	DefaultFPS = 10

	// MaxDeviceIndex bounds the device scan: indices 0..MaxDeviceIndex-1
	// are probed until one opens.
	MaxDeviceIndex = 10
)

// Device returns the capture device index from CAMVIEW_DEVICE.
// A negative return means "scan", which is the default.
func Device() int {
	if s := os.Getenv("CAMVIEW_DEVICE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			return n
		}
	}
	return -1
}

// FPS returns the requested frame rate from CAMVIEW_FPS or the default.
func FPS() int {
	if s := os.Getenv("CAMVIEW_FPS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return DefaultFPS
}

// Mirror reports whether the view starts horizontally mirrored,
// from CAMVIEW_MIRROR. Toggleable at runtime with the M key.
func Mirror() bool {
	switch os.Getenv("CAMVIEW_MIRROR") {
	case "1", "true", "yes":
		return true
	}
	return false
}

// LogLevel returns the log level from CAMVIEW_LOG_LEVEL or "info".
func LogLevel() string {
	if s := os.Getenv("CAMVIEW_LOG_LEVEL"); s != "" {
		return s
	}
	return "info"
}
