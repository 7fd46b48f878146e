package platform

import (
	"os"
	"runtime"
)

const OSWindows = "windows"

// Info captures the basics of the host this run is provisioning.
type Info struct {
	OS       string `yaml:"os"`
	Arch     string `yaml:"arch"`
	Hostname string `yaml:"hostname,omitempty"`
}

func GetPlatformInfo() Info {
	host, _ := os.Hostname()
	return Info{
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Hostname: host,
	}
}

func IsWindows() bool {
	return runtime.GOOS == OSWindows
}
