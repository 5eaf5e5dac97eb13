package sheet

import "runtime/debug"

const version = "0.1.0" // version of sheet
const revisionSize = 7

// VersionInfo holds the sheet version and VCS info.
type VersionInfo struct {
	Version string
	// VCS info
	Revision string
	Time     string
}

// GetVersionInfo returns VersionInfo of sheet.
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version: version,
	}
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				info.Revision = setting.Value
				if len(info.Revision) >= revisionSize {
					info.Revision = info.Revision[:revisionSize]
				}
			case "vcs.time":
				info.Time = setting.Value
			}
		}
	}
	return info
}
