package utils

import (
	"runtime/debug"
	"strings"
)

type Version struct {
	Version   string
	GoVersion string
	Deps      []Dependency
}

// Dependency is a module compiled into the binary.
type Dependency struct {
	Path    string
	Version string
	// Replace is the "path version" of the replacement module, if any
	Replace string
}

func GetVersion() (version Version) {
	version.Version = "dev"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}

	for _, setting := range info.Settings {
		// This returns the current git hash
		if setting.Key == "vcs.revision" {
			version.Version = setting.Value
		}

		// This would show us if the current git tree is modified from the hash, possible changes that weren't committed
		if setting.Key == "vcs.modified" && setting.Value == "true" {
			version.Version += " (modified)"
		}
	}

	version.GoVersion = info.GoVersion

	for _, dep := range info.Deps {
		d := Dependency{Path: dep.Path, Version: dep.Version}
		if dep.Replace != nil {
			d.Replace = strings.TrimSpace(dep.Replace.Path + " " + dep.Replace.Version)
		}
		version.Deps = append(version.Deps, d)
	}

	return version
}

// Short returns the version with commit hashes cut to 7 characters.
func (v Version) Short() string {
	hash, modified, _ := strings.Cut(v.Version, " ")
	if len(hash) >= 40 {
		hash = hash[:7]
	}
	if modified != "" {
		return hash + " " + modified
	}
	return hash
}
