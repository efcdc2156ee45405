package handler

import (
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Mods      int    `json:"mods"`
	ItemBases int    `json:"item_bases"`
}

// Build-time variables (injected via ldflags)
var (
	BuildTime = "unknown"
	GitCommit = "unset"
)

// CatalogStats reports the size of the loaded catalog
type CatalogStats interface {
	ModCount() int
	ItemBaseCount() int
}

// HandleVersion returns the configured version, build information and catalog size
func HandleVersion(version string, stats CatalogStats) http.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   version,
			GoVersion: runtime.Version(),
			BuildTime: BuildTime,
			GitCommit: GitCommit,
			Mods:      stats.ModCount(),
			ItemBases: stats.ItemBaseCount(),
		})
	}
}
