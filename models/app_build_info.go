// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries the build metadata injected by linker flags. It is
// printed on startup and shown on the settings page of the terminal UI.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the semantic version string of the build.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the build timestamp string.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the source-control commit hash used for the build.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// WithFallback returns a copy where every empty field is replaced by
// fallback, which is what binaries built without linker flags show.
func (a AppBuildInfo) WithFallback(fallback string) AppBuildInfo {
	for _, f := range []*string{&a.buildVersion, &a.buildDate, &a.buildCommit} {
		if *f == "" {
			*f = fallback
		}
	}
	return a
}
