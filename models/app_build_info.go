// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const unknownBuildValue = "N/A"

// AppBuildInfo is the build metadata injected with -ldflags. Missing values
// read as "N/A".
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orUnknown(version),
		date:    orUnknown(date),
		commit:  orUnknown(commit),
	}
}

// Response is the body of GET /api/version.
func (a AppBuildInfo) Response() VersionResponse {
	return VersionResponse{
		Version: a.version,
		Date:    a.date,
		Commit:  a.commit,
	}
}

// String renders the banner printed on start.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
