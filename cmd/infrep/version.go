// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/json"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// modules whose versions change how matches and output expressions behave
var engineModules = []string{
	"github.com/hashicorp/hcl/v2",
	"github.com/zclconf/go-cty",
	"github.com/bmatcuk/doublestar/v4",
}

// VersionInfo represents the version information of the binary
type VersionInfo struct {
	Version   string            `json:"version"`
	Module    string            `json:"module"`
	GoVersion string            `json:"go_version"`
	Platform  string            `json:"platform"`
	Revision  string            `json:"revision,omitempty"`
	Time      string            `json:"time,omitempty"`
	Modified  bool              `json:"modified"`
	Engines   map[string]string `json:"engines,omitempty"`
}

// GetVersionInfo reads the version, vcs stamp and engine module versions from build info
func GetVersionInfo() *VersionInfo {
	info := &VersionInfo{
		Version:   "dev",
		Module:    "github.com/walteh/infrep",
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if buildInfo.Main.Path != "" {
		info.Module = buildInfo.Main.Path
	}
	if v := buildInfo.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			info.Revision = setting.Value
		case "vcs.time":
			info.Time = setting.Value
		case "vcs.modified":
			info.Modified = setting.Value == "true"
		}
	}
	for _, dep := range buildInfo.Deps {
		for _, want := range engineModules {
			if dep.Path != want {
				continue
			}
			if info.Engines == nil {
				info.Engines = make(map[string]string)
			}
			info.Engines[dep.Path] = dep.Version
		}
	}

	return info
}

// FormatVersion renders info for a terminal
func FormatVersion(info *VersionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 infrep version info:\n")
	fmt.Fprintf(&b, "Version:   %s\n", info.Version)
	fmt.Fprintf(&b, "Module:    %s\n", info.Module)
	if info.Revision != "" {
		modified := ""
		if info.Modified {
			modified = " (modified)"
		}
		fmt.Fprintf(&b, "Revision:  %s%s\n", info.Revision, modified)
		fmt.Fprintf(&b, "Built:     %s\n", info.Time)
	}
	fmt.Fprintf(&b, "Go:        %s\n", info.GoVersion)
	fmt.Fprintf(&b, "Platform:  %s\n", info.Platform)
	for _, mod := range engineModules {
		if v, ok := info.Engines[mod]; ok {
			fmt.Fprintf(&b, "Engine:    %s %s\n", mod, v)
		}
	}
	return b.String()
}

// FormatVersionJSON renders info as indented JSON
func FormatVersionJSON(info *VersionInfo) (string, error) {
	out, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out) + "\n", nil
}
