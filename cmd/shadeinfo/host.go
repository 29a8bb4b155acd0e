// Copyright 2025 go-shade Authors
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
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shade/internal/cpuinfo"
	"github.com/ajroetker/go-shade/shade"
)

// HostInfo describes where host-side shade code runs.
type HostInfo struct {
	Context   string            `json:"context" yaml:"context"`
	Arch      string            `json:"arch" yaml:"arch"`
	Target    string            `json:"target" yaml:"target"`
	ScalarEnv bool              `json:"scalar_env" yaml:"scalar_env"`
	Features  []cpuinfo.Feature `json:"features,omitempty" yaml:"features,omitempty"`
}

// NewHostCommand creates the host command.
func NewHostCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "host",
		Short:        "Describe the host execution context",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := HostInfo{
				Context:   shade.CurrentContext().String(),
				Arch:      runtime.GOARCH,
				Target:    cpuinfo.Target(),
				ScalarEnv: cpuinfo.ScalarEnv(),
				Features:  cpuinfo.Features(),
			}
			return write(cmd.OutOrStdout(), rootOpts.Format, info)
		},
	}
}
