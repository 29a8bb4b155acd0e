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
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shade/shade"
	"github.com/ajroetker/go-shade/shade/intrinsics"
)

// MemberRow is one entry of the member registry.
type MemberRow struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Validity string `json:"validity" yaml:"validity"`
}

// NewMembersCommand creates the members command.
func NewMembersCommand(rootOpts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:          "members",
		Short:        "List the kernel-only members",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			members := lo.Filter(intrinsics.Members(), func(m shade.Member, _ int) bool {
				return category == "" || m.Category == category
			})
			rows := lo.Map(members, func(m shade.Member, _ int) MemberRow {
				return MemberRow{Name: m.Name, Category: m.Category, Validity: m.Validity.String()}
			})
			return write(cmd.OutOrStdout(), rootOpts.Format, rows)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only members of this category (derivative|wave|quad|barrier|thread-id)")

	return cmd
}
