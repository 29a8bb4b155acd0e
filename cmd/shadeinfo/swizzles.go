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
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-shade/shade"
)

// SwizzleOptions holds the flags of the swizzles command.
type SwizzleOptions struct {
	Width    int
	Alphabet string
	Mutable  bool
}

// SwizzleRow is one accessor of the swizzle table.
type SwizzleRow struct {
	Name     string `json:"name" yaml:"name"`
	Alphabet string `json:"alphabet" yaml:"alphabet"`
	Indices  []int  `json:"indices" yaml:"indices,flow"`
	Mutable  bool   `json:"mutable" yaml:"mutable"`
}

// SwizzleTable is the output of the swizzles command.
type SwizzleTable struct {
	Width     int          `json:"width" yaml:"width"`
	Count     int          `json:"count" yaml:"count"`
	Accessors []SwizzleRow `json:"accessors" yaml:"accessors"`
}

// NewSwizzlesCommand creates the swizzles command.
func NewSwizzlesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SwizzleOptions{}

	cmd := &cobra.Command{
		Use:          "swizzles",
		Short:        "List the swizzle accessors of a vector width",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := swizzleTable(opts)
			if err != nil {
				return err
			}
			return write(cmd.OutOrStdout(), rootOpts.Format, table)
		},
	}

	cmd.Flags().IntVarP(&opts.Width, "width", "w", 4, "source vector width (1-4)")
	cmd.Flags().StringVar(&opts.Alphabet, "alphabet", "", "only this alphabet (positional|color)")
	cmd.Flags().BoolVar(&opts.Mutable, "mutable", false, "only accessors that can be written through")

	return cmd
}

func swizzleTable(opts *SwizzleOptions) (*SwizzleTable, error) {
	if opts.Width < 1 || opts.Width > shade.MaxWidth {
		return nil, fmt.Errorf("invalid width %d: must be 1-%d", opts.Width, shade.MaxWidth)
	}
	if opts.Alphabet != "" {
		if _, ok := lo.Find(shade.Alphabets, func(a shade.Alphabet) bool { return a.String() == opts.Alphabet }); !ok {
			return nil, fmt.Errorf("invalid alphabet %q: must be positional or color", opts.Alphabet)
		}
	}

	selected := lo.Filter(shade.Table(opts.Width), func(s shade.Swizzle, _ int) bool {
		if opts.Alphabet != "" && s.Alphabet().String() != opts.Alphabet {
			return false
		}
		return !opts.Mutable || s.Mutable()
	})
	rows := lo.Map(selected, func(s shade.Swizzle, _ int) SwizzleRow {
		return SwizzleRow{
			Name:     s.Name(),
			Alphabet: s.Alphabet().String(),
			Indices:  s.Indices(),
			Mutable:  s.Mutable(),
		}
	})
	return &SwizzleTable{Width: opts.Width, Count: len(rows), Accessors: rows}, nil
}
