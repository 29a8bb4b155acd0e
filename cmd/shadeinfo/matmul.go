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
)

// MatMulOptions holds the flags of the matmul command.
type MatMulOptions struct {
	Left  string
	Right string
}

// NewMatMulCommand creates the matmul command.
func NewMatMulCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatMulOptions{}

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "List the matrix product methods and their result shapes",
		Long: `List every (left, right) operand pair that has a product method.
A pair that is not listed does not compile.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes := lo.Filter(shade.MatMulShapes(), func(s shade.MatMulShape, _ int) bool {
				return (opts.Left == "" || s.Left == opts.Left) &&
					(opts.Right == "" || s.Right == opts.Right)
			})
			return write(cmd.OutOrStdout(), rootOpts.Format, shapes)
		},
	}

	cmd.Flags().StringVar(&opts.Left, "left", "", "only products with this left operand (e.g. Mat2x3, Vec4)")
	cmd.Flags().StringVar(&opts.Right, "right", "", "only products with this right operand")

	return cmd
}
