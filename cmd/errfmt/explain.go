/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/router"
)

func newExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Show which rules govern a call site and how a code maps to statuses",
		Args:  cobra.NoArgs,
		RunE:  runExplain,
	}
	addCallFlags(cmd)
	cmd.Flags().String("code", "", "Code to resolve against the mapping")
	return cmd
}

func runExplain(cmd *cobra.Command, _ []string) error {
	_, f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	call := callFromFlags(cmd)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, f.Router().Explain(call.SourceName, router.TypeName(call.TypeName), call.FieldName))

	raw, _ := cmd.Flags().GetString("code")
	if raw == "" {
		return nil
	}
	c, err := code.Parse(raw)
	if err != nil {
		return fmt.Errorf("--code: %w", err)
	}
	fmt.Fprintln(out, f.Mapper().Explain(c))
	return nil
}
