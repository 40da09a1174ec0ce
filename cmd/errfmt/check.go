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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Load and compile a configuration and print its route table",
		Args:  cobra.NoArgs,
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	_, f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "enabled: %t\n", f.Enabled())

	summaries := f.Router().Summaries()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "no sources")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSOURCE\tTYPE\tFIELDS\tRULES")
	for i, s := range summaries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", i, s.Source, s.Type, strings.Join(s.Fields, ","), s.Rules)
	}
	return w.Flush()
}
