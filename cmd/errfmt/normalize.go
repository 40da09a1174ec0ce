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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"dirpx.dev/errfmt"
	"dirpx.dev/errfmt/adapter"
	"dirpx.dev/errfmt/apis"
	"dirpx.dev/errfmt/code"
	"dirpx.dev/errfmt/router"
)

func addCallFlags(cmd *cobra.Command) {
	cmd.Flags().String("source", "", "Upstream source name")
	cmd.Flags().String("type", string(router.Query), "Parent type of the field (Query or Mutation)")
	cmd.Flags().String("field", "", "Delegated root field")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("field")
}

func callFromFlags(cmd *cobra.Command) apis.Call {
	source, _ := cmd.Flags().GetString("source")
	typ, _ := cmd.Flags().GetString("type")
	field, _ := cmd.Flags().GetString("field")
	return apis.Call{SourceName: source, TypeName: typ, FieldName: field}
}

func newNormalizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Run an error message through the delegation pipeline and print the result",
		Args:  cobra.NoArgs,
		RunE:  runNormalize,
	}
	addCallFlags(cmd)
	cmd.Flags().StringP("message", "m", "", "Error message as raised by the upstream")
	cmd.Flags().String("code", "", "Code already attached to the error")
	cmd.Flags().Bool("status", false, "Also print the mapped HTTP and gRPC statuses")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

type normalizeOutput struct {
	Error apis.ErrorView `json:"error"`
	HTTP  int            `json:"http,omitempty"`
	GRPC  string         `json:"grpc,omitempty"`
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	_, f, err := loadFormatter(cmd)
	if err != nil {
		return err
	}
	msg, _ := cmd.Flags().GetString("message")
	raw, _ := cmd.Flags().GetString("code")
	withStatus, _ := cmd.Flags().GetBool("status")

	var opts []errfmt.Option
	if raw != "" {
		c, err := code.Parse(raw)
		if err != nil {
			return fmt.Errorf("--code: %w", err)
		}
		opts = append(opts, errfmt.WithCodeOption(c))
	}

	res := f.OnDelegate(cmd.Context(), callFromFlags(cmd), apis.Failure(errfmt.New(msg, opts...)))
	out := normalizeOutput{Error: adapter.ToView(res.Err)}
	if withStatus {
		st := f.Mapper().Status(res.Err.Code)
		out.HTTP = st.HTTP
		out.GRPC = code.Normalize(st.GRPC.String())
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
