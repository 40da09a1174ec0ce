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

// Command errfmt checks error formatter configurations and runs messages
// through the normalization pipeline.
//
//	errfmt check --config errors.yaml
//	errfmt normalize --config errors.yaml --source users --type Query \
//	    --field getUser --message "404 NOT_FOUND: user missing"
//	errfmt explain --config errors.yaml --source users --type Query \
//	    --field getUser --code USER_NOT_FOUND
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dirpx.dev/errfmt/config"
	"dirpx.dev/errfmt/formatter"
	"dirpx.dev/errfmt/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "errfmt",
		Short:         "Inspect and exercise error formatter configurations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML configuration")
	_ = cmd.MarkPersistentFlagRequired("config")

	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newNormalizeCommand())
	cmd.AddCommand(newExplainCommand())
	return cmd
}

// loadFormatter loads the file named by --config and builds a formatter
// logging to the command's stderr.
func loadFormatter(cmd *cobra.Command) (*config.Config, *formatter.Formatter, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logCfg := cfg.LoggerConfig()
	logCfg.Output = cmd.ErrOrStderr()
	f, err := formatter.New(cfg, formatter.WithLogger(logger.NewLogger(logCfg)))
	if err != nil {
		return nil, nil, err
	}
	return cfg, f, nil
}
