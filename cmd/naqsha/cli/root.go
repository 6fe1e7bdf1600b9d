// Copyright 2025 the original author or authors.
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

// Package cli holds the pieces shared by the naqsha subcommands.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RootCmd is the toplevel naqsha command; subcommands register
// themselves against it from their init functions.
var RootCmd = &cobra.Command{
	Use:   "naqsha",
	Short: "Tools for streaming OpenStreetMap XML documents",
	Long:  "Tools for streaming OpenStreetMap XML documents",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}
