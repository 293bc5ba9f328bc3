// Copyright 2024 Nokia
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
)

// commitCmd commits changes left uncommitted by earlier runs
var commitCmd = &cobra.Command{
	Use:          "commit",
	Short:        "commit the pending changes of the candidate datastore",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		noCommit = false
		return runTx(cmd.Context(), cmd.OutOrStdout(), func(context.Context, *netconf.WriteTx) error {
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(commitCmd)
}
