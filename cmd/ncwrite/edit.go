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
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

var dataFile string

var putCmd = &cobra.Command{
	Use:          "put PATH",
	Short:        "replace the configuration at PATH with the content of the data file",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], opPut)
	},
}

var mergeCmd = &cobra.Command{
	Use:          "merge PATH",
	Short:        "merge the content of the data file into the configuration at PATH",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], opMerge)
	},
}

var deleteCmd = &cobra.Command{
	Use:          "delete PATH",
	Short:        "delete the configuration at PATH",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEdit(cmd, args[0], opDelete)
	},
}

func init() {
	for _, c := range []*cobra.Command{putCmd, mergeCmd} {
		c.Flags().StringVarP(&dataFile, "file", "f", "", "xml file holding the element at PATH")
		c.MarkFlagRequired("file")
	}
	rootCmd.AddCommand(putCmd, mergeCmd, deleteCmd)
}

func runEdit(cmd *cobra.Command, p string, op string) error {
	ch := &change{Operation: op, Path: p, File: dataFile}
	if op == opDelete {
		ch.File = ""
	}
	if err := ch.parse(""); err != nil {
		return err
	}
	return runTx(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context, tx *netconf.WriteTx) error {
		return ch.apply(ctx, tx)
	})
}

// readData parses the xml data file at path.
func readData(path string) (*tree.Node, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := tree.ParseXML(string(b))
	if err != nil {
		return nil, fmt.Errorf("failed parsing data file %s: %w", path, err)
	}
	return n, nil
}

func (c *change) apply(ctx context.Context, tx *netconf.WriteTx) error {
	log.Debugf("%s %s", c.Operation, c.Path)
	switch c.Operation {
	case opPut:
		return tx.Put(ctx, types.LogicalDatastoreConfiguration, c.path, c.data)
	case opMerge:
		return tx.Merge(ctx, types.LogicalDatastoreConfiguration, c.path, c.data)
	case opDelete:
		return tx.Delete(ctx, types.LogicalDatastoreConfiguration, c.path)
	}
	return fmt.Errorf("unknown operation %q", c.Operation)
}
