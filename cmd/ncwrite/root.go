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
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iptecharch/netconf-writer/pkg/config"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
)

var configFile string
var debug bool
var trace bool
var dryRun bool
var noCommit bool

var version = "dev"
var commit = ""

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "ncwrite",
	Short:        "write configuration to a netconf device within a single transaction",
	Version:      version + "-" + commit,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setLogLevel()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		cancel()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "set log level to DEBUG")
	rootCmd.PersistentFlags().BoolVarP(&trace, "trace", "t", false, "set log level to TRACE")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "", false, "print the netconf requests instead of sending them")
	rootCmd.PersistentFlags().BoolVarP(&noCommit, "no-commit", "", false, "leave the changes uncommitted")
	// accept --no_commit as well as --no-commit
	rootCmd.SetGlobalNormalizationFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
}

func setLogLevel() {
	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	if trace {
		log.SetLevel(log.TraceLevel)
	}
}

// runTx opens a transaction on the configured device and runs fn with it.
// The transaction is submitted unless --no-commit is set and cancelled if fn fails.
func runTx(ctx context.Context, out io.Writer, fn func(context.Context, *netconf.WriteTx) error) error {
	cfg, err := config.New(configFile)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics, err := netconf.NewMetrics(reg)
	if err != nil {
		return err
	}
	opts := []target.Option{
		target.WithLogger(log.NewEntry(log.StandardLogger())),
		target.WithMetrics(metrics),
	}
	if dryRun {
		opts = append(opts, target.WithDryRun(out))
	}
	t, err := target.New(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := t.Close(); err != nil {
			log.Errorf("failed closing target %s: %v", cfg.DeviceID, err)
		}
		logMetrics(reg)
	}()

	tx := t.NewWriteTx()
	log.Debugf("transaction %s opened on %s datastore", tx.Identifier(), tx.Target())
	err = fn(ctx, tx)
	if err != nil {
		if !tx.Cancel(context.WithoutCancel(ctx)) {
			log.Warnf("transaction %s could not be cancelled, pending changes may remain on %s", tx.Identifier(), cfg.DeviceID)
		}
		return err
	}
	if noCommit {
		fmt.Fprintf(out, "transaction %s left uncommitted\n", tx.Identifier())
		return nil
	}

	_, err = tx.Submit(ctx).Get(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "transaction %s committed\n", tx.Identifier())
	return nil
}

func logMetrics(g prometheus.Gatherer) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	mfs, err := g.Gather()
	if err != nil {
		log.Errorf("failed gathering metrics: %v", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			fields := log.Fields{}
			for _, l := range m.GetLabel() {
				fields[l.GetName()] = l.GetValue()
			}
			log.WithFields(fields).Debugf("%s %v", mf.GetName(), m.GetCounter().GetValue())
		}
	}
}
