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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/openconfig/ygot/ygot"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"
	"gopkg.in/yaml.v2"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

const (
	opPut    = "put"
	opMerge  = "merge"
	opDelete = "delete"
)

type changeSet struct {
	Changes []*change `yaml:"changes,omitempty"`
}

// change is a single edit of a change file. The data of put and merge
// comes either inline or from a file relative to the change file.
type change struct {
	Operation string `yaml:"operation,omitempty"`
	Path      string `yaml:"path,omitempty"`
	File      string `yaml:"file,omitempty"`
	Data      string `yaml:"data,omitempty"`

	path tree.Path
	data *tree.Node
}

var changesFile string
var concurrency int64

var applyCmd = &cobra.Command{
	Use:          "apply",
	Short:        "apply the changes of a change file in order, within one transaction",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		changes, err := loadChanges(cmd.Context(), changesFile, concurrency)
		if err != nil {
			return err
		}
		return runTx(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context, tx *netconf.WriteTx) error {
			for i, ch := range changes {
				if err := ch.apply(ctx, tx); err != nil {
					return fmt.Errorf("change %d (%s %s) failed: %w", i, ch.Operation, ch.Path, err)
				}
			}
			log.Infof("applied %d changes", len(changes))
			return nil
		})
	},
}

func init() {
	applyCmd.Flags().StringVarP(&changesFile, "file", "f", "", "yaml change file")
	applyCmd.Flags().Int64VarP(&concurrency, "concurrency", "", 4, "max number of data files read in parallel")
	applyCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(applyCmd)
}

// loadChanges reads the change file and prepares all its changes.
// Data files are read concurrently, the order of the changes is kept.
func loadChanges(ctx context.Context, file string, concurrency int64) ([]*change, error) {
	file, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	cs := new(changeSet)
	err = yaml.Unmarshal(b, cs)
	if err != nil {
		return nil, fmt.Errorf("failed parsing change file %s: %w", file, err)
	}
	if len(cs.Changes) == 0 {
		return nil, fmt.Errorf("change file %s holds no changes", file)
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	baseDir := filepath.Dir(file)
	errs := make([]error, len(cs.Changes))
	wg := new(sync.WaitGroup)
	sem := semaphore.NewWeighted(concurrency)
	for i, ch := range cs.Changes {
		if ch == nil {
			errs[i] = fmt.Errorf("change %d: empty", i)
			continue
		}
		err := sem.Acquire(ctx, 1)
		if err != nil {
			errs[i] = err
			break
		}
		wg.Add(1)
		go func(i int, ch *change) {
			defer wg.Done()
			defer sem.Release(1)
			if err := ch.parse(baseDir); err != nil {
				errs[i] = fmt.Errorf("change %d: %w", i, err)
			}
		}(i, ch)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cs.Changes, nil
}

// parse validates the change and loads its path and data.
// Relative data files are resolved against baseDir.
func (c *change) parse(baseDir string) error {
	var err error
	c.path, err = tree.ParsePath(c.Path)
	if err != nil {
		return err
	}
	switch c.Operation {
	case opDelete:
		if c.File != "" || c.Data != "" {
			return fmt.Errorf("delete of %s takes no data", c.Path)
		}
		return nil
	case opPut, opMerge:
	default:
		return fmt.Errorf("unknown operation %q, must be one of %s, %s, %s", c.Operation, opPut, opMerge, opDelete)
	}

	switch {
	case c.File != "" && c.Data != "":
		return fmt.Errorf("%s of %s: file and data are mutually exclusive", c.Operation, c.Path)
	case c.Data != "":
		c.data, err = tree.ParseXML(c.Data)
	case c.File != "":
		c.data, err = readData(resolve(baseDir, c.File))
	default:
		return fmt.Errorf("%s of %s requires data", c.Operation, c.Path)
	}
	if err != nil {
		return err
	}
	if last, _ := c.path.Last(); c.data.Name.Name != last.Name.Name {
		canonical, _ := ygot.PathToString(tree.ToGNMIPath(c.path))
		return fmt.Errorf("data element %q does not match the last element of %s", c.data.Name.Name, canonical)
	}
	// path keys must share the namespace of the data key leaves,
	// otherwise the key leaves are sent twice
	if ns := c.data.Name.Namespace; ns != "" {
		c.path, err = netconf.NamespaceNormalizer{Namespace: ns}.ToWirePath(c.path)
		if err != nil {
			return err
		}
	}
	last, _ := c.path.Last()
	for _, pred := range last.Predicates {
		if k := c.data.Child(pred.Key); k != nil && k.Value != pred.Value {
			return fmt.Errorf("data key %s=%s does not match %s", pred.Key.Name, k.Value, c.Path)
		}
	}
	return nil
}

func resolve(baseDir, file string) string {
	if baseDir == "" || filepath.IsAbs(file) || strings.HasPrefix(file, "~") {
		return file
	}
	return filepath.Join(baseDir, file)
}
