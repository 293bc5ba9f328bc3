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
package target

import (
	"context"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netconf-writer/pkg/config"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/driver/scrapligo"
)

// Target opens write transactions against a single device.
type Target interface {
	NewWriteTx() *netconf.WriteTx
	IsAlive() bool
	Close() error
}

type options struct {
	logger  *log.Entry
	metrics *netconf.Metrics
	driver  netconf.Driver
	dryRun  io.Writer
}

type Option func(*options)

func WithLogger(l *log.Entry) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithMetrics(m *netconf.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithDriver uses d instead of opening a scrapligo session.
func WithDriver(d netconf.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithDryRun makes the target print every request to w instead of connecting to the device.
func WithDryRun(w io.Writer) Option {
	return func(o *options) {
		o.dryRun = w
	}
}

func New(ctx context.Context, cfg *config.Config, opts ...Option) (Target, error) {
	if cfg == nil || cfg.SBI == nil {
		return nil, fmt.Errorf("missing sbi config")
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = log.NewEntry(log.StandardLogger())
	}
	if o.dryRun != nil {
		return newNoopTarget(ctx, cfg, o), nil
	}
	if o.driver == nil {
		d, err := scrapligo.NewScrapligoNetconfTarget(cfg.SBI)
		if err != nil {
			return nil, err
		}
		o.driver = d
	}
	return newNCTarget(ctx, cfg, o), nil
}
