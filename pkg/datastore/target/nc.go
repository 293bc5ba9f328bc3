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

	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netconf-writer/pkg/config"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

type ncTarget struct {
	name       string
	rpc        *netconf.DriverRPC
	sbi        *config.SBI
	normalizer netconf.Normalizer
	metrics    *netconf.Metrics
	log        *log.Entry
}

func newNCTarget(_ context.Context, cfg *config.Config, o *options) *ncTarget {
	logger := o.logger.WithField("target", "netconf")
	return &ncTarget{
		name:       cfg.DeviceID,
		rpc:        netconf.NewDriverRPC(cfg.DeviceID, o.driver, xmlOptions(cfg.SBI), logger),
		sbi:        cfg.SBI,
		normalizer: normalizer(cfg.SBI),
		metrics:    o.metrics,
		log:        logger,
	}
}

func (t *ncTarget) NewWriteTx() *netconf.WriteTx {
	return newWriteTx(t.name, t.rpc, t.sbi, t.normalizer, t.metrics, t.log)
}

func (t *ncTarget) IsAlive() bool {
	return t.rpc.IsAlive()
}

func (t *ncTarget) Close() error {
	if t == nil || t.rpc == nil {
		return nil
	}
	return t.rpc.Close()
}

func newWriteTx(name string, rpc netconf.RPC, sbi *config.SBI, n netconf.Normalizer, m *netconf.Metrics, l *log.Entry) *netconf.WriteTx {
	return netconf.NewWriteTx(name, rpc,
		sbi.NetconfOptions.CandidateSupported(),
		sbi.NetconfOptions.RollbackOnError,
		netconf.WithNormalizer(n),
		netconf.WithMetrics(m),
		netconf.WithLogger(l),
	)
}

func xmlOptions(sbi *config.SBI) *tree.XMLOptions {
	return &tree.XMLOptions{
		HonorNamespace:         sbi.NetconfOptions.IncludeNS,
		OperationWithNamespace: sbi.NetconfOptions.OperationWithNamespace,
	}
}

func normalizer(sbi *config.SBI) netconf.Normalizer {
	if sbi.NetconfOptions.Namespace == "" {
		return netconf.IdentityNormalizer{}
	}
	return netconf.NamespaceNormalizer{Namespace: sbi.NetconfOptions.Namespace}
}
