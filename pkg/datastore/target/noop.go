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
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netconf-writer/pkg/config"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
	"github.com/iptecharch/netconf-writer/pkg/utils"
)

// noopTarget prints the requests instead of sending them. Every request succeeds.
type noopTarget struct {
	name       string
	sbi        *config.SBI
	normalizer netconf.Normalizer
	metrics    *netconf.Metrics
	log        *log.Entry

	m       *sync.Mutex
	out     io.Writer
	xmlOpts *tree.XMLOptions
}

func newNoopTarget(_ context.Context, cfg *config.Config, o *options) *noopTarget {
	xmlOpts := xmlOptions(cfg.SBI)
	xmlOpts.Indent = 2
	return &noopTarget{
		name:       cfg.DeviceID,
		sbi:        cfg.SBI,
		normalizer: normalizer(cfg.SBI),
		metrics:    o.metrics,
		log:        o.logger.WithField("target", "noop"),
		m:          new(sync.Mutex),
		out:        o.dryRun,
		xmlOpts:    xmlOpts,
	}
}

func (t *noopTarget) NewWriteTx() *netconf.WriteTx {
	return newWriteTx(t.name, t, t.sbi, t.normalizer, t.metrics, t.log)
}

func (t *noopTarget) InvokeRPC(ctx context.Context, name tree.QName, input *tree.Node) *netconf.RPCFuture {
	if err := ctx.Err(); err != nil {
		return utils.CompletedFuture[*types.RPCResult[*tree.Node]](nil, err)
	}
	s, err := tree.ToXMLString(input, t.xmlOpts)
	if err != nil {
		return utils.CompletedFuture[*types.RPCResult[*tree.Node]](nil, err)
	}
	t.m.Lock()
	defer t.m.Unlock()
	if _, err := fmt.Fprintln(t.out, s); err != nil {
		return utils.CompletedFuture[*types.RPCResult[*tree.Node]](nil, err)
	}
	reply := tree.NewContainer(tree.NewQName(tree.NcBase1_0, "rpc-reply"),
		tree.NewLeaf(tree.NewQName(tree.NcBase1_0, "ok"), ""))
	return utils.CompletedFuture(types.SuccessResult(reply), nil)
}

func (t *noopTarget) IsAlive() bool {
	return true
}

func (t *noopTarget) Close() error {
	return nil
}
