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

package netconf

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/pool"
	"github.com/iptecharch/netconf-writer/pkg/tree"
	"github.com/iptecharch/netconf-writer/pkg/utils"
)

type rpcCall struct {
	ctx    context.Context
	name   tree.QName
	input  *tree.Node
	future *RPCFuture
}

// DriverRPC implements RPC on top of a Driver. Calls are queued and executed
// one at a time in submission order by a single worker.
type DriverRPC struct {
	device  string
	driver  Driver
	xmlOpts *tree.XMLOptions

	queue *pool.Queue[*rpcCall]
	wg    sync.WaitGroup
	log   *log.Entry
}

// NewDriverRPC starts the worker serving d. Close stops it and closes d.
func NewDriverRPC(device string, d Driver, xmlOpts *tree.XMLOptions, logger *log.Entry) *DriverRPC {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	r := &DriverRPC{
		device:  device,
		driver:  d,
		xmlOpts: xmlOpts,
		queue:   pool.NewQueue[*rpcCall](),
		log:     logger.WithField("device", device),
	}
	r.wg.Add(1)
	go r.run()
	return r
}

func (r *DriverRPC) InvokeRPC(ctx context.Context, name tree.QName, input *tree.Node) *RPCFuture {
	f := utils.NewFuture[*types.RPCResult[*tree.Node]]()
	if err := ctx.Err(); err != nil {
		f.Complete(nil, err)
		return f
	}
	if input == nil || input.Name != name {
		f.Complete(nil, fmt.Errorf("%w: input of rpc %s must be a %s element", ErrInvalidArgument, name, name))
		return f
	}
	err := r.queue.Put(&rpcCall{ctx: ctx, name: name, input: input, future: f})
	if err != nil {
		f.Complete(nil, fmt.Errorf("%s: %w", r.device, err))
	}
	return f
}

// IsAlive reports whether the underlying session is still open.
func (r *DriverRPC) IsAlive() bool {
	return r.driver != nil && r.driver.IsAlive()
}

// Close rejects new calls, waits for the queued ones and closes the driver.
func (r *DriverRPC) Close() error {
	r.queue.Close()
	if n := r.queue.Len(); n > 0 {
		r.log.Debugf("closing, waiting for %d queued rpcs", n)
	}
	r.wg.Wait()
	return r.driver.Close()
}

func (r *DriverRPC) run() {
	defer r.wg.Done()
	for {
		call, ok := r.queue.Get()
		if !ok {
			return
		}
		// the caller gave up while the call was queued
		if err := call.ctx.Err(); err != nil {
			call.future.Complete(nil, err)
			continue
		}
		call.future.Complete(r.invoke(call))
	}
}

func (r *DriverRPC) invoke(call *rpcCall) (*types.RPCResult[*tree.Node], error) {
	content, err := tree.ToXMLString(call.input, r.xmlOpts)
	if err != nil {
		return nil, fmt.Errorf("failed encoding %s rpc: %w", call.name.Name, err)
	}
	r.log.Debugf("sending %s rpc: %s", call.name.Name, content)

	resp, err := r.driver.RPC(content)
	if err != nil {
		r.log.Errorf("%s rpc failed: %v", call.name.Name, err)
		return nil, err
	}
	r.log.Tracef("%s rpc reply: %s", call.name.Name, resp.DocAsString(false))
	return parseRPCReply(resp)
}
