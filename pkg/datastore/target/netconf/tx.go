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
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
	"github.com/iptecharch/netconf-writer/pkg/utils"
)

// WriteTx is a write only transaction against the configuration of a single device.
//
// Put, Merge and Delete send one edit-config each and block until it is answered,
// so edits reach the device in call order. Commit and Submit return immediately.
// A WriteTx has a single owner, concurrent calls of its methods are not supported.
type WriteTx struct {
	id              string
	device          string
	rpc             RPC
	normalizer      Normalizer
	target          types.TargetDatastore
	rollbackOnError bool
	// editsSent counts the edit-config requests issued, successful or not.
	editsSent int
	// state is written by the commit continuation, hence atomic.
	state   atomic.Int32
	log     *log.Entry
	metrics *Metrics
}

type TxOption func(*WriteTx)

// WithLogger sets the logger of the transaction. The device and tx fields are added to it.
func WithLogger(l *log.Entry) TxOption {
	return func(t *WriteTx) {
		t.log = l
	}
}

// WithMetrics makes the transaction count its remote calls in m.
func WithMetrics(m *Metrics) TxOption {
	return func(t *WriteTx) {
		t.metrics = m
	}
}

// WithNormalizer sets the normalizer applied to paths and data before building requests.
func WithNormalizer(n Normalizer) TxOption {
	return func(t *WriteTx) {
		t.normalizer = n
	}
}

// NewWriteTx creates an open transaction. Edits target the candidate datastore if
// candidateSupported, the running datastore otherwise. If rollbackOnErrorSupported,
// every edit-config asks the device to roll back the whole edit on error.
func NewWriteTx(device string, rpc RPC, candidateSupported, rollbackOnErrorSupported bool, opts ...TxOption) *WriteTx {
	t := &WriteTx{
		id:              fmt.Sprintf("%s/%s", device, uuid.New().String()),
		device:          device,
		rpc:             rpc,
		normalizer:      IdentityNormalizer{},
		target:          types.TargetDatastoreFor(candidateSupported),
		rollbackOnError: rollbackOnErrorSupported,
	}
	for _, o := range opts {
		o(t)
	}
	if t.log == nil {
		t.log = log.NewEntry(log.StandardLogger())
	}
	t.log = t.log.WithFields(log.Fields{"device": device, "tx": t.id})
	t.state.Store(int32(types.TransactionStateOpen))
	return t
}

// Identifier returns the unique id of the transaction.
func (t *WriteTx) Identifier() string {
	return t.id
}

func (t *WriteTx) State() types.TransactionState {
	return types.TransactionState(t.state.Load())
}

// Target returns the datastore the edits are applied to.
func (t *WriteTx) Target() types.TargetDatastore {
	return t.target
}

// TargetNode returns the target element used in the edit-config requests.
func (t *WriteTx) TargetNode() *tree.Node {
	return TargetNode(t.target == types.TargetDatastoreCandidate)
}

// Put replaces the data at path with data.
func (t *WriteTx) Put(ctx context.Context, store types.LogicalDatastoreType, path tree.Path, data *tree.Node) error {
	if store != types.LogicalDatastoreConfiguration {
		return fmt.Errorf("%w: can put only configuration, not %s", ErrInvalidArgument, store)
	}
	if err := t.checkOpen(); err != nil {
		return err
	}
	edit, err := t.editStructure(path, pointer.To(types.ModifyActionReplace), data)
	if err != nil {
		return err
	}
	return t.sendEditRPC(ctx, "put", path, edit, pointer.To(types.ModifyActionNone))
}

// Merge merges data into the configuration at path. The element carries no operation
// attribute, the device applies its default operation.
func (t *WriteTx) Merge(ctx context.Context, store types.LogicalDatastoreType, path tree.Path, data *tree.Node) error {
	if store != types.LogicalDatastoreConfiguration {
		return fmt.Errorf("%w: can merge only configuration, not %s", ErrInvalidArgument, store)
	}
	if err := t.checkOpen(); err != nil {
		return err
	}
	edit, err := t.editStructure(path, nil, data)
	if err != nil {
		return err
	}
	return t.sendEditRPC(ctx, "merge", path, edit, nil)
}

// Delete removes the configuration at path.
func (t *WriteTx) Delete(ctx context.Context, store types.LogicalDatastoreType, path tree.Path) error {
	if store != types.LogicalDatastoreConfiguration {
		return fmt.Errorf("%w: can delete only configuration, not %s", ErrInvalidArgument, store)
	}
	if err := t.checkOpen(); err != nil {
		return err
	}
	edit, err := t.editStructure(path, pointer.To(types.ModifyActionDelete), nil)
	if err != nil {
		return err
	}
	return t.sendEditRPC(ctx, "delete", path, edit, pointer.To(types.ModifyActionNone))
}

// Cancel discards the changes of a transaction that was not committed yet.
// It returns false once a commit has been requested, or if the changes could not be discarded.
func (t *WriteTx) Cancel(ctx context.Context) bool {
	state := t.State()
	switch {
	case state.CommitIssued():
		t.log.Debugf("cannot cancel transaction in state %s", state)
		return false
	case state == types.TransactionStateCancelled:
		return true
	}
	if t.editsSent > 0 && !t.discardChanges(ctx) {
		return false
	}
	t.state.CompareAndSwap(int32(types.TransactionStateOpen), int32(types.TransactionStateCancelled))
	t.log.Info("transaction cancelled")
	return true
}

// Commit requests the commit of all the changes sent so far.
// The returned future fails only if no answer could be obtained from the device.
// A commit rejected by the device yields an unsuccessful result with the device's errors.
func (t *WriteTx) Commit(ctx context.Context) *utils.Future[*types.RPCResult[types.TransactionStatus]] {
	if !t.state.CompareAndSwap(int32(types.TransactionStateOpen), int32(types.TransactionStateCommitRequested)) {
		return utils.CompletedFuture[*types.RPCResult[types.TransactionStatus]](nil,
			fmt.Errorf("%w: cannot commit transaction %s in state %s", ErrTransactionClosed, t.id, t.State()))
	}
	t.log.Info("committing changes on target")

	return utils.Then(t.rpc.InvokeRPC(ctx, qnCommit, CommitRequest()),
		func(res *types.RPCResult[*tree.Node], err error) (*types.RPCResult[types.TransactionStatus], error) {
			if err != nil {
				t.state.Store(int32(types.TransactionStateFailed))
				t.metrics.commit(resultTransport)
				t.log.Errorf("commit failed: %v", err)
				return nil, &TransportError{Device: t.device, Operation: qnCommit, Err: err}
			}
			result := translateResult(res, func(*tree.Node) types.TransactionStatus {
				return types.TransactionStatusCommitted
			})
			if !result.Successful {
				result.Value = types.TransactionStatusFailed
				t.state.Store(int32(types.TransactionStateFailed))
				t.metrics.commit(resultFailed)
				t.log.Errorf("commit rejected by device, errors: %s", types.ErrorsString(result.Errors))
				return result, nil
			}
			t.state.Store(int32(types.TransactionStateCommitted))
			t.metrics.commit(resultSuccess)
			t.log.Info("changes committed")
			return result, nil
		})
}

// Submit commits the transaction. Any failure, remote or local, is reported as *CommitFailedError.
func (t *WriteTx) Submit(ctx context.Context) *utils.Future[struct{}] {
	return utils.Then(t.Commit(ctx),
		func(res *types.RPCResult[types.TransactionStatus], err error) (struct{}, error) {
			if err != nil {
				return struct{}{}, &CommitFailedError{TransactionID: t.id, Err: err}
			}
			if !res.Successful {
				return struct{}{}, &CommitFailedError{
					TransactionID: t.id,
					Err:           &RPCFailedError{Device: t.device, Operation: qnCommit, Errors: res.Errors},
				}
			}
			return struct{}{}, nil
		})
}

func (t *WriteTx) checkOpen() error {
	if state := t.State(); state != types.TransactionStateOpen {
		return fmt.Errorf("%w: transaction %s is %s", ErrTransactionClosed, t.id, state)
	}
	return nil
}

func (t *WriteTx) editStructure(path tree.Path, operation *types.ModifyAction, data *tree.Node) (*tree.Node, error) {
	wirePath, err := t.normalizer.ToWirePath(path)
	if err != nil {
		return nil, fmt.Errorf("failed normalizing path %s: %w", path, err)
	}
	wireData, err := t.normalizer.ToWireData(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed normalizing data at %s: %w", path, err)
	}
	return BuildEditStructure(wirePath, operation, wireData)
}

// sendEditRPC sends the edit-config request and waits for its answer.
// Failed edits trigger a best effort discard of the pending changes.
func (t *WriteTx) sendEditRPC(ctx context.Context, operation string, path tree.Path, edit *tree.Node, defaultOperation *types.ModifyAction) error {
	req := BuildEditConfigRequest(edit, defaultOperation, t.target, t.rollbackOnError)

	t.editsSent++
	res, err := t.rpc.InvokeRPC(ctx, qnEditConfig, req).Get(ctx)
	if err != nil {
		t.metrics.edit(operation, resultTransport)
		// no discard if the caller gave up waiting, the edit may still be in flight
		if ctx.Err() == nil && !errors.Is(err, context.Canceled) {
			t.log.Warnf("error during %s at %s, discarding changes: %v", operation, path, err)
			t.discardChanges(ctx)
		}
		return &TransportError{Device: t.device, Operation: qnEditConfig, Err: err}
	}

	result := translateResult(res, func(*tree.Node) struct{} { return struct{}{} })
	if !result.Successful {
		t.metrics.edit(operation, resultFailed)
		t.log.Warnf("%s at %s rejected by device, discarding changes, errors: %s", operation, path, types.ErrorsString(result.Errors))
		t.discardChanges(ctx)
		return &RPCFailedError{Device: t.device, Operation: qnEditConfig, Path: path, Errors: result.Errors}
	}
	for _, w := range result.Errors {
		t.log.Warnf("%s at %s: %v", operation, path, w)
	}
	t.metrics.edit(operation, resultSuccess)
	t.log.Debugf("%s at %s applied to %s", operation, path, t.target)
	return nil
}

// discardChanges reverts the candidate datastore. The running datastore has no
// pending changes that could be discarded, false is returned for it.
func (t *WriteTx) discardChanges(ctx context.Context) bool {
	if t.target != types.TargetDatastoreCandidate {
		t.log.Debugf("no changes to discard on %s datastore", t.target)
		return false
	}
	res, err := t.rpc.InvokeRPC(ctx, qnDiscardChanges, DiscardChangesRequest()).Get(ctx)
	if err != nil {
		t.metrics.discard(resultTransport)
		t.log.Errorf("failed discarding pending changes: %v", err)
		return false
	}
	result := translateResult(res, func(*tree.Node) struct{} { return struct{}{} })
	if !result.Successful {
		t.metrics.discard(resultFailed)
		t.log.Errorf("device rejected discarding pending changes, errors: %s", types.ErrorsString(result.Errors))
		return false
	}
	t.metrics.discard(resultSuccess)
	return true
}
