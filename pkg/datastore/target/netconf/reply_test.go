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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

func TestParseRPCReply(t *testing.T) {
	tests := []struct {
		name           string
		reply          string
		wantSuccessful bool
		wantErrors     []*types.RPCError
		wantErr        bool
	}{
		{
			name:           "ok",
			reply:          `<rpc-reply xmlns="urn:ietf:params:xml:ns:netconf:base:1.0" message-id="101"><ok/></rpc-reply>`,
			wantSuccessful: true,
		},
		{
			name: "errors in document order",
			reply: `<rpc-reply xmlns="urn:ietf:params:xml:ns:netconf:base:1.0" message-id="101">
  <rpc-error>
    <error-type>application</error-type>
    <error-tag>invalid-value</error-tag>
    <error-severity>error</error-severity>
    <error-app-tag>range</error-app-tag>
    <error-path>/interface[name='ethernet-1/1']/mtu</error-path>
    <error-message xml:lang="en">mtu out of range</error-message>
    <error-info><bad-element>mtu</bad-element></error-info>
  </rpc-error>
  <rpc-error>
    <error-type>protocol</error-type>
    <error-tag>operation-failed</error-tag>
    <error-severity>warning</error-severity>
  </rpc-error>
  <rpc-error>
    <error-type>rpc</error-type>
    <error-tag>lock-denied</error-tag>
    <error-info>12</error-info>
  </rpc-error>
</rpc-reply>`,
			wantErrors: []*types.RPCError{
				{
					Type:     types.ErrorTypeApplication,
					Tag:      "invalid-value",
					Severity: types.SeverityError,
					Message:  "mtu out of range",
					AppTag:   "range",
					Path:     "/interface[name='ethernet-1/1']/mtu",
					Info:     "<bad-element>mtu</bad-element>",
				},
				{
					Type:     types.ErrorTypeProtocol,
					Tag:      "operation-failed",
					Severity: types.SeverityWarning,
				},
				{
					Type:     types.ErrorTypeRPC,
					Tag:      "lock-denied",
					Severity: types.SeverityError,
					Info:     "12",
				},
			},
		},
		{
			name: "warnings only",
			reply: `<nc:rpc-reply xmlns:nc="urn:ietf:params:xml:ns:netconf:base:1.0">
  <nc:rpc-error>
    <nc:error-type>application</nc:error-type>
    <nc:error-tag>operation-not-supported</nc:error-tag>
    <nc:error-severity>warning</nc:error-severity>
  </nc:rpc-error>
  <nc:ok/>
</nc:rpc-reply>`,
			wantSuccessful: true,
			wantErrors: []*types.RPCError{
				{
					Type:     types.ErrorTypeApplication,
					Tag:      "operation-not-supported",
					Severity: types.SeverityWarning,
				},
			},
		},
		{
			name:    "not a reply",
			reply:   `<hello xmlns="urn:ietf:params:xml:ns:netconf:base:1.0"/>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := types.NewNetconfResponseFromString(tt.reply)
			require.NoError(t, err)

			got, err := parseRPCReply(resp)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantSuccessful, got.Successful)
			require.Equal(t, tt.wantErrors, got.Errors)
			if tt.wantSuccessful {
				require.Equal(t, tree.NewQName(tree.NcBase1_0, "rpc-reply"), got.Value.Name)
				require.NotNil(t, got.Value.Child(tree.NewQName(tree.NcBase1_0, "ok")))
			}
		})
	}
}

func TestParseRPCReply_empty(t *testing.T) {
	_, err := parseRPCReply(nil)
	require.Error(t, err)
	_, err = parseRPCReply(&types.NetconfResponse{})
	require.Error(t, err)
}

func TestTranslateResult(t *testing.T) {
	errs := remoteErrors()
	got := translateResult(types.FailedResult[*tree.Node](errs...), func(*tree.Node) int { return 1 })
	require.False(t, got.Successful)
	require.Zero(t, got.Value)
	require.Equal(t, remoteErrors(), got.Errors)
	for i := range errs {
		require.NotSame(t, errs[i], got.Errors[i])
	}

	ok := types.SuccessResult(okReply())
	ok.Errors = errs[1:2]
	got = translateResult(ok, func(n *tree.Node) int { return len(n.Children) })
	require.True(t, got.Successful)
	require.Equal(t, 1, got.Value)
	require.Equal(t, errs[1:2], got.Errors)

	got = translateResult(types.FailedResult[*tree.Node](), func(*tree.Node) int { return 1 })
	require.False(t, got.Successful)
	require.Empty(t, got.Errors)
}
