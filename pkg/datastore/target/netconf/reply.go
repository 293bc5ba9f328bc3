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
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
	"github.com/iptecharch/netconf-writer/pkg/tree"
)

const rpcReplyTag = "rpc-reply"

// parseRPCReply turns an <rpc-reply> into an RPCResult. Every rpc-error is
// collected in document order, warnings included. The result is unsuccessful
// if at least one of them has error severity. The value is the reply element.
func parseRPCReply(resp *types.NetconfResponse) (*types.RPCResult[*tree.Node], error) {
	if resp == nil || resp.Doc == nil || resp.Doc.Root() == nil {
		return nil, fmt.Errorf("empty netconf response")
	}
	root := resp.Doc.Root()
	if root.Tag != rpcReplyTag {
		return nil, fmt.Errorf("unexpected netconf response root element %q, expected %q", root.Tag, rpcReplyTag)
	}

	var errs []*types.RPCError
	failed := false
	for _, rpcErr := range root.FindElements("//rpc-error") {
		e, err := parseRPCError(rpcErr)
		if err != nil {
			return nil, err
		}
		if !e.IsWarning() {
			failed = true
		}
		errs = append(errs, e)
	}
	if failed {
		return types.FailedResult[*tree.Node](errs...), nil
	}

	reply, err := tree.FromXML(root)
	if err != nil {
		return nil, fmt.Errorf("failed converting rpc-reply: %w", err)
	}
	result := types.SuccessResult(reply)
	result.Errors = errs
	return result, nil
}

func parseRPCError(e *etree.Element) (*types.RPCError, error) {
	result := &types.RPCError{Severity: types.SeverityError}
	for _, c := range e.ChildElements() {
		text := strings.TrimSpace(c.Text())
		switch c.Tag {
		case "error-type":
			result.Type = types.ParseErrorType(text)
		case "error-tag":
			result.Tag = text
		case "error-severity":
			if text != "" {
				result.Severity = text
			}
		case "error-app-tag":
			result.AppTag = text
		case "error-path":
			result.Path = text
		case "error-message":
			result.Message = text
		case "error-info":
			info, err := innerXML(c)
			if err != nil {
				return nil, fmt.Errorf("failed reading error-info: %w", err)
			}
			result.Info = info
		}
	}
	return result, nil
}

// innerXML serializes the child elements of e, or returns its text if it has none.
func innerXML(e *etree.Element) (string, error) {
	children := e.ChildElements()
	if len(children) == 0 {
		return strings.TrimSpace(e.Text()), nil
	}
	sb := &strings.Builder{}
	for _, c := range children {
		d := etree.NewDocumentWithRoot(c.Copy())
		s, err := d.WriteToString()
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
