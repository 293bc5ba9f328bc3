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

package scrapligo

import (
	"fmt"

	"github.com/beevik/etree"
	scraplinetconf "github.com/scrapli/scrapligo/driver/netconf"
	"github.com/scrapli/scrapligo/driver/options"
	"github.com/scrapli/scrapligo/util"

	"github.com/iptecharch/netconf-writer/pkg/config"
	"github.com/iptecharch/netconf-writer/pkg/datastore/target/netconf/types"
)

type ScrapligoNetconfTarget struct {
	driver *scraplinetconf.Driver
}

// NewScrapligoNetconfTarget inits a new ScrapligoNetconfTarget which is already connected to the target node
func NewScrapligoNetconfTarget(cfg *config.SBI) (*ScrapligoNetconfTarget, error) {
	d, err := scraplinetconf.NewDriver(cfg.Address, driverOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	err = d.Open()
	if err != nil {
		return nil, fmt.Errorf("failed opening netconf session to %s:%d: %w", cfg.Address, cfg.Port, err)
	}

	return &ScrapligoNetconfTarget{
		driver: d,
	}, nil
}

func driverOptions(cfg *config.SBI) []util.Option {
	opts := []util.Option{
		options.WithAuthNoStrictKey(),
		options.WithNetconfForceSelfClosingTags(),
		options.WithTransportType("standard"),
		options.WithPort(int(cfg.Port)),
		options.WithTimeoutOps(cfg.Timeout),
	}

	if cfg.Credentials != nil {
		opts = append(opts,
			options.WithAuthUsername(cfg.Credentials.Username),
			options.WithAuthPassword(cfg.Credentials.Password),
		)
		if cfg.Credentials.PrivateKey != "" {
			opts = append(opts,
				options.WithAuthPrivateKey(cfg.Credentials.PrivateKey, cfg.Credentials.Passphrase),
			)
		}
	}
	if cfg.NetconfOptions != nil && cfg.NetconfOptions.PreferredNCVersion != "" {
		opts = append(opts,
			options.WithNetconfPreferredVersion(cfg.NetconfOptions.PreferredNCVersion),
		)
	}
	return opts
}

func (snt *ScrapligoNetconfTarget) Close() error {
	return snt.driver.Close()
}

func (snt *ScrapligoNetconfTarget) IsAlive() bool {
	return snt.driver.Transport.IsAlive()
}

// RPC sends the operation element in content as a bare rpc. Replies carrying
// rpc-errors are returned as documents, only unreadable replies fail.
func (snt *ScrapligoNetconfTarget) RPC(content string) (*types.NetconfResponse, error) {
	resp, err := snt.driver.RPC(createFilterOption(content))
	if err != nil {
		return nil, err
	}

	// creating a new etree Document and parsing the netconf rpc result
	x := etree.NewDocument()
	err = x.ReadFromString(resp.Result)
	if err != nil {
		if resp.Failed != nil {
			return nil, resp.Failed
		}
		return nil, fmt.Errorf("failed parsing rpc-reply: %w", err)
	}

	return types.NewNetconfResponse(x), nil
}

// createFilterOption is a helper function that populates the Filter field for the internal Scrapligo RPC instantiation
func createFilterOption(filter string) util.Option {
	return func(x interface{}) error {
		oo, ok := x.(*scraplinetconf.OperationOptions)

		if !ok {
			return util.ErrIgnoredOption
		}
		oo.Filter = filter
		return nil
	}
}
