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

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/go-homedir"
)

const (
	ncCommitDatastoreRunning   = "running"
	ncCommitDatastoreCandidate = "candidate"

	ncVersion1_0 = "1.0"
	ncVersion1_1 = "1.1"
)

type SBI struct {
	// netconf address
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	Port    uint32 `yaml:"port,omitempty" json:"port,omitempty"`
	// Target SBI credentials
	Credentials    *Creds             `yaml:"credentials,omitempty" json:"credentials,omitempty"`
	NetconfOptions *SBINetconfOptions `yaml:"netconf-options,omitempty" json:"netconf-options,omitempty"`
	// Timeout of a single rpc
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
}

type SBINetconfOptions struct {
	// if true, the namespace is included as an `xmlns` attribute in the netconf payloads
	IncludeNS bool `yaml:"include-ns,omitempty" json:"include-ns,omitempty"`
	// sets the preferred NC version: 1.0 or 1.1
	PreferredNCVersion string `yaml:"preferred-nc-version,omitempty" json:"preferred-nc-version,omitempty"`
	// add a namespace when specifying a netconf operation such as 'delete' or 'remove'
	OperationWithNamespace bool `yaml:"operation-with-namespace,omitempty" json:"operation-with-namespace,omitempty"`
	// defines whether to write to running or use a candidate.
	CommitDatastore string `yaml:"commit-datastore,omitempty" json:"commit-datastore,omitempty"`
	// ask the device to roll back a failed edit-config as a whole
	RollbackOnError bool `yaml:"rollback-on-error,omitempty" json:"rollback-on-error,omitempty"`
	// default namespace of unqualified paths and data
	Namespace string `yaml:"namespace,omitempty" json:"namespace,omitempty"`
}

type Creds struct {
	Username string `yaml:"username,omitempty" json:"username,omitempty"`
	Password string `yaml:"password,omitempty" json:"password,omitempty"`
	// path to a ssh private key, ~ is expanded
	PrivateKey string `yaml:"private-key,omitempty" json:"private-key,omitempty"`
	Passphrase string `yaml:"passphrase,omitempty" json:"passphrase,omitempty"`
}

// CandidateSupported reports whether edits go to the candidate datastore.
func (o *SBINetconfOptions) CandidateSupported() bool {
	return o.CommitDatastore == ncCommitDatastoreCandidate
}

func (s *SBI) validateSetDefaults() error {
	var errs []error
	if s.Address == "" {
		errs = append(errs, errors.New("missing SBI address"))
	}
	if s.Port == 0 {
		s.Port = defaultNCPort
	}
	if s.Timeout <= 0 {
		s.Timeout = defaultTimeout
	}
	if s.NetconfOptions == nil {
		s.NetconfOptions = &SBINetconfOptions{}
	}
	if err := s.NetconfOptions.validateSetDefaults(); err != nil {
		errs = append(errs, err)
	}
	if s.Credentials != nil {
		if err := s.Credentials.validateSetDefaults(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (o *SBINetconfOptions) validateSetDefaults() error {
	switch o.CommitDatastore {
	case "":
		o.CommitDatastore = ncCommitDatastoreCandidate
	case ncCommitDatastoreRunning:
	case ncCommitDatastoreCandidate:
	default:
		return fmt.Errorf("unknown commit-datastore: %s. Must be one of %s, %s",
			o.CommitDatastore, ncCommitDatastoreCandidate, ncCommitDatastoreRunning)
	}
	switch o.PreferredNCVersion {
	case "", ncVersion1_0, ncVersion1_1:
	default:
		return fmt.Errorf("unknown preferred-nc-version: %s. Must be one of %s, %s",
			o.PreferredNCVersion, ncVersion1_0, ncVersion1_1)
	}
	return nil
}

func (c *Creds) validateSetDefaults() error {
	if c.PrivateKey == "" {
		return nil
	}
	p, err := homedir.Expand(c.PrivateKey)
	if err != nil {
		return fmt.Errorf("invalid private-key path: %w", err)
	}
	c.PrivateKey = p
	return nil
}
