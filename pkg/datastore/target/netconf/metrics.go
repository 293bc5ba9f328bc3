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
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "netconf_writer"

	resultSuccess   = "success"
	resultFailed    = "failed"
	resultTransport = "transport_error"
)

// Metrics counts the remote calls issued by write transactions.
type Metrics struct {
	EditRequests *prometheus.CounterVec
	Commits      *prometheus.CounterVec
	Discards     *prometheus.CounterVec
}

// NewMetrics creates the transaction counters and registers them with reg, if reg is not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		EditRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "edit_requests_total",
			Help:      "Number of edit-config requests by operation and result.",
		}, []string{"operation", "result"}),
		Commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "commits_total",
			Help:      "Number of commit requests by result.",
		}, []string{"result"}),
		Discards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "discards_total",
			Help:      "Number of discard-changes attempts by result.",
		}, []string{"result"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.EditRequests, m.Commits, m.Discards} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) edit(operation, result string) {
	if m == nil {
		return
	}
	m.EditRequests.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) commit(result string) {
	if m == nil {
		return
	}
	m.Commits.WithLabelValues(result).Inc()
}

func (m *Metrics) discard(result string) {
	if m == nil {
		return
	}
	m.Discards.WithLabelValues(result).Inc()
}
