// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics counts topology operations by outcome.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/akhenakh/topology/topoerr"
)

// Outcome labels.
const (
	OutcomeOK                  = "ok"
	OutcomeUnsupportedGeometry = "unsupported_geometry"
	OutcomeBadRequest          = "bad_request"
	OutcomeReferenceNotFound   = "reference_not_found"
	OutcomeNotImplemented      = "not_implemented"
	OutcomeInvalidRequest      = "invalid_request"
	OutcomeMissingAttribute    = "missing_attribute"
	OutcomeError               = "error"
)

// Recorder counts operations. A nil Recorder records nothing.
type Recorder struct {
	operations *prometheus.CounterVec
}

// NewRecorder registers the operation counter on reg.
func NewRecorder(reg prometheus.Registerer, namespace string) (*Recorder, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total topology operations by outcome",
	}, []string{"operation", "outcome"})
	if err := reg.Register(ops); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return nil, err
		}
		ops = are.ExistingCollector.(*prometheus.CounterVec)
	}
	return &Recorder{operations: ops}, nil
}

// Observe counts one run of operation that finished with err.
func (r *Recorder) Observe(operation string, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome maps an operation error to its outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	switch topoerr.KindOf(err) {
	case topoerr.ErrUnsupportedGeometry:
		return OutcomeUnsupportedGeometry
	case topoerr.ErrBadRequest:
		return OutcomeBadRequest
	case topoerr.ErrReferenceNotFound:
		return OutcomeReferenceNotFound
	case topoerr.ErrNotImplemented:
		return OutcomeNotImplemented
	case topoerr.ErrInvalidRequest:
		return OutcomeInvalidRequest
	case topoerr.ErrMissingAttribute:
		return OutcomeMissingAttribute
	}
	return OutcomeError
}
