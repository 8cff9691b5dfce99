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

// Package topology keeps polygons that reference shared boundary lines
// consistent when they are created, assembled or edited.
//
// A resolved polygon does not own its ring coordinates: its shell and each
// hole are described by ordered references to line features, each possibly
// traversed in reverse. The Engine decomposes self contained polygons into
// such a polygon and its lines, delegates the inverse to an Assembler, and
// turns before/after ring geometries into single point level edits applied
// by a LineEditor.
//
// Every operation is a pure function of its inputs. Input features are
// never mutated; results carry copies tagged with their resulting
// operation.
package topology

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/akhenakh/topology/assemble"
	"github.com/akhenakh/topology/config"
	"github.com/akhenakh/topology/feature"
	"github.com/akhenakh/topology/internal/logger"
	"github.com/akhenakh/topology/lineedit"
	"github.com/akhenakh/topology/metrics"
	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Assembler joins boundary lines into a polygon. The returned response
// starts with the polygon, followed by the lines.
type Assembler interface {
	Assemble(lines []feature.Feature, centroidHint *planar.Coord) (feature.Response, error)
}

// LineEditor applies a single point level edit to a boundary line and
// rebuilds the polygons in the request that reference it.
type LineEditor interface {
	ApplyEdit(req feature.LineEdit) (feature.Response, error)
}

// Options configures an Engine.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// NewID generates local ids for created lines. Defaults to
	// feature.NewLocalID.
	NewID func() string
}

// Engine runs topology operations against its collaborators.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	assembler Assembler
	lines     LineEditor
	log       *slog.Logger
	metrics   *metrics.Recorder
	newID     func() string
}

// NewEngine returns an engine using the given collaborators. A nil opts
// logs nothing and records no metrics.
func NewEngine(assembler Assembler, lines LineEditor, opts *Options) *Engine {
	if opts == nil {
		opts = &Options{}
	}
	e := &Engine{
		assembler: assembler,
		lines:     lines,
		log:       opts.Logger,
		metrics:   opts.Metrics,
		newID:     opts.NewID,
	}
	if e.log == nil {
		e.log = logger.Discard()
	}
	if e.newID == nil {
		e.newID = feature.NewLocalID
	}
	return e
}

// NewFromConfig builds an engine with the reference assembler and line
// editor, logging to stderr and registering its metrics on reg.
func NewFromConfig(cfg config.Config, reg prometheus.Registerer) (*Engine, error) {
	rec, err := metrics.NewRecorder(reg, cfg.MetricsNamespace)
	if err != nil {
		return nil, err
	}
	asm := assemble.NewAssembler(&assemble.Options{SnapRadius: cfg.SnapRadius})
	return NewEngine(asm, lineedit.New(), &Options{
		Logger:  logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr),
		Metrics: rec,
	}), nil
}

// observe logs and counts the outcome of operation on the feature id.
func (e *Engine) observe(operation, id string, err error) {
	e.metrics.Observe(operation, err)
	switch {
	case err == nil:
		e.log.Debug("topology operation", "operation", operation, "feature", id)
	case topoerr.IsUnsupported(err):
		e.log.Warn("topology operation not supported", "operation", operation, "feature", id, "error", err)
	default:
		e.log.Warn("topology operation rejected", "operation", operation, "feature", id, "error", err)
	}
}
