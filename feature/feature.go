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

// Package feature models the features exchanged with the topology engine:
// points, boundary lines and polygons that reference their boundary lines
// by local id.
//
// Feature is a value type. Methods named With* return a modified copy and
// never touch the receiver, so a caller's feature is never altered behind
// its back.
package feature

import (
	"github.com/google/uuid"

	"github.com/akhenakh/topology/planar"
	"github.com/akhenakh/topology/topoerr"
)

// Operation tags what happened, or is requested to happen, to a feature.
type Operation int

const (
	// OperationNone means no operation tag is present.
	OperationNone Operation = iota
	Create
	Replace
	Erase
)

func (o Operation) String() string {
	switch o {
	case OperationNone:
		return "None"
	case Create:
		return "Create"
	case Replace:
		return "Replace"
	case Erase:
		return "Erase"
	}
	return "Unknown"
}

// Identification is the identity block of a feature.
type Identification struct {
	LocalID   string
	Namespace string
	VersionID string
}

// Feature is a geometry with identity, an operation tag and, for polygons,
// references to its boundary lines.
type Feature struct {
	Identification *Identification
	Geometry       planar.Geometry
	Operation      Operation
	// References is only meaningful when Geometry is a Polygon.
	References *References
}

// New returns a feature with the given geometry and local id. An empty id
// leaves the feature without an identification block.
func New(g planar.Geometry, localID string) Feature {
	f := Feature{Geometry: g}
	if localID != "" {
		f.Identification = &Identification{LocalID: localID}
	}
	return f
}

// NewLocalID returns a fresh globally unique local id.
func NewLocalID() string {
	return uuid.NewString()
}

// LocalID returns the feature's local id. A feature without an
// identification block has no id and no error; an identification block
// without an id is malformed and yields ErrMissingAttribute.
func (f Feature) LocalID() (string, error) {
	if f.Identification == nil {
		return "", nil
	}
	if f.Identification.LocalID == "" {
		return "", topoerr.MissingAttribute("identification block without local id")
	}
	return f.Identification.LocalID, nil
}

// ID returns the local id, or "" when the feature has none.
func (f Feature) ID() string {
	if f.Identification == nil {
		return ""
	}
	return f.Identification.LocalID
}

// WithLocalID returns a copy of f with the given local id.
func (f Feature) WithLocalID(id string) Feature {
	out := f.Clone()
	if out.Identification == nil {
		out.Identification = &Identification{}
	}
	out.Identification.LocalID = id
	return out
}

// EnsureLocalID returns f unchanged if it already has a local id, and a
// copy carrying an id from newID otherwise. A nil newID uses NewLocalID.
func (f Feature) EnsureLocalID(newID func() string) Feature {
	if f.ID() != "" {
		return f
	}
	if newID == nil {
		newID = NewLocalID
	}
	return f.WithLocalID(newID())
}

// WithOperation returns a copy of f tagged with op.
func (f Feature) WithOperation(op Operation) Feature {
	out := f.Clone()
	out.Operation = op
	return out
}

// WithGeometry returns a copy of f with the given geometry.
func (f Feature) WithGeometry(g planar.Geometry) Feature {
	out := f.Clone()
	out.Geometry = g
	return out
}

// Exterior returns a copy of the shell references.
func (f Feature) Exterior() []Reference {
	if f.References == nil {
		return nil
	}
	return cloneRefs(f.References.Exterior)
}

// Interiors returns a copy of the hole references, one list per hole.
func (f Feature) Interiors() [][]Reference {
	if f.References == nil {
		return nil
	}
	return f.References.Clone().Interiors
}

// WithReferences returns a copy of f with the given shell and hole
// references.
func (f Feature) WithReferences(exterior []Reference, interiors [][]Reference) Feature {
	out := f.Clone()
	out.References = (&References{Exterior: exterior, Interiors: interiors}).Clone()
	return out
}

// WithReferenceIDs is WithReferences for signed reference strings.
func (f Feature) WithReferenceIDs(exterior []string, interiors [][]string) Feature {
	var ints [][]Reference
	if interiors != nil {
		ints = make([][]Reference, len(interiors))
		for i, hole := range interiors {
			ints[i] = ParseReferences(hole)
		}
	}
	return f.WithReferences(ParseReferences(exterior), ints)
}

// WithReferencedFeatures is WithReferences deriving the ids from the given
// line features. The references are not reversed.
func (f Feature) WithReferencedFeatures(exterior []Feature, interiors [][]Feature) (Feature, error) {
	ext, err := refsOf(exterior)
	if err != nil {
		return Feature{}, err
	}
	var ints [][]Reference
	if interiors != nil {
		ints = make([][]Reference, len(interiors))
		for i, hole := range interiors {
			if ints[i], err = refsOf(hole); err != nil {
				return Feature{}, err
			}
		}
	}
	return f.WithReferences(ext, ints), nil
}

func refsOf(fs []Feature) ([]Reference, error) {
	refs := make([]Reference, 0, len(fs))
	for _, l := range fs {
		id, err := l.LocalID()
		if err != nil {
			return nil, err
		}
		if id == "" {
			return nil, topoerr.MissingAttribute("referenced feature without local id")
		}
		refs = append(refs, Reference{TargetID: id})
	}
	return refs, nil
}

// Polygon returns the polygon geometry of f, if it has one.
func (f Feature) Polygon() (planar.Polygon, bool) {
	p, ok := f.Geometry.(planar.Polygon)
	return p, ok
}

// LineString returns the line geometry of f, if it has one.
func (f Feature) LineString() (planar.LineString, bool) {
	l, ok := f.Geometry.(planar.LineString)
	return l, ok
}

// IsEmpty reports whether f has no geometry or an empty one.
func (f Feature) IsEmpty() bool {
	return f.Geometry == nil || f.Geometry.IsEmpty()
}

// Clone returns a deep copy of f.
func (f Feature) Clone() Feature {
	out := f
	if f.Identification != nil {
		id := *f.Identification
		out.Identification = &id
	}
	if f.Geometry != nil {
		out.Geometry = f.Geometry.Clone()
	}
	out.References = f.References.Clone()
	return out
}

// Index maps local ids to features. Features without an id are skipped
// and the first feature wins on duplicate ids.
func Index(fs []Feature) map[string]Feature {
	m := make(map[string]Feature, len(fs))
	for _, f := range fs {
		id := f.ID()
		if id == "" {
			continue
		}
		if _, ok := m[id]; !ok {
			m[id] = f
		}
	}
	return m
}

// Find returns the first feature with the given local id.
func Find(fs []Feature, id string) (Feature, bool) {
	for _, f := range fs {
		if f.ID() == id {
			return f, true
		}
	}
	return Feature{}, false
}
