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

package feature

import "github.com/akhenakh/topology/planar"

// EditOperation is a point level or ring level edit.
type EditOperation int

const (
	Edit EditOperation = iota + 1
	Insert
	Delete
)

func (o EditOperation) String() string {
	switch o {
	case Edit:
		return "Edit"
	case Insert:
		return "Insert"
	case Delete:
		return "Delete"
	}
	return "Unknown"
}

// LineEdit asks a line editor to change one coordinate of Target.
type LineEdit struct {
	Target    Feature
	Operation EditOperation
	// Index is the position in Target's coordinates. For Insert the new
	// coordinate ends up at Index.
	Index int
	// Coord is the new coordinate for Edit and Insert.
	Coord planar.Coord
	// Affected holds the polygon being edited and any other features that
	// may reference Target or share its end nodes.
	Affected []Feature
}

// Response is the outcome of a topology operation: every affected feature
// tagged with its resulting operation.
type Response struct {
	Affected []Feature
	Valid    bool
}

// Polygons returns the polygon features of the response.
func (r Response) Polygons() []Feature {
	return r.filter(planar.KindPolygon)
}

// Lines returns the line features of the response.
func (r Response) Lines() []Feature {
	return r.filter(planar.KindLineString)
}

// WithOperation returns the affected features tagged with op.
func (r Response) WithOperation(op Operation) []Feature {
	var out []Feature
	for _, f := range r.Affected {
		if f.Operation == op {
			out = append(out, f)
		}
	}
	return out
}

func (r Response) filter(k planar.Kind) []Feature {
	var out []Feature
	for _, f := range r.Affected {
		if f.Geometry != nil && f.Geometry.Kind() == k {
			out = append(out, f)
		}
	}
	return out
}
