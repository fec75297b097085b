/*
 * Castcheck - Optional downcast checking for compiler front ends
 *
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package common

import (
	"encoding/json"
	"fmt"
)

// LocationID is the canonical, comparable identity of a Location.
type LocationID string

// Location describes the origin of a program, e.g. a file.
type Location interface {
	fmt.Stringer
	// ID returns the canonical ID for this location.
	ID() LocationID
}

// LocationsMatch returns true if both locations are nil,
// or if both are non-nil and have the same ID.
func LocationsMatch(first, second Location) bool {
	if first == nil || second == nil {
		return first == nil && second == nil
	}
	return first.ID() == second.ID()
}

const StringLocationPrefix = "S"

// StringLocation
type StringLocation string

var _ Location = StringLocation("")

func (l StringLocation) ID() LocationID {
	return LocationID(fmt.Sprintf("%s.%s", StringLocationPrefix, string(l)))
}

func (l StringLocation) String() string {
	return string(l)
}

func (l StringLocation) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Type   string
		String string
	}{
		Type:   "StringLocation",
		String: string(l),
	})
}

// HasLocation is implemented by errors which know
// the location of the program they occurred in.
type HasLocation interface {
	ImportLocation() Location
}
