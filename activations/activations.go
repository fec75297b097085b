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

package activations

import (
	"sort"
)

// Activation is a map of names to values,
// optionally backed by a parent activation
type Activation[T any] struct {
	entries map[string]T
	parent  *Activation[T]
}

func NewActivation[T any](parent *Activation[T]) *Activation[T] {
	return &Activation[T]{
		parent: parent,
	}
}

// Find returns the value for a given name in the activation.
// It returns the zero value if no value is found.
func (a *Activation[T]) Find(name string) (value T) {

	current := a

	for current != nil {

		if current.entries != nil {
			result, ok := current.entries[name]
			if ok {
				return result
			}
		}

		current = current.parent
	}

	return
}

// Set sets the given value for the given name in the activation
func (a *Activation[T]) Set(name string, value T) {
	if a.entries == nil {
		a.entries = map[string]T{}
	}

	a.entries[name] = value
}

// Names returns the sorted names of all values declared
// in the activation and its parents
func (a *Activation[T]) Names() []string {
	seen := map[string]struct{}{}

	var names []string

	for current := a; current != nil; current = current.parent {
		for name := range current.entries { //nolint:maprange
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// Activations is a stack of activation records.
// Each entry in the stack represents a new activation record.
//
// The current / most nested activation record can be found
// at the top of the stack (see function `Current`).
type Activations[T any] struct {
	activations []*Activation[T]
}

func NewActivations[T any](parent *Activation[T]) *Activations[T] {
	activations := &Activations[T]{}
	activations.PushNewWithParent(parent)
	return activations
}

// Current returns the current / most nested activation,
// which can be found at the top of the stack.
// It returns nil if there is no active activation.
func (a *Activations[T]) Current() *Activation[T] {
	count := len(a.activations)
	if count < 1 {
		return nil
	}
	return a.activations[count-1]
}

// Find returns the value for a given name,
// by searching through all activations,
// starting with the current one.
func (a *Activations[T]) Find(name string) (_ T) {
	current := a.Current()
	if current == nil {
		return
	}
	return current.Find(name)
}

// Set sets the value for a given name in the current activation.
// It pushes a new activation if there is none.
func (a *Activations[T]) Set(name string, value T) {
	current := a.Current()
	if current == nil {
		current = a.PushNewWithParent(nil)
	}

	current.Set(name, value)
}

// PushNewWithParent pushes a new empty activation
// to the top of the activation stack.
// The new activation has the given parent as its parent.
func (a *Activations[T]) PushNewWithParent(parent *Activation[T]) *Activation[T] {
	activation := NewActivation(parent)
	a.Push(activation)
	return activation
}

// PushNewWithCurrent pushes a new empty activation
// to the top of the activation stack.
// The new activation has the current activation as its parent.
func (a *Activations[T]) PushNewWithCurrent() {
	a.PushNewWithParent(a.Current())
}

// Push pushes the given activation
// onto the top of the activation stack.
func (a *Activations[T]) Push(activation *Activation[T]) {
	a.activations = append(
		a.activations,
		activation,
	)
}

// Pop removes the top-most activation from the activation stack.
func (a *Activations[T]) Pop() {
	count := len(a.activations)
	if count < 1 {
		return
	}
	lastIndex := count - 1
	a.activations[lastIndex] = nil
	a.activations = a.activations[:lastIndex]
}

// Depth returns the depth (size) of the activation stack.
func (a *Activations[T]) Depth() int {
	return len(a.activations)
}
