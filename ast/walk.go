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

package ast

type Walker interface {
	Walk(element Element) Walker
}

// Walk traverses an AST in depth-first order:
// It starts by calling walker.Walk(element);
// If the returned walker is nil,
// child elements are not walked.
// If the returned walker is not-nil,
// then this walker is walked for each child of the element,
// followed by a call of walk(nil) on the returned walker.
//
// The initial walker may not be nil.
func Walk(walker Walker, element Element) {
	if walker = walker.Walk(element); walker == nil {
		return
	}

	element.Walk(func(child Element) {
		Walk(walker, child)
	})

	walker.Walk(nil)
}

type inspector func(Element) bool

func (f inspector) Walk(element Element) Walker {
	if f(element) {
		return f
	}
	return nil
}

// Inspect traverses an AST in depth-first order:
// It starts by calling f(element); element must not be nil.
// If f returns true, Inspect invokes f recursively for each of the non-nil children of element,
// followed by a call of f(nil).
func Inspect(element Element, f func(Element) bool) {
	Walk(inspector(f), element)
}
