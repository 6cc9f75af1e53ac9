/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package dist

import "errors"

var (
	// ErrBadParam indicates a distribution parameter outside its
	// legal range, a nil generator, or an invalid weight or arm
	// index.
	ErrBadParam = errors.New("dist: parameter out of range")
	// ErrEmpty indicates sampling of a composite with no children.
	ErrEmpty = errors.New("dist: composite has no children")
	// ErrNoAccept indicates a rejection-sampling loop exhausted its
	// iteration budget. This cannot happen with a working uniform
	// source.
	ErrNoAccept = errors.New("dist: rejection sampling failed to accept")
)
