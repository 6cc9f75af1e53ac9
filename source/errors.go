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

package source

import "errors"

var (
	// ErrDepleted indicates a scripted source ran out of values.
	ErrDepleted = errors.New("source: scripted sequence depleted")
	// ErrZeroRun indicates a nonzero draw saw only zeros for its
	// whole retry budget.
	ErrZeroRun = errors.New("source: uniform source keeps returning zero")
	// ErrBadValue indicates a scripted value outside [0, 1).
	ErrBadValue = errors.New("source: scripted value outside [0, 1)")
)
