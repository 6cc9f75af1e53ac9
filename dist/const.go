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

import (
	"github.com/pkg/errors"

	"github.com/fentec-project/randvar/source"
)

// Const is a degenerate generator returning the same value on every
// sample. It lets fixed numbers take part in composition alongside
// real distributions.
type Const float64

// Sample returns the constant value.
func (c Const) Sample(source.Source) (float64, error) {
	return float64(c), nil
}

// Func wraps a caller-supplied zero-argument generator as a Dist.
// The generator is invoked fresh on every sample.
type Func struct {
	gen func() float64
}

// NewFunc returns an instance of the Func generator. It requires a
// non-nil generator.
func NewFunc(gen func() float64) (*Func, error) {
	if gen == nil {
		return nil, errors.Wrap(ErrBadParam, "nil generator")
	}

	return &Func{gen: gen}, nil
}

// Sample invokes the generator and returns its result.
func (f *Func) Sample(source.Source) (float64, error) {
	return f.gen(), nil
}
