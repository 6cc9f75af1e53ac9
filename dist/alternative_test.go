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

package dist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-project/randvar/dist"
	"github.com/fentec-project/randvar/source"
)

// frequency counts the share of draws from a equal to value.
func frequency(t *testing.T, a *dist.Alternative, src source.Source, value float64) float64 {
	hits := 0
	for i := 0; i < numSamples; i++ {
		v, err := a.Sample(src)
		require.NoError(t, err)
		if v == value {
			hits++
		}
	}
	return float64(hits) / numSamples
}

func TestAlternative_SelectionFrequency(t *testing.T) {
	a := dist.Either(dist.Const(0), dist.Const(1))
	require.Equal(t, 2, a.Len())
	require.Equal(t, float64(dist.DefaultWeight), a.Weight(0))

	src := source.NewPseudo(42)
	assert.InDelta(t, 0.5, frequency(t, a, src, 1), 0.03)

	// reweighting changes only subsequent draws
	require.NoError(t, a.SetWeight(1, 3))
	assert.InDelta(t, 0.75, frequency(t, a, src, 1), 0.03)
}

// The selection walk subtracts weights in insertion order and the
// first arm driving the remainder to or below zero wins, so with
// two unit weights a draw of exactly one half still selects the
// first arm.
func TestAlternative_InsertionOrder(t *testing.T) {
	a := dist.Either(dist.Const(1), dist.Const(2))

	v, err := a.Sample(seq(t, 0))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = a.Sample(seq(t, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	v, err = a.Sample(seq(t, 0.51))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAlternative_OrExtendsFlat(t *testing.T) {
	a := dist.Either(dist.Const(1), dist.Const(2)).Or(dist.Const(3))
	require.Equal(t, 3, a.Len())

	// with three unit weights, the last third selects the arm
	// appended by Or
	v, err := a.Sample(seq(t, 0.9))
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// Composites nest: an alternative can be an arm of another
// alternative and a child of a vector.
func TestAlternative_Nesting(t *testing.T) {
	inner := dist.Either(dist.Const(1), dist.Const(2))
	outer := dist.Either(inner, dist.Const(3))
	v := dist.Compose(dist.Const(0), outer)

	out, err := v.Sample(seq(t, 0.1, 0.6))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 0.0, out[0])
	// 0.1 selects the inner alternative, 0.6 selects its second arm
	assert.Equal(t, 2.0, out[1])
}

func TestAlternative_BadWeight(t *testing.T) {
	a := dist.Either(dist.Const(1), dist.Const(2))

	assert.ErrorIs(t, a.SetWeight(0, 0), dist.ErrBadParam)
	assert.ErrorIs(t, a.SetWeight(0, -2), dist.ErrBadParam)
	assert.ErrorIs(t, a.SetWeight(5, 1), dist.ErrBadParam)
	assert.ErrorIs(t, a.SetWeight(-1, 1), dist.ErrBadParam)
}

func TestAlternative_Empty(t *testing.T) {
	var a dist.Alternative
	_, err := a.Sample(source.NewPseudo(42))
	assert.ErrorIs(t, err, dist.ErrEmpty)
}
