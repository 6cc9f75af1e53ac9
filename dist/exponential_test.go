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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-project/randvar/dist"
	"github.com/fentec-project/randvar/source"
)

func TestExponential(t *testing.T) {
	e, err := dist.NewExponential(2)
	require.NoError(t, err)

	src := source.NewPseudo(42)
	vec := draw(t, e, src, numSamples)
	for _, v := range vec {
		require.True(t, v > 0, "sample %v is not positive", v)
	}

	// mean and deviation of the distribution are both 1/rate
	testDistSampler(t, e, paramBounds{
		meanLow:  0.45,
		meanHigh: 0.55,
		devLow:   0.45,
		devHigh:  0.55,
	})
}

func TestExponential_Exact(t *testing.T) {
	e, err := dist.NewExponential(1)
	require.NoError(t, err)

	v, err := e.Sample(seq(t, 0.5))
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, v, 1e-12)
}

func TestExponential_BadParams(t *testing.T) {
	_, err := dist.NewExponential(0)
	assert.ErrorIs(t, err, dist.ErrBadParam)

	_, err = dist.NewExponential(-0.5)
	assert.ErrorIs(t, err, dist.ErrBadParam)
}
