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

func TestConst(t *testing.T) {
	src := source.NewPseudo(42)
	c := dist.Const(2.5)

	for i := 0; i < 3; i++ {
		v, err := c.Sample(src)
		require.NoError(t, err)
		assert.Equal(t, 2.5, v)
	}
}

// The supplied generator is invoked fresh on every sample.
func TestFunc(t *testing.T) {
	calls := 0
	f, err := dist.NewFunc(func() float64 {
		calls++
		return float64(calls)
	})
	require.NoError(t, err)

	src := source.NewPseudo(42)
	for i := 1; i <= 3; i++ {
		v, err := f.Sample(src)
		require.NoError(t, err)
		assert.Equal(t, float64(i), v)
	}
	assert.Equal(t, 3, calls)
}

func TestFunc_Nil(t *testing.T) {
	_, err := dist.NewFunc(nil)
	assert.ErrorIs(t, err, dist.ErrBadParam)
}
