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

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Source produces uniform random values. Float64 returns a fresh
// value in [0, 1) on every call; NonzeroFloat64 returns a fresh
// value in (0, 1), repeating the draw as long as it lands exactly
// on 0. Implementations are not safe for concurrent use unless
// their documentation says otherwise.
type Source interface {
	Float64() (float64, error)
	NonzeroFloat64() (float64, error)
}

// maxZeroDraws bounds the retries of a nonzero draw. A working
// source returns 0 with probability 2^-53 per draw, so hitting the
// bound means the source is broken, not unlucky.
const maxZeroDraws = 64

// floatBits is the number of random mantissa bits kept when turning
// 8 random bytes into a value in [0, 1).
const floatBits = 53

// bytesToFloat maps 8 uniformly random bytes to a uniform value in
// [0, 1), keeping the top floatBits bits of precision.
func bytesToFloat(b []byte) float64 {
	u := binary.LittleEndian.Uint64(b)
	return float64(u>>(64-floatBits)) / (1 << floatBits)
}

// nonzero implements NonzeroFloat64 on top of a Source's Float64.
func nonzero(s Source) (float64, error) {
	for i := 0; i < maxZeroDraws; i++ {
		u, err := s.Float64()
		if err != nil {
			return 0, err
		}
		if u > 0 {
			return u, nil
		}
	}
	return 0, errors.Wrapf(ErrZeroRun, "%d consecutive zero draws", maxZeroDraws)
}
