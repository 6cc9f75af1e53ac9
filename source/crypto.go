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
	"crypto/rand"

	"github.com/pkg/errors"
)

// Crypto draws uniform values from the OS entropy pool via
// crypto/rand. It is safe for concurrent use.
type Crypto struct{}

// NewCrypto returns an instance of the Crypto source.
func NewCrypto() *Crypto {
	return &Crypto{}
}

// Float64 returns a fresh uniform value in [0, 1).
func (c *Crypto) Float64() (float64, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return 0, errors.Wrap(err, "error while sampling")
	}
	return bytesToFloat(b), nil
}

// NonzeroFloat64 returns a fresh uniform value in (0, 1).
func (c *Crypto) NonzeroFloat64() (float64, error) {
	return nonzero(c)
}
