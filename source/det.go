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

	"golang.org/x/crypto/salsa20"
)

// Det draws uniform values from a salsa20 keystream determined by a
// 32-byte key. Two Det sources created with the same key produce
// the same stream, which gives reproducible sampling without giving
// up keystream quality. Not safe for concurrent use.
type Det struct {
	key *[32]byte
	ctr uint64
}

// NewDet returns an instance of the Det source for the given key.
func NewDet(key *[32]byte) *Det {
	return &Det{key: key}
}

// Float64 returns the next uniform value in [0, 1) of the keystream.
func (d *Det) Float64() (float64, error) {
	in := make([]byte, 8)
	out := make([]byte, 8)
	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, d.ctr)
	d.ctr++

	salsa20.XORKeyStream(out, in, nonce, d.key)

	return bytesToFloat(out), nil
}

// NonzeroFloat64 returns the next uniform value in (0, 1) of the
// keystream.
func (d *Det) NonzeroFloat64() (float64, error) {
	return nonzero(d)
}
