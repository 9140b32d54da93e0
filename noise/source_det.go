/*
 * Copyright (c) 2020 The sempler authors
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

package noise

import (
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

const detBlockBytes = 4096

// DetSource is a deterministic random source reading a Salsa20
// keystream. The key fully determines the stream, so two sources
// built from the same key produce identical draws. It satisfies
// golang.org/x/exp/rand.Source and can drive any sampler in this
// package.
type DetSource struct {
	key   *[32]byte
	block uint64
	buf   []byte
	pos   int
}

// NewDetSource returns an instance of DetSource generating a
// pseudo-random stream determined by key.
func NewDetSource(key *[32]byte) *DetSource {
	return &DetSource{key: key}
}

// Uint64 returns the next 8 bytes of the keystream as an integer.
func (s *DetSource) Uint64() uint64 {
	if s.pos+8 > len(s.buf) {
		s.refill()
	}

	v := binary.LittleEndian.Uint64(s.buf[s.pos : s.pos+8])
	s.pos += 8

	return v
}

// Seed restarts the stream at keystream block seed. Seed(0) rewinds
// the source to its initial state.
func (s *DetSource) Seed(seed uint64) {
	s.block = seed
	s.buf = nil
	s.pos = 0
}

func (s *DetSource) refill() {
	in := make([]byte, detBlockBytes) // input is initialized to zeros
	out := make([]byte, detBlockBytes)

	nonce := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonce, s.block)

	salsa20.XORKeyStream(out, in, nonce, s.key)

	s.block++
	s.buf = out
	s.pos = 0
}
