// Copyright 2026 the Veilshare Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package shares contains the share data model. A plain ShamirShare is one
// point per secret byte on the sharing polynomials; a VSSShare additionally
// carries the cross-MAC tags and keys of the information-checking layer.
package shares

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrInvalidParameters is returned when share data violates its invariants:
// a zero share id, mismatched lengths, or malformed serialized bytes.
var ErrInvalidParameters = errors.New("invalid parameters")

// Share is one holder's part of a split secret.
type Share interface {
	// ID is the share's x-coordinate, never zero.
	ID() byte
	// Y holds one polynomial evaluation per secret byte.
	Y() []byte
}

// ShamirShare is a plain share without any verification information.
type ShamirShare struct {
	id byte
	y  []byte
}

// NewShamirShare creates a share. The id must be non-zero: the sharing
// polynomials evaluate to the secret itself at zero.
func NewShamirShare(id byte, y []byte) (*ShamirShare, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: share id must not be zero", ErrInvalidParameters)
	}
	return &ShamirShare{id: id, y: y}, nil
}

// ID implements Share.
func (s *ShamirShare) ID() byte { return s.id }

// Y implements Share.
func (s *ShamirShare) Y() []byte { return s.y }

func (s *ShamirShare) String() string {
	return fmt.Sprintf("ShamirShare{id: %d, len: %d}", s.id, len(s.y))
}

// Serialize encodes the share in its canonical wire format:
//
//	[u8 id] [u32 big-endian length] [length bytes y]
func (s *ShamirShare) Serialize() []byte {
	out := make([]byte, 0, 5+len(s.y))
	out = append(out, s.id)
	out = binary.BigEndian.AppendUint32(out, uint32(len(s.y)))
	return append(out, s.y...)
}

// ParseShamirShare decodes the canonical wire format. Trailing bytes are
// rejected.
func ParseShamirShare(data []byte) (*ShamirShare, error) {
	share, rest, err := parseShamirShare(data)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after share", ErrInvalidParameters, len(rest))
	}
	return share, nil
}

func parseShamirShare(data []byte) (*ShamirShare, []byte, error) {
	if len(data) < 5 {
		return nil, nil, fmt.Errorf("%w: share header needs 5 bytes, got %d", ErrInvalidParameters, len(data))
	}
	length := binary.BigEndian.Uint32(data[1:5])
	if uint32(len(data)-5) < length {
		return nil, nil, fmt.Errorf("%w: share body needs %d bytes, got %d", ErrInvalidParameters, length, len(data)-5)
	}
	y := append([]byte(nil), data[5:5+length]...)
	share, err := NewShamirShare(data[0], y)
	if err != nil {
		return nil, nil, err
	}
	return share, data[5+length:], nil
}
