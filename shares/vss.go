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

package shares

import "fmt"

// VSSShare wraps a plain share with the information-checking state of its
// holder: for every peer j, the tag that lets peer j verify this share
// (macs[j]) and the key to verify peer j's share in return (keys[j]).
//
// Both tables are dense arrays indexed by peer id in {1, ..., n}; index 0
// and the holder's own diagonal entry stay unused.
type VSSShare struct {
	inner *ShamirShare
	macs  [][]byte
	keys  [][]byte
}

// NewVSSShare wraps a plain share for a dealing among n holders.
func NewVSSShare(inner *ShamirShare, n int) (*VSSShare, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: inner share must not be nil", ErrInvalidParameters)
	}
	if n < 1 || n > 255 {
		return nil, fmt.Errorf("%w: number of holders must be in 1..255, got %d", ErrInvalidParameters, n)
	}
	return &VSSShare{
		inner: inner,
		macs:  make([][]byte, n+1),
		keys:  make([][]byte, n+1),
	}, nil
}

// Inner returns the wrapped plain share.
func (v *VSSShare) Inner() *ShamirShare { return v.inner }

// ID implements Share.
func (v *VSSShare) ID() byte { return v.inner.ID() }

// Y implements Share.
func (v *VSSShare) Y() []byte { return v.inner.Y() }

// NumPeers returns n, the number of holders in the dealing.
func (v *VSSShare) NumPeers() int { return len(v.macs) - 1 }

func (v *VSSShare) String() string {
	return fmt.Sprintf("VSSShare{id: %d, len: %d, n: %d}", v.ID(), len(v.Y()), v.NumPeers())
}

func (v *VSSShare) checkPeer(peer byte) error {
	if int(peer) < 1 || int(peer) > v.NumPeers() {
		return fmt.Errorf("%w: peer id %d outside 1..%d", ErrInvalidParameters, peer, v.NumPeers())
	}
	return nil
}

// Tag returns the MAC tag that peer can verify this share with, or nil if
// none was stored.
func (v *VSSShare) Tag(peer byte) []byte {
	if v.checkPeer(peer) != nil {
		return nil
	}
	return v.macs[peer]
}

// SetTag stores the MAC tag for the given peer.
func (v *VSSShare) SetTag(peer byte, tag []byte) error {
	if err := v.checkPeer(peer); err != nil {
		return err
	}
	v.macs[peer] = tag
	return nil
}

// Key returns the MAC key this holder verifies peer's share with, or nil
// if none was stored.
func (v *VSSShare) Key(peer byte) []byte {
	if v.checkPeer(peer) != nil {
		return nil
	}
	return v.keys[peer]
}

// SetKey stores the MAC key for verifying the given peer's share.
func (v *VSSShare) SetKey(peer byte, key []byte) error {
	if err := v.checkPeer(peer); err != nil {
		return err
	}
	v.keys[peer] = key
	return nil
}

// Serialize encodes the share in its canonical wire format: the inner
// share followed by
//
//	[u8 n] [n entries of tagLength MAC bytes] [n entries of keyLength key bytes]
//
// Unset entries (the diagonal in particular) are emitted as zeros. Entries
// whose length disagrees with the configured tag or key length are
// rejected.
func (v *VSSShare) Serialize(tagLength, keyLength int) ([]byte, error) {
	n := v.NumPeers()
	out := v.inner.Serialize()
	out = append(out, byte(n))
	var err error
	if out, err = appendTable(out, v.macs, tagLength, "mac"); err != nil {
		return nil, err
	}
	return appendTable(out, v.keys, keyLength, "key")
}

func appendTable(out []byte, table [][]byte, entryLen int, what string) ([]byte, error) {
	zero := make([]byte, entryLen)
	for peer := 1; peer < len(table); peer++ {
		entry := table[peer]
		if entry == nil {
			entry = zero
		}
		if len(entry) != entryLen {
			return nil, fmt.Errorf("%w: %s for peer %d has %d bytes, want %d", ErrInvalidParameters, what, peer, len(entry), entryLen)
		}
		out = append(out, entry...)
	}
	return out, nil
}

// ParseVSSShare decodes the canonical wire format. The tag and key lengths
// are not part of the encoding; they are determined by the engine
// configuration the share was produced under. All-zero entries parse as
// unset.
func ParseVSSShare(data []byte, tagLength, keyLength int) (*VSSShare, error) {
	inner, rest, err := parseShamirShare(data)
	if err != nil {
		return nil, err
	}
	if len(rest) < 1 {
		return nil, fmt.Errorf("%w: missing holder count", ErrInvalidParameters)
	}
	n := int(rest[0])
	rest = rest[1:]
	if want := n * (tagLength + keyLength); len(rest) != want {
		return nil, fmt.Errorf("%w: MAC tables need %d bytes, got %d", ErrInvalidParameters, want, len(rest))
	}

	share, err := NewVSSShare(inner, n)
	if err != nil {
		return nil, err
	}
	for peer := 1; peer <= n; peer++ {
		if entry, ok := readEntry(rest, peer, tagLength); ok {
			share.macs[peer] = entry
		}
	}
	rest = rest[n*tagLength:]
	for peer := 1; peer <= n; peer++ {
		if entry, ok := readEntry(rest, peer, keyLength); ok {
			share.keys[peer] = entry
		}
	}
	return share, nil
}

func readEntry(table []byte, peer, entryLen int) ([]byte, bool) {
	entry := table[(peer-1)*entryLen : peer*entryLen]
	allZero := true
	for _, b := range entry {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, false
	}
	return append([]byte(nil), entry...), true
}
