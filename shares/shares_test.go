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

package shares_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/veilshare/veilshare/shares"
)

func TestNewShamirShareRejectsZeroID(t *testing.T) {
	if _, err := shares.NewShamirShare(0, []byte{1, 2}); !errors.Is(err, shares.ErrInvalidParameters) {
		t.Errorf("NewShamirShare(0, ...) err = %v, want ErrInvalidParameters", err)
	}
}

func TestShamirShareSerializeFormat(t *testing.T) {
	s, err := shares.NewShamirShare(7, []byte{0xDE, 0xAD})
	if err != nil {
		t.Fatalf("NewShamirShare() err = %v, want nil", err)
	}
	want := []byte{7, 0, 0, 0, 2, 0xDE, 0xAD}
	if got := s.Serialize(); !bytes.Equal(got, want) {
		t.Errorf("Serialize() = %v, want %v", got, want)
	}
}

func TestShamirShareRoundTrip(t *testing.T) {
	s, err := shares.NewShamirShare(255, []byte{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewShamirShare() err = %v, want nil", err)
	}
	parsed, err := shares.ParseShamirShare(s.Serialize())
	if err != nil {
		t.Fatalf("ParseShamirShare() err = %v, want nil", err)
	}
	if got, want := parsed.ID(), s.ID(); got != want {
		t.Errorf("ID() = %d, want %d", got, want)
	}
	if diff := cmp.Diff(s.Y(), parsed.Y()); diff != "" {
		t.Errorf("Y() diff (-want +got):\n%s", diff)
	}
}

func TestParseShamirShareMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "short header", data: []byte{1, 0, 0}},
		{name: "truncated body", data: []byte{1, 0, 0, 0, 4, 0xAA}},
		{name: "trailing bytes", data: []byte{1, 0, 0, 0, 1, 0xAA, 0xBB}},
		{name: "zero id", data: []byte{0, 0, 0, 0, 1, 0xAA}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := shares.ParseShamirShare(tc.data); !errors.Is(err, shares.ErrInvalidParameters) {
				t.Errorf("ParseShamirShare(%v) err = %v, want ErrInvalidParameters", tc.data, err)
			}
		})
	}
}

func newVSS(t *testing.T, id byte, y []byte, n int) *shares.VSSShare {
	t.Helper()
	inner, err := shares.NewShamirShare(id, y)
	if err != nil {
		t.Fatalf("NewShamirShare() err = %v, want nil", err)
	}
	v, err := shares.NewVSSShare(inner, n)
	if err != nil {
		t.Fatalf("NewVSSShare() err = %v, want nil", err)
	}
	return v
}

func TestVSSShareTagKeyTables(t *testing.T) {
	v := newVSS(t, 2, []byte{9}, 3)

	if err := v.SetTag(1, []byte{0xAA, 0xBB}); err != nil {
		t.Fatalf("SetTag() err = %v, want nil", err)
	}
	if err := v.SetKey(3, []byte{0x01, 0x02, 0x03}); err != nil {
		t.Fatalf("SetKey() err = %v, want nil", err)
	}

	if got := v.Tag(1); !bytes.Equal(got, []byte{0xAA, 0xBB}) {
		t.Errorf("Tag(1) = %v, want [AA BB]", got)
	}
	if got := v.Key(3); !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("Key(3) = %v, want [01 02 03]", got)
	}
	if got := v.Tag(3); got != nil {
		t.Errorf("Tag(3) = %v, want nil", got)
	}

	if err := v.SetTag(0, []byte{1}); !errors.Is(err, shares.ErrInvalidParameters) {
		t.Errorf("SetTag(0) err = %v, want ErrInvalidParameters", err)
	}
	if err := v.SetTag(4, []byte{1}); !errors.Is(err, shares.ErrInvalidParameters) {
		t.Errorf("SetTag(4) err = %v, want ErrInvalidParameters", err)
	}
}

func TestVSSShareRoundTrip(t *testing.T) {
	const tagLen, keyLen = 2, 3
	v := newVSS(t, 2, []byte{0xDE, 0xAD}, 3)
	// diagonal entry (peer 2) stays unset on purpose
	for _, peer := range []byte{1, 3} {
		if err := v.SetTag(peer, []byte{peer, 0x10}); err != nil {
			t.Fatalf("SetTag() err = %v, want nil", err)
		}
		if err := v.SetKey(peer, []byte{peer, 0x20, 0x30}); err != nil {
			t.Fatalf("SetKey() err = %v, want nil", err)
		}
	}

	data, err := v.Serialize(tagLen, keyLen)
	if err != nil {
		t.Fatalf("Serialize() err = %v, want nil", err)
	}
	parsed, err := shares.ParseVSSShare(data, tagLen, keyLen)
	if err != nil {
		t.Fatalf("ParseVSSShare() err = %v, want nil", err)
	}

	if diff := cmp.Diff(v, parsed, cmp.AllowUnexported(shares.VSSShare{}, shares.ShamirShare{})); diff != "" {
		t.Errorf("round trip diff (-want +got):\n%s", diff)
	}
}

func TestVSSShareSerializeLengthMismatch(t *testing.T) {
	v := newVSS(t, 1, []byte{1}, 2)
	if err := v.SetTag(2, []byte{0xAA}); err != nil {
		t.Fatalf("SetTag() err = %v, want nil", err)
	}
	if _, err := v.Serialize(4, 4); !errors.Is(err, shares.ErrInvalidParameters) {
		t.Errorf("Serialize() with mismatched tag length err = %v, want ErrInvalidParameters", err)
	}
}

func TestParseVSSShareTruncatedTables(t *testing.T) {
	v := newVSS(t, 1, []byte{1}, 2)
	data, err := v.Serialize(2, 2)
	if err != nil {
		t.Fatalf("Serialize() err = %v, want nil", err)
	}
	if _, err := shares.ParseVSSShare(data[:len(data)-1], 2, 2); !errors.Is(err, shares.ErrInvalidParameters) {
		t.Errorf("ParseVSSShare() of truncated data err = %v, want ErrInvalidParameters", err)
	}
}
