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

package ic

import (
	"fmt"
	"math/bits"

	"github.com/golang/glog"
	"github.com/veilshare/veilshare/mac"
	"github.com/veilshare/veilshare/randsource"
	"github.com/veilshare/veilshare/shares"
	"github.com/veilshare/veilshare/sharing"
)

// SecurityExponent is the default soundness target: a corrupt holder
// forges a tag against an honest holder with probability at most
// 2^-SecurityExponent.
const SecurityExponent = 128

// ComputeTagLength returns the truncated tag length in bytes needed to
// bound the forgery probability over dataLength-byte messages among k
// reconstruction participants by 2^-e.
func ComputeTagLength(dataLength, k, e int) int {
	tagBits := e + log2Ceil(dataLength) + log2Ceil(k)
	return (tagBits + 7) / 8
}

func log2Ceil(v int) int {
	if v <= 1 {
		return 0
	}
	return bits.Len(uint(v - 1))
}

// CevallosUSRSS is the MAC layer of the Cevallos et al. unconditionally
// secure robust secret sharing scheme. During dealing it cross-tags every
// share with every other holder's fresh key; during reconstruction a share
// is accepted once a majority of the presented peers verifies its tag.
// With at most t < k/3 corrupt holders the majority is always honest.
type CevallosUSRSS struct {
	sharing sharing.SecretSharing
	mac     mac.Helper
	rng     randsource.RandomSource
}

// NewCevallosUSRSS creates the information-checking layer on top of the
// given sharing scheme.
func NewCevallosUSRSS(s sharing.SecretSharing, helper mac.Helper, rng randsource.RandomSource) *CevallosUSRSS {
	return &CevallosUSRSS{sharing: s, mac: helper, rng: rng}
}

var _ InformationChecking = (*CevallosUSRSS)(nil)

func (c *CevallosUSRSS) String() string {
	return fmt.Sprintf("CevallosUSRSS(%d/%d)", c.sharing.N(), c.sharing.K())
}

// CreateTags implements InformationChecking. For every ordered pair
// (i, j), i != j, a fresh key k_ij tags share i; the tag lands in share
// i's MAC table and the key in share j's key table, so that holder j can
// verify holder i's claimed share later. Diagonal entries stay unset.
func (c *CevallosUSRSS) CreateTags(sh []*shares.VSSShare) error {
	for _, tagged := range sh {
		data := tagged.Inner().Serialize()
		for _, verifier := range sh {
			if verifier.ID() == tagged.ID() {
				continue
			}
			key := make([]byte, c.mac.KeyLength())
			c.rng.FillBytes(key)

			tag, err := c.mac.ComputeMAC(data, key)
			if err != nil {
				return fmt.Errorf("tagging share %d for peer %d: %v", tagged.ID(), verifier.ID(), err)
			}
			if err := tagged.SetTag(verifier.ID(), tag); err != nil {
				return err
			}
			if err := verifier.SetKey(tagged.ID(), key); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckShares implements InformationChecking. A share is accepted when at
// least ceil(m/2) of the m presented peers verify its tag; the self-pair
// does not count towards the tally.
func (c *CevallosUSRSS) CheckShares(sh []*shares.VSSShare) ([]*shares.VSSShare, error) {
	m := len(sh)
	required := (m + 1) / 2

	accepted := make([]*shares.VSSShare, 0, m)
	for _, candidate := range sh {
		data := candidate.Inner().Serialize()
		okCount := 0
		for _, verifier := range sh {
			if verifier.ID() == candidate.ID() {
				continue
			}
			key := verifier.Key(candidate.ID())
			tag := candidate.Tag(verifier.ID())
			if key == nil || tag == nil {
				continue
			}
			if c.mac.VerifyMAC(data, key, tag) {
				okCount++
			}
		}
		if okCount >= required {
			accepted = append(accepted, candidate)
		} else {
			glog.Warningf("Rejecting share %d: only %d of %d peers accept it (need %d)", candidate.ID(), okCount, m-1, required)
		}
	}
	return accepted, nil
}
