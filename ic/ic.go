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

// Package ic implements information checking: MAC tags that let the
// holders of a shared secret verify each other's shares before a
// reconstruction consumes them.
package ic

import "github.com/veilshare/veilshare/shares"

// InformationChecking ties the shares of one dealing together with
// pairwise MACs and filters corrupted shares during reconstruction.
type InformationChecking interface {
	// CreateTags generates, for every ordered pair of distinct shares, a
	// fresh MAC key and tag so that each holder can later verify every
	// other holder's share. Executed by the dealer before distribution.
	CreateTags(sh []*shares.VSSShare) error
	// CheckShares runs the pairwise verification over the presented
	// shares and returns the accepted subset.
	CheckShares(sh []*shares.VSSShare) ([]*shares.VSSShare, error)
}
