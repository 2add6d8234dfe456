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

// Package engine composes the sharing scheme, the decoder family, the MAC
// helper, and the information-checking layer into the public robust
// secret sharing API: Share splits a secret into verifiable shares,
// Reconstruct recovers it while filtering corrupted shares.
package engine

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/veilshare/veilshare/ic"
	"github.com/veilshare/veilshare/internal/decode"
	"github.com/veilshare/veilshare/internal/gf"
	"github.com/veilshare/veilshare/mac"
	"github.com/veilshare/veilshare/randsource"
	"github.com/veilshare/veilshare/shares"
	"github.com/veilshare/veilshare/sharing"
)

// Engine is the composition façade. A single Engine may be shared across
// goroutines when its RandomSource is safe for concurrent use (the default
// SecureRandomSource is).
type Engine struct {
	sharing   sharing.SecretSharing
	ic        ic.InformationChecking
	tagLength int
	keyLength int
}

// New creates an engine from the given configuration, drawing randomness
// from the platform CSPRNG.
func New(cfg Config) (*Engine, error) {
	rng, err := randsource.NewSecureRandomSource()
	if err != nil {
		return nil, err
	}
	return NewWithRandomSource(cfg, rng)
}

// NewWithRandomSource creates an engine with a caller-supplied randomness
// source. Intended for deterministic tests; production engines should use
// New.
func NewWithRandomSource(cfg Config, rng randsource.RandomSource) (*Engine, error) {
	cfg = cfg.withDefaults()

	var inner mac.Helper
	switch cfg.MACAlgorithm {
	case MACHMACSHA256:
		inner = mac.NewHMACSHA256Helper()
	case MACPoly1305:
		inner = mac.NewPoly1305Helper()
	default:
		return nil, fmt.Errorf("unknown MAC algorithm %q", cfg.MACAlgorithm)
	}

	t := ic.ComputeTagLength(cfg.MaxDataLength, cfg.Threshold, cfg.SecurityExponent)
	helper, err := mac.NewShortenedHelper(inner, t)
	if err != nil {
		return nil, err
	}

	factory := decode.NewBerlekampWelchFactory(gf.NewGF256())
	pss, err := sharing.NewShamirPSSWithDecoder(cfg.NumShares, cfg.Threshold, rng, factory)
	if err != nil {
		return nil, err
	}

	return &Engine{
		sharing:   pss,
		ic:        ic.NewCevallosUSRSS(pss, helper, rng),
		tagLength: helper.TagLength(),
		keyLength: helper.KeyLength(),
	}, nil
}

// TagLength returns the MAC tag length of this engine's shares. Needed to
// parse serialized VSSShares.
func (e *Engine) TagLength() int { return e.tagLength }

// KeyLength returns the MAC key length of this engine's shares. Needed to
// parse serialized VSSShares.
func (e *Engine) KeyLength() int { return e.keyLength }

// N returns the number of shares per dealing.
func (e *Engine) N() int { return e.sharing.N() }

// K returns the reconstruction threshold.
func (e *Engine) K() int { return e.sharing.K() }

// Share splits data into N verifiable shares: plain Shamir shares wrapped
// with pairwise MAC tags and keys.
func (e *Engine) Share(data []byte) ([]*shares.VSSShare, error) {
	plain, err := e.sharing.Share(data)
	if err != nil {
		return nil, err
	}
	glog.V(2).Infof("Split %d bytes into %d shares", len(data), len(plain))

	vss := make([]*shares.VSSShare, len(plain))
	for i, p := range plain {
		inner, ok := p.(*shares.ShamirShare)
		if !ok {
			panic(fmt.Sprintf("sharing produced a %T, expected ShamirShare", p))
		}
		if vss[i], err = shares.NewVSSShare(inner, len(plain)); err != nil {
			panic(fmt.Sprintf("wrapping share failed: %v", err))
		}
	}
	if err := e.ic.CreateTags(vss); err != nil {
		panic(fmt.Sprintf("error while creating tags: %v", err))
	}
	return vss, nil
}

// Reconstruct validates the presented shares against each other and
// recovers the secret from the accepted subset. It fails with a
// ReconstructionError carrying the accepted-share count when fewer than K
// shares survive validation.
func (e *Engine) Reconstruct(in []*shares.VSSShare) ([]byte, error) {
	valid, err := e.ic.CheckShares(in)
	if err != nil {
		return nil, &sharing.ReconstructionError{Reason: fmt.Sprintf("error in CheckShares: %v", err)}
	}
	if len(valid) < e.sharing.K() {
		return nil, &sharing.ReconstructionError{
			Reason:      fmt.Sprintf("%d valid shares of %d presented, threshold is %d", len(valid), len(in), e.sharing.K()),
			ValidShares: len(valid),
		}
	}
	glog.V(2).Infof("Reconstructing from %d of %d presented shares", len(valid), len(in))

	inner := make([]shares.Share, len(valid))
	for i, v := range valid {
		inner[i] = v.Inner()
	}
	return e.sharing.Reconstruct(inner)
}
