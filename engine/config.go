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

package engine

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// MAC algorithm names accepted in a Config.
const (
	MACHMACSHA256 = "hmac-sha256"
	MACPoly1305   = "poly1305"
)

const (
	// DefaultSecurityExponent is the soundness target applied when a
	// Config leaves it zero.
	DefaultSecurityExponent = 128
	// DefaultMaxDataLength sizes the MAC truncation when a Config leaves
	// it zero.
	DefaultMaxDataLength = 4 * 1024 * 1024
)

// Config selects the parameters of an Engine.
type Config struct {
	// NumShares is n, the number of shares per dealing.
	NumShares int `json:"numShares"`
	// Threshold is k, the number of shares needed for reconstruction.
	Threshold int `json:"threshold"`
	// SecurityExponent is the information-checking soundness target E;
	// forgeries succeed with probability at most 2^-E. Zero selects
	// DefaultSecurityExponent.
	SecurityExponent int `json:"securityExponent,omitempty"`
	// MaxDataLength bounds the secrets this engine will share; it feeds
	// the MAC tag-length computation. Zero selects DefaultMaxDataLength.
	MaxDataLength int `json:"maxDataLength,omitempty"`
	// MACAlgorithm selects the tag primitive; empty selects HMAC-SHA256.
	MACAlgorithm string `json:"macAlgorithm,omitempty"`
}

// withDefaults returns the config with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.SecurityExponent == 0 {
		c.SecurityExponent = DefaultSecurityExponent
	}
	if c.MaxDataLength == 0 {
		c.MaxDataLength = DefaultMaxDataLength
	}
	if c.MACAlgorithm == "" {
		c.MACAlgorithm = MACHMACSHA256
	}
	return c
}

// LoadConfig parses a YAML (or JSON) configuration document.
func LoadConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing engine config: %v", err)
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading engine config: %v", err)
	}
	return LoadConfig(data)
}
