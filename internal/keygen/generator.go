// Copyright © 2026 The enckeys Authors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package keygen

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/dbcrypt/enckeys/internal/log"
	"github.com/dbcrypt/enckeys/pkg/types"
	"github.com/fernet/fernet-go"
)

// ErrUnavailableCryptoBackend is returned when no secure random source can
// be read. It is not transient.
var ErrUnavailableCryptoBackend = errors.New("secure random key generation is unavailable")

// KeySize is the raw length of a Fernet key: a 16 byte signing key followed
// by a 16 byte AES-128 key.
const KeySize = len(fernet.Key{})

type Generator struct {
	rand io.Reader
}

// NewGenerator returns a Generator reading entropy from r, or from
// crypto/rand when r is nil.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate builds a new EncryptionKeyConfig around freshly generated key
// material. Every call reads new entropy.
func (g *Generator) Generate(ctx context.Context) (*types.EncryptionKeyConfig, error) {
	logger := log.LoggerFromContext(ctx)

	logger.Debug("generating fernet key")
	key, err := g.GenerateKey()
	if err != nil {
		return nil, err
	}

	cfg := types.NewEncryptionKeyConfig(key)
	logger.Debug(fmt.Sprintf("assembled key config: version=%s migration=%s", cfg.CurrentKeyVersion, cfg.MigrationStatus))
	return cfg, nil
}

// GenerateKey returns a Fernet key encoded as URL-safe base64 with padding.
func (g *Generator) GenerateKey() (types.KeyMaterial, error) {
	var k fernet.Key
	if _, err := io.ReadFull(g.rand, k[:]); err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnavailableCryptoBackend, err)
	}

	encoded := k.Encode()
	if _, err := fernet.DecodeKey(encoded); err != nil {
		return "", fmt.Errorf("generated key failed to decode: %w", err)
	}
	return types.KeyMaterial(encoded), nil
}
