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
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/dbcrypt/enckeys/internal/log"
	"github.com/dbcrypt/enckeys/pkg/types"
	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFormat(t *testing.T) {
	g := NewGenerator(nil)
	key, err := g.GenerateKey()
	require.NoError(t, err)

	assert.Len(t, string(key), 44)
	assert.True(t, strings.HasSuffix(string(key), "="))
	assert.NotContains(t, string(key), "+")
	assert.NotContains(t, string(key), "/")

	raw, err := base64.URLEncoding.DecodeString(string(key))
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)
	assert.Equal(t, 32, KeySize)
}

func TestGenerateKeyFromReader(t *testing.T) {
	seed := bytes.Repeat([]byte{0xfb}, KeySize)
	g := NewGenerator(bytes.NewReader(seed))

	key, err := g.GenerateKey()
	require.NoError(t, err)
	assert.Equal(t, base64.URLEncoding.EncodeToString(seed), string(key))
	assert.Equal(t, "-_v7-_v7-_v7-_v7-_v7-_v7-_v7-_v7-_v7-_v7-_s=", string(key))
}

func TestGenerateFreshKeys(t *testing.T) {
	g := NewGenerator(nil)
	ctx := context.Background()

	a, err := g.Generate(ctx)
	require.NoError(t, err)
	b, err := g.Generate(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, a.DatabaseEncryptionKeyV1, b.DatabaseEncryptionKeyV1)
	assert.Equal(t, a.Fields()[1:], b.Fields()[1:])
	for _, cfg := range []*types.EncryptionKeyConfig{a, b} {
		assert.NotEmpty(t, cfg.DatabaseEncryptionKeyV1)
		assert.Equal(t, "v1", cfg.CurrentKeyVersion)
		assert.Equal(t, "", cfg.RotationDate)
		assert.Equal(t, types.MigrationStatusNone, cfg.MigrationStatus)
	}
}

func TestGeneratedKeyEncryptsFernetTokens(t *testing.T) {
	cfg, err := NewGenerator(nil).Generate(context.Background())
	require.NoError(t, err)

	k, err := fernet.DecodeKey(string(cfg.DatabaseEncryptionKeyV1))
	require.NoError(t, err)

	tok, err := fernet.EncryptAndSign([]byte("patient record"), k)
	require.NoError(t, err)
	msg := fernet.VerifyAndDecrypt(tok, time.Minute, []*fernet.Key{k})
	assert.Equal(t, "patient record", string(msg))
}

func TestGenerateUnavailableBackend(t *testing.T) {
	g := NewGenerator(iotest.ErrReader(errors.New("getrandom: function not implemented")))

	cfg, err := g.Generate(context.Background())
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailableCryptoBackend))
	assert.Contains(t, err.Error(), "getrandom: function not implemented")
}

func TestGenerateShortRead(t *testing.T) {
	g := NewGenerator(bytes.NewReader(make([]byte, KeySize-1)))
	_, err := g.GenerateKey()
	assert.ErrorIs(t, err, ErrUnavailableCryptoBackend)
}

func TestGenerateNeverLogsKey(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := log.WithLogger(context.Background(), log.NewLogrusLogger(buf, log.Trace))

	cfg, err := NewGenerator(nil).Generate(ctx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "version=v1 migration=none")
	assert.NotContains(t, buf.String(), string(cfg.DatabaseEncryptionKeyV1))
}
