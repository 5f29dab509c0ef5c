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

package types

import "github.com/hyperledger/firefly-common/pkg/fftypes"

// Field names as they appear in the vault secret. These must match the
// consuming application byte-for-byte.
const (
	FieldDatabaseEncryptionKeyV1 = "DATABASE_ENCRYPTION_KEY_V1"
	FieldCurrentKeyVersion       = "CURRENT_KEY_VERSION"
	FieldRotationDate            = "ROTATION_DATE"
	FieldMigrationStatus         = "MIGRATION_STATUS"
)

// FieldNames lists every field of an EncryptionKeyConfig in output order.
var FieldNames = []string{
	FieldDatabaseEncryptionKeyV1,
	FieldCurrentKeyVersion,
	FieldRotationDate,
	FieldMigrationStatus,
}

const KeyVersionV1 = "v1"

var (
	MigrationStatusNone       = fftypes.FFEnumValue("migrationstatus", "none")
	MigrationStatusInProgress = fftypes.FFEnumValue("migrationstatus", "in_progress")
	MigrationStatusCompleted  = fftypes.FFEnumValue("migrationstatus", "completed")
)

// EncryptionKeyConfig is the set of fields to merge into the application's
// vault secret. Struct field order is the output order.
type EncryptionKeyConfig struct {
	DatabaseEncryptionKeyV1 KeyMaterial    `json:"DATABASE_ENCRYPTION_KEY_V1" yaml:"DATABASE_ENCRYPTION_KEY_V1"`
	CurrentKeyVersion       string         `json:"CURRENT_KEY_VERSION" yaml:"CURRENT_KEY_VERSION"`
	RotationDate            string         `json:"ROTATION_DATE" yaml:"ROTATION_DATE"`
	MigrationStatus         fftypes.FFEnum `json:"MIGRATION_STATUS" yaml:"MIGRATION_STATUS"`
}

// NewEncryptionKeyConfig wraps freshly generated key material with the
// initial bookkeeping values of the versioning scheme.
func NewEncryptionKeyConfig(key KeyMaterial) *EncryptionKeyConfig {
	return &EncryptionKeyConfig{
		DatabaseEncryptionKeyV1: key,
		CurrentKeyVersion:       KeyVersionV1,
		RotationDate:            "",
		MigrationStatus:         MigrationStatusNone,
	}
}

type Field struct {
	Name  string
	Value string
}

// Fields returns the name/value pairs in output order, placeholders included.
func (c *EncryptionKeyConfig) Fields() []Field {
	return []Field{
		{Name: FieldDatabaseEncryptionKeyV1, Value: string(c.DatabaseEncryptionKeyV1)},
		{Name: FieldCurrentKeyVersion, Value: c.CurrentKeyVersion},
		{Name: FieldRotationDate, Value: c.RotationDate},
		{Name: FieldMigrationStatus, Value: string(c.MigrationStatus)},
	}
}
