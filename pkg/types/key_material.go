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

import "gopkg.in/yaml.v3"

// KeyMaterial is an encoded symmetric key.
type KeyMaterial string

// Explicitly quote key material so that a leading '-' or '_' is never
// interpreted as YAML syntax.
func (k KeyMaterial) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Value: string(k),
		Kind:  yaml.ScalarNode,
		Style: yaml.DoubleQuotedStyle,
	}, nil
}

// String never returns the key itself, so the value is safe to pass to
// loggers and %v verbs.
func (k KeyMaterial) String() string {
	if k == "" {
		return ""
	}
	return "[redacted]"
}
