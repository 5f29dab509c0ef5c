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

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dbcrypt/enckeys/internal/keygen"
	"github.com/dbcrypt/enckeys/pkg/types"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var Formats = []string{FormatJSON, FormatYAML}

const ruleWidth = 80

type Options struct {
	Format     string
	SecretName string
	VaultName  string
	Color      bool
}

type Printer struct {
	out  io.Writer
	opts Options
}

func NewPrinter(out io.Writer, opts Options) *Printer {
	return &Printer{out: out, opts: opts}
}

// ValidateFormat rejects unknown output formats before any key is generated.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. valid options are: %v", format, Formats)
}

func (p *Printer) PrintConfig(cfg *types.EncryptionKeyConfig) error {
	snippet, err := p.marshal(cfg)
	if err != nil {
		return err
	}

	p.banner("Database Encryption Keys Generator")
	p.println()
	p.printf("Add these fields to your %s secret '%s':\n\n", p.opts.VaultName, p.opts.SecretName)
	p.printf("%s\n\n", strings.TrimRight(snippet, "\n"))

	p.banner("Individual Values (for manual entry):")
	for _, f := range cfg.Fields() {
		p.printf("\n%s:\n  %s\n", f.Name, f.Value)
	}
	p.println()

	p.banner("Next Steps:")
	steps := []string{
		fmt.Sprintf("Copy the %s above", strings.ToUpper(p.opts.Format)),
		fmt.Sprintf("Open the %s console", p.opts.VaultName),
		fmt.Sprintf("Select your vault and the '%s' secret", p.opts.SecretName),
		"Create a new secret version",
		"Merge these fields with your existing secret content",
		"Save the new version",
	}
	for i, s := range steps {
		p.printf("%d. %s\n", i+1, s)
	}
	p.println()
	p.printf("%s\n", p.colorize("IMPORTANT: Keep this key secure!", red))
	p.printf("   Without it, encrypted data cannot be decrypted.\n")
	p.rule()
	return nil
}

// PrintRemediation explains how to recover from err. Errors other than a
// missing crypto backend are printed as-is.
func (p *Printer) PrintRemediation(err error) {
	if !errors.Is(err, keygen.ErrUnavailableCryptoBackend) {
		p.printf("%s\n", p.colorize("Error: "+err.Error(), red))
		return
	}
	p.printf("%s\n", p.colorize("Error: a secure random source is not available", red))
	p.printf("  %s\n", err.Error())
	p.println()
	p.printf("Key generation needs the operating system entropy source\n")
	p.printf("(getrandom(2) or /dev/urandom on Linux, CryptGenRandom on Windows).\n")
	p.printf("Make it available to this process, for example by mounting /dev/urandom\n")
	p.printf("into the container or sandbox, then run this command again.\n")
	p.println()
	p.printf("Or generate a key manually with:\n")
	p.printf("  openssl rand -base64 32 | tr '+/' '-_'\n")
	p.printf("  python3 -c \"from cryptography.fernet import Fernet; print(Fernet.generate_key().decode())\"\n")
}

func (p *Printer) marshal(cfg *types.EncryptionKeyConfig) (string, error) {
	var (
		b   []byte
		err error
	)
	switch p.opts.Format {
	case FormatJSON:
		b, err = json.MarshalIndent(cfg, "", "  ")
	case FormatYAML:
		b, err = yaml.Marshal(cfg)
	default:
		return "", ValidateFormat(p.opts.Format)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

const (
	yellow = "\u001b[33m"
	red    = "\u001b[31m"
	reset  = "\u001b[0m"
)

func (p *Printer) colorize(s, color string) string {
	if !p.opts.Color {
		return s
	}
	return color + s + reset
}

func (p *Printer) rule() {
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
}

func (p *Printer) banner(title string) {
	p.rule()
	p.printf("%s\n", p.colorize(title, yellow))
	p.rule()
}

func (p *Printer) println() {
	p.printf("\n")
}

func (p *Printer) printf(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}
