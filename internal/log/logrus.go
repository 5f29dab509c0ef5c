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

package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger writes leveled text logs. Output goes to stderr in the CLI so
// that stdout only carries the generated configuration.
type LogrusLogger struct {
	logger *logrus.Logger
}

func NewLogrusLogger(out io.Writer, level LogLevel) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	ll := &LogrusLogger{logger: l}
	ll.SetLogLevel(level)
	return ll
}

func (l *LogrusLogger) SetLogLevel(level LogLevel) {
	l.logger.SetLevel(toLogrusLevel(level))
}

func (l *LogrusLogger) Trace(s string) {
	l.logger.Trace(s)
}

func (l *LogrusLogger) Debug(s string) {
	l.logger.Debug(s)
}

func (l *LogrusLogger) Info(s string) {
	l.logger.Info(s)
}

func (l *LogrusLogger) Warn(s string) {
	l.logger.Warn(s)
}

func (l *LogrusLogger) Error(e error) {
	l.logger.WithError(e).Error("command failed")
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case Trace:
		return logrus.TraceLevel
	case Debug:
		return logrus.DebugLevel
	case Info:
		return logrus.InfoLevel
	case Warn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
