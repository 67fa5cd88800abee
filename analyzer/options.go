// Copyright 2026 mpilint Authors.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

import (
	"log/slog"

	"mpilint.dev/mpilint/internal/config"
	"mpilint.dev/mpilint/internal/driver"
)

// Option configures specific behavior of a [New] mpilint analyzer.
type Option interface {
	apply(e *driver.Engine)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(e *driver.Engine) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(e)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

func withCheck(flag config.Check, enabled bool) Option {
	return checkOption{flag: flag, enabled: enabled}
}

type checkOption struct {
	flag    config.Check
	enabled bool
}

func (o checkOption) apply(e *driver.Engine) {
	e.Config.Checks.Set(o.flag, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(checkFlagName(o.flag), o.enabled)
}

func checkFlagName(flag config.Check) string {
	switch flag {
	case config.CheckFloatArg:
		return "float-arg"
	case config.CheckTypeMismatch:
		return "type-mismatch"
	case config.CheckRedundancy:
		return "redundancy"
	case config.CheckUnmatched:
		return "unmatched"
	case config.CheckCollectiveRank:
		return "collective-rank"
	case config.CheckRequests:
		return "requests"
	case config.CheckArgType:
		return "arg-type"
	default:
		return "unknown"
	}
}

// WithFloatArg configures the float-literal-in-integer-slot check
// (§4.6.1).
func WithFloatArg(enabled bool) Option { return withCheck(config.CheckFloatArg, enabled) }

// WithTypeMismatch configures the buffer/datatype match check (§4.6.2).
func WithTypeMismatch(enabled bool) Option { return withCheck(config.CheckTypeMismatch, enabled) }

// WithRedundancy configures the redundant-call check (§4.6.3).
func WithRedundancy(enabled bool) Option { return withCheck(config.CheckRedundancy, enabled) }

// WithUnmatched configures the unmatched point-to-point check (§4.6.4).
func WithUnmatched(enabled bool) Option { return withCheck(config.CheckUnmatched, enabled) }

// WithCollectiveRank configures the collective-in-rank-branch check
// (§4.6.5).
func WithCollectiveRank(enabled bool) Option { return withCheck(config.CheckCollectiveRank, enabled) }

// WithRequests configures the request-lifecycle check (§4.6.6).
func WithRequests(enabled bool) Option { return withCheck(config.CheckRequests, enabled) }

// WithArgType configures the invalid-argument-type check (§4.6.7).
func WithArgType(enabled bool) Option { return withCheck(config.CheckArgType, enabled) }
