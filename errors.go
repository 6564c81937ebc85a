// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import "fmt"

// ConfigError reports an invalid index or lookup configuration, for
// example a max edit distance that exceeds the index's build-time k.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "symspell: config: " + e.Msg
}

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// InputError reports a malformed dictionary line encountered while
// building an index from a text source.
type InputError struct {
	Line int
	Msg  string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("symspell: input: line %d: %s", e.Line, e.Msg)
}

// InputErrors collects every InputError seen while loading a dictionary
// in best-effort mode. It implements error so callers that don't care
// about individual lines can still treat it as a single failure.
type InputErrors []*InputError

func (e InputErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("symspell: input: %d malformed lines (first: %s)", len(e), e[0].Error())
}
