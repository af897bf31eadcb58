// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package parse

import (
	"slices"
)

// named maps the parsers a collaborator may run standalone. Word is absent:
// it needs a literal parameter, which the meta-language supplies instead.
var named = map[string]Fn{
	"char":          State.Char,
	"any_char":      State.AnyChar,
	"digit":         State.Digit,
	"eol":           State.EOL,
	"eof":           State.EOF,
	"el_int":        State.ElInt,
	"el_float":      State.ElFloat,
	"el_str":        State.ElStr,
	"el_var":        State.ElVar,
	"fn_var_sum":    State.FnVarSum,
	"fn_var_assign": State.FnVarAssign,
}

// Lookup returns the parser registered under name.
func Lookup(name string) (Fn, bool) {
	fn, ok := named[name]
	return fn, ok
}

// Names returns all registered parser names, sorted.
func Names() []string {
	out := make([]string, 0, len(named))
	for name := range named {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
