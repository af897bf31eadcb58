// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package meta compiles the chomp meta-language and replays its output.
//
// A description string over a one-character alphabet is parsed — by the
// combinator engine itself — into the language arena of descriptors, then
// the interpreter walks that arena applying each descriptor to a fresh
// state over the real input, threading it exactly as the hand-written
// pipelines in internal/parse would.
//
// Alphabet:
//
//	'text'  word literal        "   the double-quote literal
//	@       char                #   digit
//	,       eol                 .   eof
//	;       eol-or-eof          >   one-or-more of the next symbol
package meta

import (
	"fmt"

	"nickandperla.net/chomp/internal/arena"
	"nickandperla.net/chomp/internal/lang"
	"nickandperla.net/chomp/internal/parse"
)

// Compile parses dsl into a sequence of descriptors. Unlike target-input
// parsing, an unparseable description is a caller mistake and surfaces as
// an error carrying the offending remainder.
func Compile(dsl string) (*arena.Arena[lang.Descriptor], error) {
	s := parse.New(dsl)
	for s.Success && s.InputRemaining != "" {
		s = compileSymbol(s)
	}
	if !s.Success {
		return nil, fmt.Errorf("meta: no rule matches %q", s.InputRemaining)
	}
	return s.Lang, nil
}

// compileSymbol parses one alphabet symbol and appends its descriptor to
// the language arena. Alternatives append inside their own clone, so a
// losing branch leaves no descriptor behind.
func compileSymbol(s parse.State) parse.State {
	return s.FirstSuccessOf(
		symRepeat,
		symLiteral,
		symQuote,
		prim("@", lang.OpChar),
		prim("#", lang.OpDigit),
		prim(",", lang.OpEOL),
		prim(".", lang.OpEOF),
		prim(";", lang.OpEOLOrEOF),
	)
}

// prim builds a symbol parser for a parameterless operation.
func prim(symbol string, op lang.Op) parse.Fn {
	return func(s parse.State) parse.State {
		ns := s.SetChomping(false).Word(symbol).SetChomping(true)
		if !ns.Success {
			return ns
		}
		ns.Lang.Append(lang.Prim(op))
		return ns
	}
}

// symQuote compiles `"` into a word descriptor for the quote itself.
func symQuote(s parse.State) parse.State {
	ns := s.SetChomping(false).Word(`"`).SetChomping(true)
	if !ns.Success {
		return ns
	}
	ns.Lang.Append(lang.Lit(`"`))
	return ns
}

// symLiteral compiles `'text'` into a word descriptor for text.
func symLiteral(s parse.State) parse.State {
	ns := s.SetChomping(false).Word("'").SetChomping(true)
	if !ns.Success {
		return ns
	}
	ns = ns.UntilFirstDoSecond(closingTick, parse.State.AnyChar)
	if !ns.Success {
		return ns
	}
	ns.Lang.Append(lang.Lit(ns.Chomp))
	return ns.ClearChomp()
}

func closingTick(s parse.State) parse.State {
	return s.SetChomping(false).Word("'").SetChomping(true)
}

// symRepeat compiles `>` by compiling the following symbol and wrapping
// its descriptor in a one-or-more. This is the only producer of the
// nested-parser parameter kind.
func symRepeat(s parse.State) parse.State {
	ns := s.SetChomping(false).Word(">").SetChomping(true)
	if !ns.Success {
		return ns
	}
	before := ns.Lang.Len()
	ns = compileSymbol(ns)
	if !ns.Success || ns.Lang.Len() != before+1 {
		return ns
	}
	nested, _ := ns.Lang.NthLast(0)
	ns.Lang.RemoveNthLast(0)
	ns.Lang.Append(lang.Repeat(nested))
	return ns
}

// Run replays a compiled description against input, threading a fresh
// state through each descriptor in order. The result is the same shape a
// hand-written pipeline yields: success flag, chomp, remainder.
func Run(descs *arena.Arena[lang.Descriptor], input string) parse.State {
	s := parse.New(input)
	for _, d := range descs.All() {
		s = Apply(s, d)
	}
	return s
}

// Apply dispatches one descriptor. Tagged-variant dispatch keeps the
// operation set exhaustively checkable rather than hiding it behind stored
// function pointers.
func Apply(s parse.State, d lang.Descriptor) parse.State {
	switch d.Op {
	case lang.OpWord:
		return s.Word(d.Literal)
	case lang.OpChar:
		return s.Char()
	case lang.OpDigit:
		return s.Digit()
	case lang.OpEOL:
		return s.EOL()
	case lang.OpEOF:
		return s.EOF()
	case lang.OpEOLOrEOF:
		return s.FirstSuccessOf(parse.State.EOL, parse.State.EOF)
	case lang.OpOneOrMore:
		nested := *d.Nested
		return s.OneOrMoreOf(func(st parse.State) parse.State {
			return Apply(st, nested)
		})
	}
	return s
}
