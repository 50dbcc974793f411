package xregexp

import (
	"slices"

	"go.dw1.io/xregexp/native"
	"go.dw1.io/xregexp/translate"
)

var _ translate.Compiled = (*Regexp)(nil)

// Regexp is a regular expression with named capture groups. It wraps a
// native pattern compiled from the translated source.
type Regexp struct {
	native *native.Regexp
	res    *translate.Result
}

// New translates pattern and compiles the result. pattern is pattern text or
// a [translate.Compiled] value (such as another Regexp); see
// [translate.Translate] for how flags are picked.
//
// Compilation errors of the native engine, including invalid flags, are
// returned unchanged.
func New(pattern any, flags ...string) (*Regexp, error) {
	res, err := translate.Translate(pattern, flags...)
	if err != nil {
		return nil, err
	}

	return compile(res)
}

// MustNew is like New but panics if the pattern cannot be compiled.
func MustNew(pattern any, flags ...string) *Regexp {
	re, err := New(pattern, flags...)
	if err != nil {
		panic(err)
	}

	return re
}

func compile(res *translate.Result) (*Regexp, error) {
	re, err := native.Compile(res.Source, res.Flags)
	if err != nil {
		return nil, err
	}

	return &Regexp{native: re, res: res}, nil
}

// Source returns the pattern as it was given, before rewriting.
func (r *Regexp) Source() string {
	return r.res.Original
}

// Flags returns the flags of the native pattern.
func (r *Regexp) Flags() string {
	return r.native.Flags()
}

// Global reports whether the g flag was set at construction.
func (r *Regexp) Global() bool {
	return r.native.Global()
}

// IgnoreCase reports whether the i flag was set at construction.
func (r *Regexp) IgnoreCase() bool {
	return r.native.IgnoreCase()
}

// Multiline reports whether the m flag was set at construction.
func (r *Regexp) Multiline() bool {
	return r.native.Multiline()
}

// LastIndex returns the replay cursor of the native pattern.
func (r *Regexp) LastIndex() int {
	return r.native.LastIndex()
}

// SetLastIndex moves the replay cursor of the native pattern.
func (r *Regexp) SetLastIndex(i int) {
	r.native.SetLastIndex(i)
}

// String returns the original pattern in /source/flags form.
func (r *Regexp) String() string {
	return "/" + r.Source() + "/" + r.Flags()
}

// Exec returns the leftmost match in input, or nil. The returned match has
// Names filled for every group key. Cursor handling is the native one.
func (r *Regexp) Exec(input string) *Match {
	loc := r.native.Exec(input)
	if loc == nil {
		return nil
	}

	return newMatch(input, loc, r.res.Groups)
}

// Test reports whether input contains a match.
func (r *Regexp) Test(input string) bool {
	return r.native.Test(input)
}

// SubexpIndex returns the capture position of the group with the given key,
// or -1 if there is no such group.
func (r *Regexp) SubexpIndex(key string) int {
	if i, ok := r.res.Groups[key]; ok {
		return i
	}

	return -1
}

// NumSubexp returns the number of capturing groups.
func (r *Regexp) NumSubexp() int {
	return r.res.NumGroups()
}

// Keys returns the group keys by capture position.
func (r *Regexp) Keys() []string {
	return slices.Clone(r.res.Keys)
}

// Translation returns a copy of the translation the Regexp was built from.
func (r *Regexp) Translation() *translate.Result {
	return r.res.Clone()
}

// Native returns the underlying native pattern. It shares the replay cursor
// with r.
func (r *Regexp) Native() *native.Regexp {
	return r.native
}
