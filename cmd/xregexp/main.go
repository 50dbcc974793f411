// Command xregexp runs a pattern with named groups over lines of text.
//
//	xregexp [-flags gim] [-replace TEMPLATE | -split | -explain] [-last-index N] PATTERN [FILE...]
//
// Without a mode flag every match is printed as one JSON object per line.
// Input is read from the named files, or stdin when none is given ("-" also
// means stdin). The exit status is 0 when something matched, 1 when nothing
// did and 2 on error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.dw1.io/xregexp"
	"go.dw1.io/xregexp/file"
	"go.dw1.io/xregexp/json"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

type mode int

const (
	modeMatch mode = iota
	modeReplace
	modeSplit
	modeExplain
)

type options struct {
	flags     string
	template  string
	lastIndex int
	mode      mode
}

type record struct {
	File  string         `json:"file"`
	Line  int            `json:"line"`
	Match *xregexp.Match `json:"match"`
}

var errUsage = errors.New("usage: xregexp [-flags gim] [-replace TEMPLATE | -split | -explain] [-last-index N] PATTERN [FILE...]")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, rest, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitMatch
	}
	if err != nil {
		fmt.Fprintf(stderr, "xregexp: %v\n", err)
		return exitError
	}

	re, err := xregexp.New(rest[0], opts.flags)
	if err != nil {
		fmt.Fprintf(stderr, "xregexp: %v\n", err)
		return exitError
	}

	enc := json.NewEncoder(stdout)

	if opts.mode == modeExplain {
		if err := enc.Encode(re.Translation()); err != nil {
			fmt.Fprintf(stderr, "xregexp: %v\n", err)
			return exitError
		}
		return exitMatch
	}

	names := rest[1:]
	if len(names) == 0 {
		names = []string{"-"}
	}

	matched := false
	for _, name := range names {
		text, err := readInput(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "xregexp: %v\n", err)
			return exitError
		}

		for i, line := range lines(text) {
			ok, err := process(re, opts, name, i+1, line, stdout, enc)
			if err != nil {
				fmt.Fprintf(stderr, "xregexp: %s:%d: %v\n", name, i+1, err)
				return exitError
			}
			matched = matched || ok
		}
	}

	if !matched {
		return exitNoMatch
	}

	return exitMatch
}

func parseArgs(args []string, stderr io.Writer) (options, []string, error) {
	var (
		opts         options
		split, expl  bool
		replaceIsSet bool
	)

	fs := flag.NewFlagSet("xregexp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.flags, "flags", "", "pattern flags: any of g, i, m")
	fs.StringVar(&opts.template, "replace", "", "print each line with matches replaced by `TEMPLATE` ($<name>, $n, ${n}, $$)")
	fs.BoolVar(&split, "split", false, "print the parts of each line around the matches")
	fs.BoolVar(&expl, "explain", false, "print the translation of the pattern as JSON")
	fs.IntVar(&opts.lastIndex, "last-index", 0, "replay cursor each line starts from (global patterns)")

	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "replace" {
			replaceIsSet = true
		}
	})

	n := 0
	for _, set := range []bool{replaceIsSet, split, expl} {
		if set {
			n++
		}
	}
	if n > 1 {
		return opts, nil, errors.New("-replace, -split and -explain are exclusive")
	}

	switch {
	case replaceIsSet:
		opts.mode = modeReplace
	case split:
		opts.mode = modeSplit
	case expl:
		opts.mode = modeExplain
	}

	if fs.NArg() == 0 {
		return opts, nil, errUsage
	}

	return opts, fs.Args(), nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}

	f, err := file.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := f.Contents()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	// the mapping goes away on Close
	return string(b), nil
}

func lines(text string) []string {
	if text == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func process(re *xregexp.Regexp, opts options, name string, n int, line string, stdout io.Writer, enc json.Encoder) (bool, error) {
	p := xregexp.Extended(re)

	switch opts.mode {
	case modeReplace:
		at, err := xregexp.SearchIn(line, p)
		if err != nil {
			return false, err
		}
		out, err := xregexp.Substitute(line, p, opts.template)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(stdout, out)
		return at >= 0, nil

	case modeSplit:
		parts, err := xregexp.SplitOn(line, p, -1)
		if err != nil {
			return false, err
		}
		for _, part := range parts {
			fmt.Fprintln(stdout, part)
		}
		return len(parts) > 1, nil

	default:
		found := matches(re, line, opts.lastIndex)
		for _, m := range found {
			if err := enc.Encode(record{File: name, Line: n, Match: m}); err != nil {
				return false, err
			}
		}
		return len(found) > 0, nil
	}
}

// matches returns the first match of re in line, or every match when re is
// global. Empty global matches step the cursor one rune forward.
func matches(re *xregexp.Regexp, line string, start int) []*xregexp.Match {
	re.SetLastIndex(start)

	var out []*xregexp.Match
	for {
		m := re.Exec(line)
		if m == nil {
			return out
		}
		out = append(out, m)

		if !re.Global() {
			return out
		}

		if m.End() == m.Index {
			if m.End() >= len(line) {
				re.SetLastIndex(0)
				return out
			}
			_, size := utf8.DecodeRuneInString(line[m.End():])
			re.SetLastIndex(m.End() + size)
		}
	}
}
