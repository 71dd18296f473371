package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"gitlab.com/tinyland/lab/termkit/display/ansi"
)

// styleState is the set of escape sequences open at some point of a string:
// the SGR codes emitted since the last reset, in order, and the opener of
// the hyperlink currently in effect. It is a value; apply returns a new one.
type styleState struct {
	codes []string
	link  string
}

func (st styleState) apply(seq string) styleState {
	if ansi.IsReset(seq) {
		// SGR reset does not end an OSC 8 hyperlink.
		return styleState{link: st.link}
	}
	if target, ok := ansi.HyperlinkTarget(seq); ok {
		if target == "" {
			return styleState{codes: st.codes}
		}
		return styleState{codes: st.codes, link: seq}
	}
	if !ansi.IsSGR(seq) {
		return st
	}
	codes := make([]string, len(st.codes), len(st.codes)+1)
	copy(codes, st.codes)
	return styleState{codes: append(codes, seq), link: st.link}
}

func (st styleState) empty() bool {
	return len(st.codes) == 0 && st.link == ""
}

// prefix reopens the state at the start of a line.
func (st styleState) prefix() string {
	return strings.Join(st.codes, "") + st.link
}

// suffix closes the state at the end of a line.
func (st styleState) suffix() string {
	var s string
	if len(st.codes) > 0 {
		s = ansi.Reset
	}
	if st.link != "" {
		s += ansi.HyperlinkClose
	}
	return s
}

// Wrap reflows s into lines of at most maxWidth visible columns.
//
// Words break at whitespace; a word longer than maxWidth is split rune by
// rune. Whitespace at a break point is dropped. A newline always starts a
// new line. Styles and hyperlinks open at a break are closed at the end of
// the line and reopened at the start of the next one, so every returned
// line renders correctly on its own. maxWidth below 1 is treated as 1 and
// the result always holds at least one line.
func Wrap(s string, maxWidth int) []string {
	if maxWidth < 1 {
		maxWidth = 1
	}
	w := &lineWriter{max: maxWidth}
	var st styleState
	for _, seg := range ansi.Scan(s) {
		if seg.Kind == ansi.Escape {
			w.flushPending()
			w.line.WriteString(seg.Text)
			st = st.apply(seg.Text)
			continue
		}
		for i, part := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				w.breakLine(st)
			}
			w.words(part, st)
		}
	}
	return w.finish(st)
}

// SplitLines splits s at newlines without reflowing it. Like Wrap, it
// closes the styles and hyperlink open at the end of each line and reopens
// them on the next, and the last line never leaves state open.
func SplitLines(s string) []string {
	var (
		lines []string
		line  strings.Builder
		st    styleState
	)
	for _, seg := range ansi.Scan(s) {
		if seg.Kind == ansi.Escape {
			line.WriteString(seg.Text)
			st = st.apply(seg.Text)
			continue
		}
		for i, part := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				line.WriteString(st.suffix())
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(st.prefix())
			}
			line.WriteString(part)
		}
	}
	line.WriteString(st.suffix())
	return append(lines, line.String())
}

// lineWriter accumulates wrapped output. pending holds whitespace that is
// only written once the next word is known to fit on the same line.
type lineWriter struct {
	max     int
	lines   []string
	line    strings.Builder
	width   int
	pending string
}

func (w *lineWriter) words(part string, st styleState) {
	for part != "" {
		r, _ := utf8.DecodeRuneInString(part)
		space := unicode.IsSpace(r)
		end := strings.IndexFunc(part, func(r rune) bool { return unicode.IsSpace(r) != space })
		if end < 0 {
			end = len(part)
		}
		if space {
			w.pending += part[:end]
		} else {
			w.word(part[:end], st)
		}
		part = part[end:]
	}
}

func (w *lineWriter) word(word string, st styleState) {
	n := utf8.RuneCountInString(word)
	gap := utf8.RuneCountInString(w.pending)
	switch {
	case w.width+gap+n <= w.max:
		w.flushPending()
		w.write(word, n)
		return
	case w.width == 0:
		w.pending = ""
	default:
		w.breakLine(st)
	}
	if n <= w.max {
		w.write(word, n)
		return
	}
	for _, r := range word {
		if w.width == w.max {
			w.breakLine(st)
		}
		w.write(string(r), 1)
	}
}

func (w *lineWriter) write(s string, n int) {
	w.line.WriteString(s)
	w.width += n
}

// flushPending writes pending whitespace if it fits and drops it otherwise.
func (w *lineWriter) flushPending() {
	if w.pending == "" {
		return
	}
	if n := utf8.RuneCountInString(w.pending); w.width+n <= w.max {
		w.write(w.pending, n)
	}
	w.pending = ""
}

func (w *lineWriter) breakLine(st styleState) {
	w.line.WriteString(st.suffix())
	w.lines = append(w.lines, w.line.String())
	w.line.Reset()
	w.line.WriteString(st.prefix())
	w.width = 0
	w.pending = ""
}

func (w *lineWriter) finish(st styleState) []string {
	w.flushPending()
	if w.width > 0 {
		if !st.empty() {
			w.line.WriteString(st.suffix())
		}
		w.lines = append(w.lines, w.line.String())
	}
	if len(w.lines) == 0 {
		return []string{""}
	}
	return w.lines
}
