package pattern

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// MaxExtent bounds each axis of a pattern, both the declared header extent
// and the cursor while decoding runs. The board area is capped separately by
// core.MaxCells.
const MaxExtent = 1 << 16

// Decode parses RLE source text. The whole body is validated before Decode
// returns, so a non-nil Pattern is always complete; only the expansion of runs
// into coordinates is deferred to the iterator.
func Decode(src []byte) (*Pattern, error) {
	p := &Pattern{}
	line := 0
	rest := src
	for {
		if len(rest) == 0 {
			return nil, &SyntaxError{Msg: "missing header line"}
		}
		var cur []byte
		cur, rest = splitLine(rest)
		line++
		text := strings.TrimSpace(string(cur))
		switch {
		case text == "":
			continue
		case strings.HasPrefix(text, "#"):
			p.comment(text)
			continue
		}
		if err := p.parseHeader(text, line); err != nil {
			return nil, err
		}
		break
	}

	runs, err := parseBody(rest, line+1)
	if err != nil {
		return nil, err
	}
	p.cells = &Cells{runs: runs}
	return p, nil
}

func splitLine(b []byte) (line, rest []byte) {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:]
	}
	return b, nil
}

func (p *Pattern) comment(text string) {
	if len(text) < 2 {
		return
	}
	body := strings.TrimSpace(text[2:])
	switch text[1] {
	case 'N':
		p.Name = body
	case 'C', 'c':
		p.Comments = append(p.Comments, body)
	}
}

func (p *Pattern) parseHeader(text string, line int) error {
	var haveX, haveY bool
	for _, field := range strings.Split(text, ",") {
		if strings.TrimSpace(field) == "" {
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return &SyntaxError{Line: line, Col: 1, Msg: fmt.Sprintf("header field %q is not key = value", strings.TrimSpace(field))}
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return &SyntaxError{Line: line, Col: 1, Msg: fmt.Sprintf("header %s = %q is not a non-negative integer", key, value)}
			}
			if n > MaxExtent {
				return &SyntaxError{Line: line, Col: 1, Msg: fmt.Sprintf("header %s = %d exceeds %d", key, n, MaxExtent)}
			}
			if key == "x" {
				p.Width, haveX = n, true
			} else {
				p.Height, haveY = n, true
			}
		case "rule":
			p.Rule = value
		}
	}
	if !haveX || !haveY {
		return &SyntaxError{Line: line, Col: 1, Msg: "header must declare x and y"}
	}
	return nil
}

type scanner struct {
	src  []byte
	pos  int
	line int
	col  int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		default:
			return
		}
	}
}

func (s *scanner) errorf(format string, args ...any) error {
	return &SyntaxError{Line: s.line, Col: s.col, Msg: fmt.Sprintf(format, args...)}
}

// count reads an optional decimal run count, returning 1 when absent.
func (s *scanner) count() (n int, present bool, err error) {
	for !s.eof() && s.peek() >= '0' && s.peek() <= '9' {
		n = n*10 + int(s.advance()-'0')
		present = true
		if n > MaxExtent {
			return 0, true, s.errorf("run count exceeds %d", MaxExtent)
		}
	}
	if !present {
		return 1, false, nil
	}
	if n == 0 {
		return 0, true, s.errorf("run count must be positive")
	}
	return n, true, nil
}

func parseBody(body []byte, line int) ([]run, error) {
	s := &scanner{src: body, line: line, col: 1}
	var runs []run
	x, y := 0, 0
	for {
		s.skipSpace()
		if s.eof() {
			return nil, s.errorf("body ends without %q", tagEnd)
		}
		n, counted, err := s.count()
		if err != nil {
			return nil, err
		}
		s.skipSpace()
		if s.eof() {
			if counted {
				return nil, s.errorf("run count %d has no tag", n)
			}
			return nil, s.errorf("body ends without %q", tagEnd)
		}
		tag := s.peek()
		switch tag {
		case tagDead, tagAlive, tagRow:
			s.advance()
			runs = append(runs, run{n: n, tag: tag})
			if tag == tagRow {
				x, y = 0, y+n
			} else {
				x += n
			}
			if x > MaxExtent || y > MaxExtent {
				return nil, s.errorf("pattern extends past %d cells", MaxExtent)
			}
		case tagEnd:
			if counted {
				return nil, s.errorf("run count %d has no tag", n)
			}
			return runs, nil
		default:
			if counted {
				return nil, s.errorf("run count %d followed by %q, expected one of b o $", n, tag)
			}
			return nil, s.errorf("unexpected %q", tag)
		}
	}
}
