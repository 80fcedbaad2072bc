package path

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	gl "github.com/rustyoz/genericlexer"
)

// ErrInvalidData is returned for malformed SVG path data.
var ErrInvalidData = errors.New("path: invalid path data")

// CommandFunc receives one absolute drawing command decoded from path
// data. name is one of move_to, line_to, close, arc_to, curve3 and
// curve4; args hold float64 and bool values in call order.
type CommandFunc func(name string, args ...any) error

// ParseData decodes SVG path data into a new path.
func ParseData(d string) (*Path, error) {
	p := NewPath()
	err := ScanData(d, func(name string, args ...any) error {
		f := func(i int) float64 { return args[i].(float64) }
		switch name {
		case "move_to":
			p.MoveTo(f(0), f(1))
		case "line_to":
			p.LineTo(f(0), f(1))
		case "close":
			p.Close()
		case "arc_to":
			p.ArcTo(f(0), f(1), f(2), args[3].(bool), args[4].(bool), f(5), f(6))
		case "curve3":
			p.Curve3(f(0), f(1), f(2), f(3))
		case "curve4":
			p.Curve4(f(0), f(1), f(2), f(3), f(4), f(5))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ScanData decodes SVG path data (M, L, H, V, C, Q, A and Z in absolute
// and relative form) and calls fn once per command with absolute
// coordinates. Arc rotation angles are converted from degrees to
// radians. Scanning stops at the first error, including errors
// returned by fn. The data must start with a move.
func ScanData(d string, fn CommandFunc) error {
	return ScanDataFrom(Point{}, Point{}, false, d, fn)
}

// ScanDataFrom is like ScanData but continues a path whose current
// subpath starts at start and whose current point is cur. When
// hasCurrent is false the data must start with a move; otherwise
// relative commands resolve against cur and Z returns to start.
func ScanDataFrom(start, cur Point, hasCurrent bool, d string, fn CommandFunc) error {
	src, err := normalizeData(d)
	if err != nil {
		return err
	}
	l, items := gl.Lex("path", src)
	// The lexer goroutine only exits once its channel is drained.
	defer func() {
		for range items {
		}
	}()
	s := &dataScanner{lex: l, fn: fn, start: start, cur: cur, needMove: !hasCurrent}
	return s.run()
}

// normalizeData rewrites d into a form the lexer tokenizes completely.
// The lexer stops at a '.' that begins a number and at unknown runes,
// so compact numbers such as ".5" and "1.5.5" get a leading zero and a
// separator, exponents are lower-cased and other whitespace becomes a
// space. Runes that cannot appear in path data are rejected.
func normalizeData(d string) (string, error) {
	var b strings.Builder
	b.Grow(len(d) + 8)
	var inNum, digits, dot, exp bool
	var prev rune
	for _, r := range d {
		switch {
		case r >= '0' && r <= '9':
			if !inNum {
				inNum, dot, exp = true, false, false
			}
			digits = true
			b.WriteRune(r)
		case r == '.':
			if !inNum || dot || exp {
				if inNum {
					b.WriteByte(' ')
				}
				inNum, digits, exp = true, false, false
			}
			if !digits {
				b.WriteByte('0')
			}
			dot = true
			b.WriteByte('.')
		case (r == 'e' || r == 'E') && inNum && digits && !exp:
			exp = true
			b.WriteByte('e')
		case r == '+' || r == '-':
			if !(exp && (prev == 'e' || prev == 'E')) {
				inNum, digits, dot, exp = true, false, false, false
			}
			b.WriteRune(r)
		case r == ',':
			inNum = false
			b.WriteRune(r)
		case unicode.IsSpace(r):
			inNum = false
			b.WriteByte(' ')
		case unicode.IsLetter(r):
			inNum = false
			b.WriteRune(r)
		default:
			return "", fmt.Errorf("%w: unexpected %q", ErrInvalidData, r)
		}
		prev = r
	}
	return b.String(), nil
}

type tokenKind int

const (
	tokEOS tokenKind = iota
	tokLetter
	tokNumber
)

type token struct {
	kind   tokenKind
	letter rune
	num    float64
	raw    string // number text, used to split packed arc flags
}

type dataScanner struct {
	lex      *gl.Lexer
	fn       CommandFunc
	pending  []token
	sign     float64
	start    Point
	cur      Point
	needMove bool
}

func (s *dataScanner) fill() error {
	for len(s.pending) == 0 {
		it := s.lex.NextItem()
		switch it.Type {
		case gl.ItemEOS:
			s.pending = append(s.pending, token{kind: tokEOS})
			return nil
		case gl.ItemError:
			return fmt.Errorf("%w: %s", ErrInvalidData, it.Value)
		}
		if err := s.split(it.Value); err != nil {
			return err
		}
	}
	return nil
}

// split turns one lexer item into tokens. Letter runs such as "Zm" are
// split into single commands; a lone sign applies to the next number.
func (s *dataScanner) split(v string) error {
	v = strings.Trim(v, " \t\r\n,")
	switch {
	case v == "":
		return nil
	case v == "-":
		s.sign = -1
		return nil
	case v == "+":
		s.sign = 1
		return nil
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil {
		if s.sign != 0 {
			n *= s.sign
			s.sign = 0
		}
		s.pending = append(s.pending, token{kind: tokNumber, num: n, raw: v})
		return nil
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: unexpected %q", ErrInvalidData, v)
		}
		s.pending = append(s.pending, token{kind: tokLetter, letter: r})
	}
	return nil
}

func (s *dataScanner) peek() (token, error) {
	if err := s.fill(); err != nil {
		return token{}, err
	}
	return s.pending[0], nil
}

func (s *dataScanner) next() (token, error) {
	t, err := s.peek()
	if err != nil {
		return t, err
	}
	if t.kind != tokEOS {
		s.pending = s.pending[1:]
	}
	return t, nil
}

func (s *dataScanner) numbers(cmd rune, n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		t, err := s.next()
		if err != nil {
			return nil, err
		}
		if t.kind != tokNumber {
			return nil, fmt.Errorf("%w: %c expects %d numbers", ErrInvalidData, cmd, n)
		}
		out[i] = t.num
	}
	return out, nil
}

// flag reads an arc flag. Flags need no separator, so a number token
// such as "01" holds two flags; the rest of the token is pushed back.
func (s *dataScanner) flag(cmd rune) (bool, error) {
	t, err := s.next()
	if err != nil {
		return false, err
	}
	if t.kind != tokNumber || t.raw == "" || (t.raw[0] != '0' && t.raw[0] != '1') {
		return false, fmt.Errorf("%w: %c expects a 0 or 1 flag", ErrInvalidData, cmd)
	}
	if rest := t.raw[1:]; rest != "" {
		n, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return false, fmt.Errorf("%w: %c expects a 0 or 1 flag", ErrInvalidData, cmd)
		}
		s.pending = append([]token{{kind: tokNumber, num: n, raw: rest}}, s.pending...)
	}
	return t.raw[0] == '1', nil
}

func (s *dataScanner) moreNumbers() (bool, error) {
	t, err := s.peek()
	return t.kind == tokNumber, err
}

func (s *dataScanner) run() error {
	for {
		t, err := s.next()
		if err != nil {
			return err
		}
		switch t.kind {
		case tokEOS:
			return nil
		case tokNumber:
			return fmt.Errorf("%w: number %g without command", ErrInvalidData, t.num)
		}
		if s.needMove && t.letter != 'M' && t.letter != 'm' {
			return fmt.Errorf("%w: must start with a move", ErrInvalidData)
		}
		s.needMove = false
		if err := s.command(t.letter); err != nil {
			return err
		}
	}
}

func (s *dataScanner) command(c rune) error {
	rel := unicode.IsLower(c)
	if unicode.ToUpper(c) == 'Z' {
		s.cur = s.start
		return s.fn("close")
	}

	for once := true; ; once = false {
		if !once {
			more, err := s.moreNumbers()
			if err != nil {
				return err
			}
			if !more {
				return nil
			}
		}
		if err := s.segment(c, rel); err != nil {
			return err
		}
		if c == 'M' {
			c = 'L'
		} else if c == 'm' {
			c = 'l'
		}
	}
}

func (s *dataScanner) segment(c rune, rel bool) error {
	var base Point
	if rel {
		base = s.cur
	}
	abs := func(x, y float64) Point { return Point{X: base.X + x, Y: base.Y + y} }

	switch unicode.ToUpper(c) {
	case 'M':
		v, err := s.numbers(c, 2)
		if err != nil {
			return err
		}
		s.cur = abs(v[0], v[1])
		s.start = s.cur
		return s.fn("move_to", s.cur.X, s.cur.Y)
	case 'L':
		v, err := s.numbers(c, 2)
		if err != nil {
			return err
		}
		s.cur = abs(v[0], v[1])
		return s.fn("line_to", s.cur.X, s.cur.Y)
	case 'H':
		v, err := s.numbers(c, 1)
		if err != nil {
			return err
		}
		s.cur.X = base.X + v[0]
		return s.fn("line_to", s.cur.X, s.cur.Y)
	case 'V':
		v, err := s.numbers(c, 1)
		if err != nil {
			return err
		}
		s.cur.Y = base.Y + v[0]
		return s.fn("line_to", s.cur.X, s.cur.Y)
	case 'Q':
		v, err := s.numbers(c, 4)
		if err != nil {
			return err
		}
		ctrl := abs(v[0], v[1])
		s.cur = abs(v[2], v[3])
		return s.fn("curve3", ctrl.X, ctrl.Y, s.cur.X, s.cur.Y)
	case 'C':
		v, err := s.numbers(c, 6)
		if err != nil {
			return err
		}
		c1, c2 := abs(v[0], v[1]), abs(v[2], v[3])
		s.cur = abs(v[4], v[5])
		return s.fn("curve4", c1.X, c1.Y, c2.X, c2.Y, s.cur.X, s.cur.Y)
	case 'A':
		r, err := s.numbers(c, 3)
		if err != nil {
			return err
		}
		large, err := s.flag(c)
		if err != nil {
			return err
		}
		sweep, err := s.flag(c)
		if err != nil {
			return err
		}
		v, err := s.numbers(c, 2)
		if err != nil {
			return err
		}
		s.cur = abs(v[0], v[1])
		return s.fn("arc_to", r[0], r[1], r[2]*math.Pi/180, large, sweep, s.cur.X, s.cur.Y)
	}
	return fmt.Errorf("%w: unsupported command %c", ErrInvalidData, c)
}
