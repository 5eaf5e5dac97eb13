// Package coord translates between spreadsheet-style string addresses like
// "B7" or "A1:C10" and zero-based (column, row) tuples. String parsing is
// case-insensitive; formatting always emits upper case. Tuple coordinates
// bypass string parsing entirely and are accepted directly everywhere an
// address is accepted, see [ResolvePos] and [ResolveRange].
package coord

import (
	"fmt"

	"github.com/sheetio/sheet/xerrors"
)

// Grid limits, rejected before any allocation.
const (
	MaxCols = 16384   // 2^14
	MaxRows = 1048576 // 2^20
)

// Pos is a zero-based (column, row) cell position.
type Pos struct {
	Col int
	Row int
}

// String implements fmt.Stringer, e.g. {1 6} -> "B7".
func (p Pos) String() string {
	return FormatAddress(p)
}

// Range is a rectangular region with inclusive corners. A well-formed Range
// has Start.Col <= End.Col and Start.Row <= End.Row; [NewRange] normalizes.
type Range struct {
	Start Pos
	End   Pos
}

// NewRange returns the normalized rectangle spanned by two corners.
func NewRange(a, b Pos) Range {
	return Range{
		Start: Pos{Col: min(a.Col, b.Col), Row: min(a.Row, b.Row)},
		End:   Pos{Col: max(a.Col, b.Col), Row: max(a.Row, b.Row)},
	}
}

// NewRangeWH returns the range anchored at p with the given width and height.
func NewRangeWH(p Pos, width, height int) Range {
	return Range{
		Start: p,
		End:   Pos{Col: p.Col + width - 1, Row: p.Row + height - 1},
	}
}

func (r Range) Width() int  { return r.End.Col - r.Start.Col + 1 }
func (r Range) Height() int { return r.End.Row - r.Start.Row + 1 }

// Single reports whether the range covers exactly one cell.
func (r Range) Single() bool {
	return r.Start == r.End
}

// Contains reports whether p lies inside the range.
func (r Range) Contains(p Pos) bool {
	return p.Col >= r.Start.Col && p.Col <= r.End.Col &&
		p.Row >= r.Start.Row && p.Row <= r.End.Row
}

// Intersects reports whether the two rectangles share at least one cell.
func (r Range) Intersects(o Range) bool {
	return r.Start.Col <= o.End.Col && o.Start.Col <= r.End.Col &&
		r.Start.Row <= o.End.Row && o.Start.Row <= r.End.Row
}

// String implements fmt.Stringer, e.g. "A1:C10".
func (r Range) String() string {
	return FormatRange(r)
}

// ParseAddress parses a string address like "B7" into a zero-based position.
// Letters are case-insensitive base-26 (A=0...Z=25, AA=26...), followed by a
// 1-based row number.
func ParseAddress(s string) (Pos, error) {
	p, rest, err := parseAddress(s)
	if err != nil {
		return Pos{}, err
	}
	if rest != "" {
		return Pos{}, xerrors.Errorf(xerrors.CodeAddress, "invalid address %q: trailing characters %q", s, rest)
	}
	return p, nil
}

// parseAddress consumes one address from the front of s and returns the
// unconsumed remainder.
func parseAddress(s string) (Pos, string, error) {
	i := 0
	col := 0
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			col = col*26 + int(c-'A') + 1
		case c >= 'a' && c <= 'z':
			col = col*26 + int(c-'a') + 1
		default:
			goto letters_done
		}
		// cap inside the loop so long letter runs cannot overflow col
		if col > MaxCols {
			return Pos{}, "", xerrors.Errorf(xerrors.CodeOutOfBounds, "invalid address %q: column exceeds %d", s, MaxCols)
		}
	}
letters_done:
	if i == 0 {
		return Pos{}, "", xerrors.Errorf(xerrors.CodeAddress, "invalid address %q: missing column letters", s)
	}
	j := i
	row := 0
	for ; j < len(s); j++ {
		c := s[j]
		if c < '0' || c > '9' {
			break
		}
		row = row*10 + int(c-'0')
		if row > MaxRows {
			return Pos{}, "", xerrors.Errorf(xerrors.CodeOutOfBounds, "invalid address %q: row number exceeds %d", s, MaxRows)
		}
	}
	if j == i {
		return Pos{}, "", xerrors.Errorf(xerrors.CodeAddress, "invalid address %q: missing row number", s)
	}
	if row < 1 {
		return Pos{}, "", xerrors.Errorf(xerrors.CodeAddress, "invalid address %q: row number must be >= 1", s)
	}
	return Pos{Col: col - 1, Row: row - 1}, s[j:], nil
}

// ParseRange parses "A1:C10" syntax. A single address is a valid degenerate
// range. Corners given in any order are normalized into a rectangle.
func ParseRange(s string) (Range, error) {
	first, rest, err := parseAddress(s)
	if err != nil {
		return Range{}, err
	}
	if rest == "" {
		return Range{Start: first, End: first}, nil
	}
	if rest[0] != ':' {
		return Range{}, xerrors.Errorf(xerrors.CodeAddress, "invalid range %q: expected ':' separator", s)
	}
	second, rest, err := parseAddress(rest[1:])
	if err != nil {
		return Range{}, xerrors.Wrapf(err, "invalid range %q", s)
	}
	if rest != "" {
		return Range{}, xerrors.Errorf(xerrors.CodeAddress, "invalid range %q: trailing characters %q", s, rest)
	}
	return NewRange(first, second), nil
}

// LetterAxis generates the column name for a 0-based column index.
func LetterAxis(index int) string {
	var (
		colCode = ""
		key     = 'A'
		loop    = index / 26
	)
	if loop > 0 {
		colCode += LetterAxis(loop - 1)
	}
	return colCode + string(key+int32(index)%26)
}

// FormatAddress is the inverse of [ParseAddress]: {1 6} -> "B7".
func FormatAddress(p Pos) string {
	return fmt.Sprintf("%s%d", LetterAxis(p.Col), p.Row+1)
}

// FormatRange is the inverse of [ParseRange]. A single-cell range formats as
// a plain address.
func FormatRange(r Range) string {
	if r.Single() {
		return FormatAddress(r.Start)
	}
	return FormatAddress(r.Start) + ":" + FormatAddress(r.End)
}

// CheckPos rejects negative or pathologically large positions.
func CheckPos(p Pos) error {
	if p.Col < 0 || p.Row < 0 || p.Col >= MaxCols || p.Row >= MaxRows {
		return xerrors.Errorf(xerrors.CodeOutOfBounds, "position %v out of bounds (max %dx%d)", p, MaxCols, MaxRows)
	}
	return nil
}

// CheckRange rejects ranges whose corners are out of bounds or inverted.
func CheckRange(r Range) error {
	if err := CheckPos(r.Start); err != nil {
		return err
	}
	if err := CheckPos(r.End); err != nil {
		return err
	}
	if r.End.Col < r.Start.Col || r.End.Row < r.Start.Row {
		return xerrors.Errorf(xerrors.CodeAddress, "range %v:%v is not a non-negative rectangle", r.Start, r.End)
	}
	return nil
}

// ResolvePos accepts either a string address or a [Pos].
func ResolvePos(ref any) (Pos, error) {
	switch v := ref.(type) {
	case Pos:
		return v, CheckPos(v)
	case string:
		return ParseAddress(v)
	default:
		return Pos{}, xerrors.Errorf(xerrors.CodeAddress, "unsupported address type %T", ref)
	}
}

// ResolveRange accepts a string range, a [Range], or a [Pos] (degenerate
// single-cell range).
func ResolveRange(ref any) (Range, error) {
	switch v := ref.(type) {
	case Range:
		return v, CheckRange(v)
	case Pos:
		return Range{Start: v, End: v}, CheckPos(v)
	case string:
		return ParseRange(v)
	default:
		return Range{}, xerrors.Errorf(xerrors.CodeAddress, "unsupported range type %T", ref)
	}
}
