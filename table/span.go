package table

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/xerrors"
)

// SpanRegion is a merged region: the anchor cell is covering, every other
// cell in the region is covered.
type SpanRegion struct {
	Anchor coord.Pos
	Width  int
	Height int
}

// Range returns the rectangle occupied by the region.
func (r SpanRegion) Range() coord.Range {
	return coord.NewRangeWH(r.Anchor, r.Width, r.Height)
}

// posComparator orders positions row-major, the order regions appear in a
// serialized table.
func posComparator(a, b interface{}) int {
	pa, pb := a.(coord.Pos), b.(coord.Pos)
	if pa.Row != pb.Row {
		return pa.Row - pb.Row
	}
	return pa.Col - pb.Col
}

// SpanRegistry tracks the merged regions of one table. Regions never
// overlap, and every covered coordinate belongs to exactly one region.
type SpanRegistry struct {
	regions *treemap.Map // coord.Pos (anchor) -> SpanRegion
}

func newSpanRegistry() *SpanRegistry {
	return &SpanRegistry{regions: treemap.NewWith(posComparator)}
}

// Len returns the number of regions.
func (s *SpanRegistry) Len() int { return s.regions.Size() }

// Regions returns all regions in row-major anchor order.
func (s *SpanRegistry) Regions() []SpanRegion {
	out := make([]SpanRegion, 0, s.regions.Size())
	s.regions.Each(func(_ interface{}, v interface{}) {
		out = append(out, v.(SpanRegion))
	})
	return out
}

// RegionAt returns the region containing p, if any.
func (s *SpanRegistry) RegionAt(p coord.Pos) (SpanRegion, bool) {
	var found SpanRegion
	ok := false
	s.regions.Each(func(_ interface{}, v interface{}) {
		region := v.(SpanRegion)
		if region.Range().Contains(p) {
			found = region
			ok = true
		}
	})
	return found, ok
}

// IsCovered reports whether p is inside a region without being its anchor.
func (s *SpanRegistry) IsCovered(p coord.Pos) bool {
	region, ok := s.RegionAt(p)
	return ok && region.Anchor != p
}

// IsCovering reports whether p is the anchor of a region.
func (s *SpanRegistry) IsCovering(p coord.Pos) bool {
	_, ok := s.regions.Get(p)
	return ok
}

func (s *SpanRegistry) insert(region SpanRegion) error {
	target := region.Range()
	var clash *SpanRegion
	s.regions.Each(func(_ interface{}, v interface{}) {
		existing := v.(SpanRegion)
		if clash == nil && existing.Range().Intersects(target) {
			clash = &existing
		}
	})
	if clash != nil {
		return xerrors.Errorf(xerrors.CodeOverlap,
			"span %s overlaps existing span %s", target, clash.Range())
	}
	s.regions.Put(region.Anchor, region)
	return nil
}

func (s *SpanRegistry) remove(anchor coord.Pos) {
	s.regions.Remove(anchor)
}

func (s *SpanRegistry) clone() *SpanRegistry {
	out := newSpanRegistry()
	s.regions.Each(func(k interface{}, v interface{}) {
		out.regions.Put(k, v)
	})
	return out
}

// SetSpan merges the cells of the given range (string, coord.Range, or
// coord.Pos) into one region anchored at its top-left cell. With merge the
// covered cells' display texts are concatenated into the anchor and then
// dropped, which loses data irreversibly; without it the covered cells keep
// their stored values but become non-addressable through [Table.GetCell]
// until [Table.ClearSpan].
func (t *Table) SetSpan(ref any, merge bool) error {
	r, err := coord.ResolveRange(ref)
	if err != nil {
		return err
	}
	if r.Single() {
		return xerrors.Errorf(xerrors.CodeRangeShape,
			"span %s must cover at least two cells", r)
	}
	region := SpanRegion{Anchor: r.Start, Width: r.Width(), Height: r.Height()}
	if err := t.spans.insert(region); err != nil {
		return xerrors.WrapKV(err, xerrors.KeyTableName, t.name)
	}
	if merge {
		t.mergeSpanText(r)
	}
	return nil
}

// mergeSpanText concatenates the display text of every cell in r, row-major,
// into the anchor cell, and empties the covered cells.
func (t *Table) mergeSpanText(r coord.Range) {
	var texts []string
	for y := r.Start.Row; y <= r.End.Row; y++ {
		for x := r.Start.Col; x <= r.End.Col; x++ {
			if text := t.cellAt(coord.Pos{Col: x, Row: y}).DisplayText(); text != "" {
				texts = append(texts, text)
			}
		}
	}
	anchor := t.cellAt(r.Start).Clone()
	if anchor == nil {
		anchor = NewCell(EmptyValue())
	}
	anchor.Value = StringValue(strings.Join(texts, " "))
	anchor.Text = ""
	t.setCellRaw(r.Start, anchor)
	for y := r.Start.Row; y <= r.End.Row; y++ {
		for x := r.Start.Col; x <= r.End.Col; x++ {
			p := coord.Pos{Col: x, Row: y}
			if p != r.Start && t.cellAt(p) != nil {
				t.setCellRaw(p, nil)
			}
		}
	}
}

// ClearSpan dissolves the region containing the given coordinate and
// restores independent addressability to every covered cell. Preserved
// (non-merged) values are not altered.
func (t *Table) ClearSpan(ref any) error {
	p, err := coord.ResolvePos(ref)
	if err != nil {
		return err
	}
	region, ok := t.spans.RegionAt(p)
	if !ok {
		return xerrors.Errorf(xerrors.CodeRangeShape,
			"no span region at %s", p)
	}
	t.spans.remove(region.Anchor)
	return nil
}
