// Package layout splits a rectangle into sub-regions according to
// declarative constraints.
//
// Constraint types:
//   - Length(n): fixed size in cells
//   - Percentage(p): percentage of available space (0-100)
//   - Min(n): at least n cells
//   - Max(n): at most n cells, prefers n when space allows
//   - Fill(w): fills remaining space proportional to weight
//   - Ratio(n,d): n/d of total available space
//
// The solver runs in three passes:
//  1. Allocate fixed sizes (Length, Percentage, Ratio, Min)
//  2. Distribute remaining space to Fill and Max items by weight
//  3. Enforce Min/Max bounds, redistribute overflow
//
// Leftover surplus is positioned according to the Flex mode. Besides the
// regions, the solver reports the n+1 spacer regions around and between
// them: spacer 0 before the first region, spacer i between regions i-1
// and i, spacer n after the last region.
package layout

import "github.com/dshills/tablegrid/internal/renderer/core"

// Direction controls the axis along which a Layout splits space.
type Direction int

const (
	// Horizontal splits left-to-right (constraints control width).
	Horizontal Direction = iota
	// Vertical splits top-to-bottom (constraints control height).
	Vertical
)

// Constraint is the interface satisfied by all layout constraint types.
// The marker method prevents external implementations.
type Constraint interface {
	constraint()
}

// Length allocates exactly Value cells.
type Length struct{ Value int }

func (Length) constraint() {}

// Percentage allocates Value percent of the total available space (0-100).
type Percentage struct{ Value int }

func (Percentage) constraint() {}

// Min allocates at least Value cells.
type Min struct{ Value int }

func (Min) constraint() {}

// Max allocates at most Value cells.
type Max struct{ Value int }

func (Max) constraint() {}

// Fill distributes remaining space proportional to Weight.
// A Weight of 0 is treated as 1.
type Fill struct{ Weight int }

func (Fill) constraint() {}

// Ratio allocates Num/Den of the total available space.
type Ratio struct{ Num, Den int }

func (Ratio) constraint() {}

// Nominal returns the size a constraint asks for on its own: the value of
// Length, Min and Max, zero for the relative kinds.
func Nominal(c Constraint) int {
	switch v := c.(type) {
	case Length:
		return clampNonNeg(v.Value)
	case Min:
		return clampNonNeg(v.Value)
	case Max:
		return clampNonNeg(v.Value)
	}
	return 0
}

// Flex controls how surplus space is distributed.
type Flex int

const (
	// FlexStart packs items to the start; surplus goes at the end.
	FlexStart Flex = iota
	// FlexEnd packs items to the end; surplus goes at the start.
	FlexEnd
	// FlexCenter centers items; surplus is split equally on both sides.
	FlexCenter
	// FlexSpaceBetween distributes surplus evenly between items.
	FlexSpaceBetween
	// FlexSpaceAround distributes surplus evenly around items (half-gaps at edges).
	FlexSpaceAround
	// FlexSpaceEvenly distributes surplus evenly in all gaps (including edges).
	FlexSpaceEvenly
	// FlexLegacy hands the whole surplus to the last item.
	FlexLegacy
)

var flexNames = map[string]Flex{
	"start":        FlexStart,
	"end":          FlexEnd,
	"center":       FlexCenter,
	"spaceBetween": FlexSpaceBetween,
	"spaceAround":  FlexSpaceAround,
	"spaceEvenly":  FlexSpaceEvenly,
	"legacy":       FlexLegacy,
}

// ParseFlex returns the Flex for a configuration name.
func ParseFlex(name string) (Flex, bool) {
	f, ok := flexNames[name]
	return f, ok
}

// String returns the configuration name of f.
func (f Flex) String() string {
	for name, v := range flexNames {
		if v == f {
			return name
		}
	}
	return "unknown"
}

// Segment is a 1-D region along a layout axis.
type Segment struct {
	Start int
	Size  int
}

// End returns the position after the segment.
func (s Segment) End() int { return s.Start + s.Size }

// Solve distributes extent cells among constraints separated by spacing
// cells, packed according to flex. It returns one segment per constraint
// and len(constraints)+1 spacer segments, relative to position 0.
// Identical inputs always yield identical output.
func Solve(extent int, constraints []Constraint, spacing int, flex Flex) ([]Segment, []Segment) {
	n := len(constraints)
	if n == 0 {
		return nil, []Segment{{Start: 0, Size: clampNonNeg(extent)}}
	}
	extent = clampNonNeg(extent)
	spacing = clampNonNeg(spacing)

	available := clampNonNeg(extent - spacing*(n-1))
	allocs := allocate(constraints, available)

	totalAllocated := 0
	for _, a := range allocs {
		totalAllocated += a
	}
	surplus := available - totalAllocated
	if surplus < 0 {
		shrinkToFit(allocs, available)
		surplus = 0
	}
	if flex == FlexLegacy && surplus > 0 {
		allocs[n-1] += surplus
		surplus = 0
	}

	offsets := computeOffsets(flex, allocs, surplus, spacing)

	segments := make([]Segment, n)
	for i := range segments {
		segments[i] = Segment{Start: offsets[i], Size: allocs[i]}
	}

	spacers := make([]Segment, n+1)
	spacers[0] = Segment{Start: 0, Size: segments[0].Start}
	for i := 1; i < n; i++ {
		start := segments[i-1].End()
		spacers[i] = Segment{Start: start, Size: clampNonNeg(segments[i].Start - start)}
	}
	last := segments[n-1].End()
	spacers[n] = Segment{Start: min(last, extent), Size: clampNonNeg(extent - last)}

	return segments, spacers
}

// allocate runs the three sizing passes.
func allocate(constraints []Constraint, available int) []int {
	n := len(constraints)
	allocs := make([]int, n)
	isFill := make([]bool, n)
	isMin := make([]bool, n)
	isMax := make([]bool, n)
	fillWeights := make([]int, n)
	minValues := make([]int, n)
	maxValues := make([]int, n)

	totalFillWeight := 0
	fixedUsed := 0

	for i, c := range constraints {
		switch v := c.(type) {
		case Length:
			allocs[i] = clampNonNeg(v.Value)
			fixedUsed += allocs[i]
		case Percentage:
			allocs[i] = available * clampRange(v.Value, 0, 100) / 100
			fixedUsed += allocs[i]
		case Ratio:
			if v.Den > 0 {
				allocs[i] = available * clampNonNeg(v.Num) / v.Den
			}
			fixedUsed += allocs[i]
		case Fill:
			w := v.Weight
			if w <= 0 {
				w = 1
			}
			isFill[i] = true
			fillWeights[i] = w
			totalFillWeight += w
		case Min:
			isMin[i] = true
			minValues[i] = clampNonNeg(v.Value)
			allocs[i] = minValues[i]
			fixedUsed += allocs[i]
		case Max:
			isMax[i] = true
			maxValues[i] = clampNonNeg(v.Value)
			isFill[i] = true
			fillWeights[i] = 1
			totalFillWeight++
		}
	}

	remaining := clampNonNeg(available - fixedUsed)
	if totalFillWeight > 0 && remaining > 0 {
		lastFill := -1
		for i := 0; i < n; i++ {
			if isFill[i] {
				lastFill = i
			}
		}
		distributed := 0
		for i := 0; i < n; i++ {
			if !isFill[i] {
				continue
			}
			if i == lastFill {
				allocs[i] = remaining - distributed
			} else {
				allocs[i] = remaining * fillWeights[i] / totalFillWeight
				distributed += allocs[i]
			}
		}
	}

	// Capping a Max frees space; hand it to the remaining plain fills.
	for iter := 0; iter < n; iter++ {
		freed := 0
		for i := 0; i < n; i++ {
			if isMax[i] && allocs[i] > maxValues[i] {
				freed += allocs[i] - maxValues[i]
				allocs[i] = maxValues[i]
			}
		}
		if freed == 0 {
			break
		}
		for i := 0; i < n; i++ {
			if isFill[i] && !isMax[i] {
				allocs[i] += freed
				freed = 0
				break
			}
		}
		if freed > 0 {
			break
		}
	}

	for i := range allocs {
		if isMin[i] && allocs[i] < minValues[i] {
			allocs[i] = minValues[i]
		}
		allocs[i] = clampNonNeg(allocs[i])
	}
	return allocs
}

// computeOffsets converts allocations into start positions, applying
// spacing and flex distribution.
func computeOffsets(flex Flex, allocs []int, surplus, spacing int) []int {
	n := len(allocs)
	offsets := make([]int, n)

	switch flex {
	case FlexEnd:
		pos := surplus
		for i := 0; i < n; i++ {
			offsets[i] = pos
			pos += allocs[i] + spacing
		}

	case FlexCenter:
		pos := surplus / 2
		for i := 0; i < n; i++ {
			offsets[i] = pos
			pos += allocs[i] + spacing
		}

	case FlexSpaceBetween:
		gap, extra := 0, 0
		if n > 1 {
			gap = surplus / (n - 1)
			extra = surplus % (n - 1)
		}
		pos := 0
		for i := 0; i < n; i++ {
			offsets[i] = pos
			g := gap
			if i < extra {
				g++
			}
			pos += allocs[i] + spacing + g
		}

	case FlexSpaceAround:
		gap := surplus / (2 * n)
		pos := gap
		for i := 0; i < n; i++ {
			offsets[i] = pos
			pos += allocs[i] + spacing + 2*gap
		}

	case FlexSpaceEvenly:
		slots := n + 1
		gap := surplus / slots
		extra := surplus % slots
		pos := gap
		if extra > 0 {
			pos++
			extra--
		}
		for i := 0; i < n; i++ {
			offsets[i] = pos
			g := gap
			if extra > 0 {
				g++
				extra--
			}
			pos += allocs[i] + spacing + g
		}

	default:
		pos := 0
		for i := 0; i < n; i++ {
			offsets[i] = pos
			pos += allocs[i] + spacing
		}
	}

	return offsets
}

// shrinkToFit proportionally reduces allocations so they sum to at most target.
func shrinkToFit(allocs []int, target int) {
	if target <= 0 {
		for i := range allocs {
			allocs[i] = 0
		}
		return
	}

	total := 0
	for _, a := range allocs {
		total += a
	}
	if total <= target {
		return
	}

	newTotal := 0
	for i := range allocs {
		allocs[i] = allocs[i] * target / total
		newTotal += allocs[i]
	}
	if diff := target - newTotal; diff > 0 {
		allocs[len(allocs)-1] += diff
	}
}

func clampNonNeg(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout splits a Rect into sub-regions according to constraints.
type Layout struct {
	direction   Direction
	constraints []Constraint
	flex        Flex
	spacing     int
}

// New creates a Layout with the given direction and constraints.
func New(dir Direction, constraints ...Constraint) *Layout {
	return &Layout{
		direction:   dir,
		constraints: constraints,
	}
}

// NewHorizontal is New(Horizontal, constraints...).
func NewHorizontal(constraints ...Constraint) *Layout {
	return New(Horizontal, constraints...)
}

// NewVertical is New(Vertical, constraints...).
func NewVertical(constraints ...Constraint) *Layout {
	return New(Vertical, constraints...)
}

// WithFlex sets the flex mode for surplus distribution.
func (l *Layout) WithFlex(f Flex) *Layout {
	l.flex = f
	return l
}

// WithSpacing sets the gap (in cells) between each output region.
func (l *Layout) WithSpacing(s int) *Layout {
	l.spacing = clampNonNeg(s)
	return l
}

// Split divides area into len(constraints) non-overlapping Rects.
func (l *Layout) Split(area core.Rect) []core.Rect {
	rects, _ := l.SplitWithSpacers(area)
	return rects
}

// SplitWithSpacers divides area and also returns the n+1 spacer Rects.
func (l *Layout) SplitWithSpacers(area core.Rect) ([]core.Rect, []core.Rect) {
	extent := area.Width
	if l.direction == Vertical {
		extent = area.Height
	}
	segments, spacers := Solve(extent, l.constraints, l.spacing, l.flex)
	return l.toRects(area, segments), l.toRects(area, spacers)
}

func (l *Layout) toRects(area core.Rect, segments []Segment) []core.Rect {
	rects := make([]core.Rect, len(segments))
	for i, s := range segments {
		if l.direction == Horizontal {
			rects[i] = core.NewRect(area.X+s.Start, area.Y, s.Size, area.Height)
		} else {
			rects[i] = core.NewRect(area.X, area.Y+s.Start, area.Width, s.Size)
		}
	}
	return rects
}
