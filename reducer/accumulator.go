package reducer

import (
	"errors"
	"strconv"
	"strings"
)

type Class int

const (
	Blank Class = iota
	Numeric
	Unparsed
)

func (c Class) String() string {
	switch c {
	case Blank:
		return "blank"
	case Numeric:
		return "numeric"
	case Unparsed:
		return "unparsed"
	}
	return "unknown"
}

// Classify trims surrounding whitespace from line and reports which
// class it falls into.  The returned value is meaningful only when the
// class is Numeric.  A number too large for a float64 is Numeric with
// value ±Inf.
func Classify(line string) (Class, float64) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Blank, 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Unparsed, 0
	}
	return Numeric, v
}

// Accumulator holds the running sum and count of numeric lines.  The zero
// value is ready to use.
type Accumulator struct {
	Stats
	sum   float64
	count uint64
}

// Consume classifies line and folds it into the accumulator.  Blank and
// unparsable lines are skipped and only show up in Stats.
func (a *Accumulator) Consume(line string) {
	class, v := Classify(line)
	switch class {
	case Blank:
		a.Blank++
	case Unparsed:
		a.Unparsed++
	case Numeric:
		a.sum += v
		a.count++
	}
}

func (a *Accumulator) Sum() float64 {
	return a.sum
}

func (a *Accumulator) Count() uint64 {
	return a.count
}

// Result reduces the accumulated state.  The mean of zero values is 0,
// not NaN.
func (a *Accumulator) Result(op Operation) float64 {
	if op == Mean {
		var v float64
		if a.count > 0 {
			v = a.sum / float64(a.count)
		}
		return v
	}
	return a.sum
}

// Lines folds an in-memory sequence of lines and reduces it with op.
func Lines(lines []string, op Operation) float64 {
	var a Accumulator
	for _, line := range lines {
		a.Consume(line)
	}
	return a.Result(op)
}
