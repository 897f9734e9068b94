//
// stonefish - a UCI chess engine in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"strconv"
	"strings"

	"github.com/mjkopp/stonefish/internal/util"
)

// Value is a centipawn evaluation or search score.
type Value int32

// Value constants. MateBase/MateThreshold follow spec.md §4.6.2 exactly;
// the remaining bounds follow the teacher's convention of a generous
// headroom above any reachable material count.
const (
	ValueZero      Value = 0
	ValueDraw      Value = 0
	ValueInf       Value = 1_000_000
	ValueNA        Value = -ValueInf - 1
	MateBase       Value = 99_000
	MateThreshold  Value = 80_000
	ValueMax       Value = MateBase
	ValueMin       Value = -MateBase
)

// IsValid checks value is within the representable range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsMateValue reports whether v encodes a forced mate (see MateBase).
func (v Value) IsMateValue() bool {
	return util.Abs(int(v)) > int(MateThreshold) && util.Abs(int(v)) <= int(MateBase)
}

// String renders "cp N" or "mate M" per spec.md §6's search progress line.
func (v Value) String() string {
	var os strings.Builder
	switch {
	case v.IsMateValue():
		os.WriteString("mate ")
		n := (int(MateBase) - util.Abs(int(v)) + 1) / 2
		if v < ValueZero {
			n = -n
		}
		os.WriteString(strconv.Itoa(n))
	case v == ValueNA:
		os.WriteString("N/A")
	default:
		os.WriteString("cp ")
		os.WriteString(strconv.Itoa(int(v)))
	}
	return os.String()
}
