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

package movegen

import (
	"fmt"
	"strings"

	"github.com/mjkopp/stonefish/internal/moveslice"
	. "github.com/mjkopp/stonefish/internal/types"
)

// ScoredMove pairs a Move with a sort value used only while generating and
// ordering moves. internal/types.Move is the spec's bare 16-bit encoding
// and has no spare bits to carry a value, unlike the teacher's pkg/types.Move
// which packs one into its high bits - so the value travels alongside the
// move in this struct instead.
type ScoredMove struct {
	Move  Move
	Value int32
}

// ScoredMoveSlice is a reusable, preallocated buffer of ScoredMove. Mirrors
// moveslice.MoveSlice's preallocated-backing-array idiom, scoped to the
// move generator's internal ordering needs.
type ScoredMoveSlice []ScoredMove

// NewScoredMoveSlice creates a new scored move slice with the given
// capacity and 0 elements.
func NewScoredMoveSlice(cap int) *ScoredMoveSlice {
	moves := make([]ScoredMove, 0, cap)
	return (*ScoredMoveSlice)(&moves)
}

// Len returns the number of moves currently stored in the slice.
func (ms *ScoredMoveSlice) Len() int {
	return len(*ms)
}

// PushBack appends a move with its sort value at the end of the slice.
func (ms *ScoredMoveSlice) PushBack(m Move, value int32) {
	*ms = append(*ms, ScoredMove{Move: m, Value: value})
}

// At returns the scored move at index i.
func (ms *ScoredMoveSlice) At(i int) ScoredMove {
	return (*ms)[i]
}

// Set overwrites the scored move at index i.
func (ms *ScoredMoveSlice) Set(i int, sm ScoredMove) {
	(*ms)[i] = sm
}

// Clear removes all moves but retains the underlying capacity.
func (ms *ScoredMoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// ForEach calls f once per index in stored order.
func (ms *ScoredMoveSlice) ForEach(f func(index int)) {
	for index := range *ms {
		f(index)
	}
}

// Sort orders moves from highest Value to lowest. Uses a stable insertion
// sort as these lists are mostly pre-sorted and small, comparing the
// separate Value field rather than bits packed into the move itself.
func (ms *ScoredMoveSlice) Sort() {
	l := len(*ms)
	for i := 1; i < l; i++ {
		tmp := (*ms)[i]
		j := i
		for j > 0 && tmp.Value > (*ms)[j-1].Value {
			(*ms)[j] = (*ms)[j-1]
			j--
		}
		(*ms)[j] = tmp
	}
}

// MovesInto clears dest and copies just the Move field of every element,
// in order, into it. This is the plain-move view handed back to callers
// outside the generator, which never see sort values.
func (ms *ScoredMoveSlice) MovesInto(dest *moveslice.MoveSlice) {
	dest.Clear()
	for _, sm := range *ms {
		dest.PushBack(sm.Move)
	}
}

// String returns a string representation of the scored move list.
func (ms *ScoredMoveSlice) String() string {
	var os strings.Builder
	os.WriteString(fmt.Sprintf("ScoredMoveList: [%d] { ", len(*ms)))
	for i, sm := range *ms {
		if i > 0 {
			os.WriteString(", ")
		}
		os.WriteString(fmt.Sprintf("%s(%d)", sm.Move.StringUci(), sm.Value))
	}
	os.WriteString(" }")
	return os.String()
}
