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

package tt

import (
	. "github.com/mjkopp/stonefish/internal/types"
)

// TtEntry is one slot's worth of data. Each entry is bit packed to stay
// at 16 bytes so two of them (a Bucket) fit in a single cache line.
type TtEntry struct {
	key   Key    // 64-bit Zobrist Key
	move  uint16 // 16-bit move part of a Move - convert with Move(e.move)
	eval  int16  // 16-bit static evaluation value
	value int16  // 16-bit search value
	vmeta uint16 // 16-bit: depth 7-bit, vtype 2-bit, age 3-bit
}

const (
	// TtEntrySize is the size in bytes of each TtEntry.
	TtEntrySize = 16

	ageMask    = uint16(0b0000_0000_0000_0111)
	vtypeMask  = uint16(0b0000_0000_0001_1000)
	vtypeShift = uint16(3)
	depthMask  = uint16(0b0000_1111_1110_0000)
	depthShift = uint16(5)
)

func (e *TtEntry) isEmpty() bool {
	return e.key == 0
}

func (e *TtEntry) decreaseAge() {
	if e.Age() > 0 {
		e.vmeta--
	}
}

func (e *TtEntry) increaseAge() {
	if e.Age() < 7 {
		e.vmeta++
	}
}

// Key returns the full Zobrist key stored for this entry.
func (e *TtEntry) Key() Key {
	return e.key
}

// Move returns the best move found for this position.
func (e *TtEntry) Move() Move {
	return Move(e.move)
}

// Value returns the search value stored for this entry.
func (e *TtEntry) Value() Value {
	return Value(e.value)
}

// Eval returns the static evaluation stored for this entry.
func (e *TtEntry) Eval() Value {
	return Value(e.eval)
}

// Depth returns the search depth the entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the number of searches since this entry was last touched.
func (e *TtEntry) Age() int8 {
	return int8(e.vmeta & ageMask)
}

// Vtype returns whether the stored value is exact or a bound.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}

func (e *TtEntry) store(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	e.key = key
	if move != MoveNone {
		e.move = uint16(move)
	}
	if eval != ValueNA {
		e.eval = int16(eval)
	}
	if value != ValueNA {
		e.value = int16(value)
		e.vmeta = uint16(depth)<<depthShift + uint16(valueType)<<vtypeShift
	}
}

// Bucket groups two entries sharing the same hash index: a depth
// preferred slot and an always-replace slot. Two 16-byte entries fit
// one 32-byte cache line pair, keeping a bucket lookup to a single
// cache miss on most architectures.
type Bucket struct {
	depthSlot  TtEntry
	alwaysSlot TtEntry
}
