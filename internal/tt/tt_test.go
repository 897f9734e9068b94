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
	"testing"
	"unsafe"

	logging2 "github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/mjkopp/stonefish/internal/config"
	"github.com/mjkopp/stonefish/internal/logging"
	"github.com/mjkopp/stonefish/internal/position"
	. "github.com/mjkopp/stonefish/internal/types"
)

var logTest *logging2.Logger

func TestMain(m *testing.M) {
	config.Setup()
	logTest = logging.GetTestLog()
	m.Run()
}

func TestEntrySize(t *testing.T) {
	e := TtEntry{}
	assert.EqualValues(t, 16, unsafe.Sizeof(e))
	b := Bucket{}
	assert.EqualValues(t, 32, unsafe.Sizeof(b))
	logTest.Debugf("Size of Entry %d bytes, Bucket %d bytes", unsafe.Sizeof(e), unsafe.Sizeof(b))
}

func TestNew(t *testing.T) {
	table := NewTtTable(2)
	assert.Equal(t, uint64(65_536), table.maxNumberOfBuckets)
	assert.Equal(t, 65_536, cap(table.data))

	table = NewTtTable(64)
	assert.Equal(t, uint64(2_097_152), table.maxNumberOfBuckets)

	table = NewTtTable(0)
	assert.EqualValues(t, 0, table.maxNumberOfBuckets)
}

func TestGetAndProbe(t *testing.T) {
	table := NewTtTable(4)
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	pos := position.NewPosition()

	table.Put(pos.ZobristKey(), move, 5, Value(111), EXACT, Value(20))

	e := table.GetEntry(pos.ZobristKey())
	assert.NotNil(t, e)
	assert.Equal(t, pos.ZobristKey(), e.Key())
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, EXACT, e.Vtype())

	// age must be reduced by 1 by the depth-slot probe
	e = table.Probe(pos.ZobristKey())
	assert.EqualValues(t, 0, e.Age())

	// not in tt
	pos.DoMove(move)
	e = table.Probe(pos.ZobristKey())
	assert.Nil(t, e)
}

func TestClear(t *testing.T) {
	table := NewTtTable(1)
	pos := position.NewPosition()
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)

	table.Put(pos.ZobristKey(), move, 5, Value(111), EXACT, Value(20))
	assert.EqualValues(t, 1, table.Len())

	table.Clear()
	assert.Nil(t, table.Probe(pos.ZobristKey()))
	assert.EqualValues(t, 0, table.Len())
}

func TestPutUpdate(t *testing.T) {
	table := NewTtTable(4)
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)

	table.Put(111, move, 4, Value(111), ALPHA, ValueNA)
	assert.EqualValues(t, 1, table.Len())
	assert.EqualValues(t, 1, table.Stats.numberOfPuts)
	e := table.Probe(111)
	assert.EqualValues(t, 111, e.Key())
	assert.EqualValues(t, 4, e.Depth())
	assert.Equal(t, ALPHA, e.Vtype())

	// same key - updates in place, no collision counted
	table.Put(111, move, 5, Value(112), BETA, ValueNA)
	assert.EqualValues(t, 1, table.Len())
	assert.EqualValues(t, 2, table.Stats.numberOfPuts)
	assert.EqualValues(t, 1, table.Stats.numberOfUpdates)
	assert.EqualValues(t, 0, table.Stats.numberOfCollisions)
	e = table.Probe(111)
	assert.EqualValues(t, 5, e.Depth())
	assert.Equal(t, BETA, e.Vtype())
}

func TestPutCollisionDepthPreferred(t *testing.T) {
	table := NewTtTable(4)
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)

	collisionKey := Key(111 + table.maxNumberOfBuckets)

	table.Put(111, move, 8, Value(111), EXACT, ValueNA)
	// shallower depth for a colliding key falls to the always-replace slot,
	// leaving the deep entry intact in the depth slot.
	table.Put(collisionKey, move, 2, Value(222), EXACT, ValueNA)
	assert.EqualValues(t, 2, table.Len())
	assert.EqualValues(t, 1, table.Stats.numberOfCollisions)

	deep := table.GetEntry(111)
	assert.NotNil(t, deep)
	assert.EqualValues(t, 8, deep.Depth())

	shallow := table.GetEntry(collisionKey)
	assert.NotNil(t, shallow)
	assert.EqualValues(t, 2, shallow.Depth())

	// a deeper collision displaces the depth slot's occupant into the
	// always-replace slot instead of discarding it.
	table.Put(collisionKey, move, 10, Value(333), EXACT, ValueNA)
	assert.NotNil(t, table.GetEntry(111))
	assert.EqualValues(t, 10, table.GetEntry(collisionKey).Depth())
}

func TestHashfull(t *testing.T) {
	table := NewTtTable(1)
	assert.EqualValues(t, 0, table.Hashfull())
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	for i := uint64(0); i < table.maxNumberOfBuckets/10; i++ {
		table.Put(Key(i), move, 1, Value(1), EXACT, ValueNA)
	}
	assert.True(t, table.Hashfull() > 0)
}

func TestAgeEntries(t *testing.T) {
	table := NewTtTable(4)
	move := NewMove(SqE2, SqE4, FlagDoublePawnPush)
	table.Put(1, move, 3, Value(1), EXACT, ValueNA)

	before := table.GetEntry(1).Age()
	table.AgeEntries()
	after := table.GetEntry(1).Age()
	assert.EqualValues(t, before+1, after)
}
