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

// Package tt implements the search's transposition table (cache).
//
// Unlike a single-entry-per-hash table, each hash index addresses a
// Bucket of two entries: a depth-preferred slot, kept only while no
// deeper or fresher search result wants the slot, and an always-replace
// slot that absorbs whatever the depth-preferred slot turns away. This
// keeps the occasional very deep result alive across a sequence of
// shallow probes (e.g. quiescence search) that would otherwise evict it
// in a single-entry scheme.
//
// TtTable is not thread safe and needs to be synchronized externally if
// used from multiple goroutines. This is especially relevant for Resize
// and Clear, which must not be called concurrently with Probe/Put while
// a search is running.
package tt

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/mjkopp/stonefish/internal/logging"
	. "github.com/mjkopp/stonefish/internal/types"
	"github.com/mjkopp/stonefish/internal/util"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the maximal memory usage of the tt.
	MaxSizeInMB = 65_536

	bucketSize = unsafe.Sizeof(Bucket{})
)

// TtTable is the transposition table. Create with NewTtTable.
type TtTable struct {
	log                *logging.Logger
	data               []Bucket
	sizeInByte         uint64
	hashKeyMask        uint64
	maxNumberOfBuckets uint64
	numberOfEntries    uint64
	Stats              TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable sized to at most sizeInMByte bytes.
// The actual number of buckets is the largest power of 2 that fits, so
// addressing can use a bit mask instead of a modulo.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := TtTable{
		log: myLogging.GetLog(),
	}
	tt.Resize(sizeInMByte)
	return &tt
}

// Resize resizes the tt. All entries are cleared.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	if tt.sizeInByte/uint64(bucketSize) == 0 {
		tt.maxNumberOfBuckets = 0
	} else {
		tt.maxNumberOfBuckets = 1 << uint64(math.Floor(math.Log2(float64(tt.sizeInByte/uint64(bucketSize)))))
	}
	tt.hashKeyMask = tt.maxNumberOfBuckets - 1

	tt.sizeInByte = tt.maxNumberOfBuckets * uint64(bucketSize)
	tt.data = make([]Bucket, tt.maxNumberOfBuckets)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d buckets (%d entries, size=%dByte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfBuckets, 2*tt.maxNumberOfBuckets, bucketSize, sizeInMByte))
	tt.log.Debug(util.MemStat())
}

// GetEntry returns a pointer to the entry matching key, preferring the
// depth slot, or nil if neither slot of the bucket holds it. Does not
// change statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	b := &tt.data[tt.hash(key)]
	if b.depthSlot.key == key {
		return &b.depthSlot
	}
	if b.alwaysSlot.key == key {
		return &b.alwaysSlot
	}
	return nil
}

// Probe returns a pointer to the entry matching key or nil if not found.
// On a hit in the depth slot the entry's age is decreased.
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.numberOfProbes++
	b := &tt.data[tt.hash(key)]
	if b.depthSlot.key == key {
		b.depthSlot.decreaseAge()
		tt.Stats.numberOfHits++
		return &b.depthSlot
	}
	if b.alwaysSlot.key == key {
		tt.Stats.numberOfHits++
		return &b.alwaysSlot
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores a search result in the tt.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value) {
	if tt.maxNumberOfBuckets == 0 {
		return
	}

	tt.Stats.numberOfPuts++
	b := &tt.data[tt.hash(key)]

	// same key already in depth slot - update in place
	if b.depthSlot.key == key {
		tt.Stats.numberOfUpdates++
		b.depthSlot.store(key, move, depth, value, valueType, eval)
		return
	}

	// empty depth slot, higher depth, or stale same-depth occupant - claim it
	if b.depthSlot.isEmpty() || depth > b.depthSlot.Depth() ||
		(depth == b.depthSlot.Depth() && b.depthSlot.Age() > 1) {
		if !b.depthSlot.isEmpty() {
			tt.Stats.numberOfCollisions++
			tt.Stats.numberOfOverwrites++
			// displaced depth occupant still has value - park it in the
			// always-replace slot rather than discarding it outright.
			if b.alwaysSlot.isEmpty() {
				tt.numberOfEntries++
			}
			b.alwaysSlot = b.depthSlot
		} else {
			tt.numberOfEntries++
		}
		b.depthSlot = TtEntry{}
		b.depthSlot.store(key, move, depth, value, valueType, eval)
		return
	}

	// depth slot holds a more valuable entry for a different key - fall
	// through to the always-replace slot.
	tt.Stats.numberOfCollisions++
	if b.alwaysSlot.key == key {
		tt.Stats.numberOfUpdates++
		b.alwaysSlot.store(key, move, depth, value, valueType, eval)
		return
	}
	if b.alwaysSlot.isEmpty() {
		tt.numberOfEntries++
	} else {
		tt.Stats.numberOfOverwrites++
	}
	b.alwaysSlot = TtEntry{}
	b.alwaysSlot.store(key, move, depth, value, valueType, eval)
}

// Clear clears all entries of the tt.
func (tt *TtTable) Clear() {
	tt.data = make([]Bucket, tt.maxNumberOfBuckets)
	tt.numberOfEntries = 0
	tt.Stats = TtStats{}
}

// Hashfull returns how full the transposition table is in permill, as
// per the UCI "hashfull" info field.
func (tt *TtTable) Hashfull() int {
	maxEntries := 2 * tt.maxNumberOfBuckets
	if maxEntries == 0 {
		return 0
	}
	return int((1000 * tt.numberOfEntries) / maxEntries)
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max buckets %d (%d entries of size %d Bytes) filled %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfBuckets, 2*tt.maxNumberOfBuckets, TtEntrySize, tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non empty entries in the tt.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries ages every entry in the tt. Fans out across a bounded
// number of goroutines, each aging its own slice of buckets.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32)
		if numberOfGoroutines > tt.maxNumberOfBuckets {
			numberOfGoroutines = tt.maxNumberOfBuckets
		}
		if numberOfGoroutines == 0 {
			numberOfGoroutines = 1
		}
		var wg sync.WaitGroup
		wg.Add(int(numberOfGoroutines))
		slice := tt.maxNumberOfBuckets / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.maxNumberOfBuckets
				}
				for n := start; n < end; n++ {
					if !tt.data[n].depthSlot.isEmpty() {
						tt.data[n].depthSlot.increaseAge()
					}
					if !tt.data[n].alwaysSlot.isEmpty() {
						tt.data[n].alwaysSlot.increaseAge()
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d buckets in %d ms\n", tt.numberOfEntries, len(tt.data), elapsed.Milliseconds()))
}

// ///////////////////////////////////////////////////////////
// Private
// ///////////////////////////////////////////////////////////

// hash generates the internal bucket index for the data array.
func (tt *TtTable) hash(key Key) uint64 {
	return uint64(key) & tt.hashKeyMask
}
