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

// Package types provides the fundamental chess board representation: squares,
// files, ranks, pieces, bitboards and the magic-bitboard attack tables built
// on top of them, plus the piece/square tables used by the evaluator.
//
// All of the package's lookup tables are precomputed once, in a fixed order,
// by the package init() below - callers never need to call anything before
// using the package.
package types

import (
	"github.com/mjkopp/stonefish/internal/logging"
)

// Engine-wide sizing constants.
const (
	// MaxDepth is the deepest ply the search is allowed to reach.
	MaxDepth = 128

	// MaxMoves is larger than the maximum number of legal moves possible in
	// any reachable chess position (the true maximum is 218).
	MaxMoves = 512

	// KB, MB and GB are byte-size helpers for sizing the transposition table.
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024

	// GamePhaseMax is the game-phase value of a board with all non-pawn,
	// non-king material still on it; 0 is a bare king-and-pawns ending.
	GamePhaseMax = 24
)

var log = logging.GetLog()

var initialized = false

// Init precomputes all of the package's lookup tables. It is idempotent and
// safe to call multiple times; only the first call does any work.
//
// The three precompute passes have a strict order: initBb (and the magic
// bitboard search it triggers) calls Square.To, which needs initSquares to
// have already run, and initPosValues needs neither but is kept last since
// it is the cheapest and least foundational of the three.
func Init() {
	if initialized {
		return
	}
	log.Debug("Initializing types package...")
	initSquares()
	initBb()
	initPosValues()
	initialized = true
	log.Debug("Initializing types package done")
}

func init() {
	Init()
}
