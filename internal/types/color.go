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

import "fmt"

// Color represents one of the two sides in a chess game.
type Color uint8

// Constants for each color.
const (
	White       Color = 0
	Black       Color = 1
	ColorNone   Color = 2
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var moveDirectionFactor = [2]int{1, -1}

// Direction returns +1 for White and -1 for Black - used to flip
// an evaluation from white's perspective to the side to move's.
func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

var pawnDir = [2]Direction{North, South}

// MoveDirection returns the direction a pawn of this color advances.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

// PromotionRankBb returns the rank on which this color's pawns promote.
// Computed on call rather than cached in a package var, since the rank
// bitboards themselves are only populated once initBb runs.
func (c Color) PromotionRankBb() Bitboard {
	if c == White {
		return Rank8.Bb()
	}
	return Rank1.Bb()
}

// PawnDoubleRank returns the rank a pawn of this color passes over (and
// where the en-passant target square lands) on a double push.
func (c Color) PawnDoubleRank() Bitboard {
	if c == White {
		return Rank3.Bb()
	}
	return Rank6.Bb()
}

// PawnStartRank returns the rank this color's pawns start the game on.
func (c Color) PawnStartRank() Bitboard {
	if c == White {
		return Rank2.Bb()
	}
	return Rank7.Bb()
}
