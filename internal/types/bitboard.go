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
	"fmt"
	"math/bits"
	"strings"

	"github.com/mjkopp/stonefish/internal/util"
)

// Bitboard is a 64-bit set with one bit per square.
type Bitboard uint64

// Bb returns the single-bit Bitboard for the square.
func (sq Square) Bb() Bitboard {
	return sqBb[sq]
}

// FileBb returns the Bitboard of the file this square is on.
func (sq Square) FileBb() Bitboard {
	return sqToFileBb[sq]
}

// RankBb returns the Bitboard of the rank this square is on.
func (sq Square) RankBb() Bitboard {
	return sqToRankBb[sq]
}

// PushSquare sets the bit for sq and returns the new Bitboard.
func PushSquare(b Bitboard, sq Square) Bitboard {
	return b | sqBb[sq]
}

// PushSquare sets the bit for sq in place and returns the new value.
func (b *Bitboard) PushSquare(sq Square) Bitboard {
	*b |= sqBb[sq]
	return *b
}

// PopSquare clears the bit for sq and returns the new Bitboard.
func PopSquare(b Bitboard, sq Square) Bitboard {
	return b &^ sqBb[sq]
}

// PopSquare clears the bit for sq in place and returns the new value.
func (b *Bitboard) PopSquare(sq Square) Bitboard {
	*b = *b &^ sqBb[sq]
	return *b
}

// Has reports whether sq's bit is set.
func (b Bitboard) Has(sq Square) bool {
	return b&sqBb[sq] != 0
}

// ShiftBitboard shifts every bit of b one square in direction d, clearing
// bits that would wrap around the board edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return (Rank8Mask & b) << 8
	case East:
		return (MsbMask & b) << 1 & FileAMask
	case South:
		return b >> 8
	case West:
		return (b >> 1) & FileHMask
	case Northeast:
		return (Rank8Mask & b) << 9 & FileAMask
	case Southeast:
		return (b >> 7) & FileAMask
	case Southwest:
		return (b >> 9) & FileHMask
	case Northwest:
		return (b << 7) & FileHMask
	}
	return b
}

// Lsb returns the least significant set bit as a Square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set bit as a Square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == BbZero {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb removes and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	if *b == BbZero {
		return SqNone
	}
	lsb := b.Lsb()
	*b &= *b - 1
	return lsb
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// FileDistance returns the absolute file distance between two files.
func FileDistance(f1, f2 File) int {
	return util.Abs(int(f2) - int(f1))
}

// RankDistance returns the absolute rank distance between two ranks.
func RankDistance(r1, r2 Rank) int {
	return util.Abs(int(r2) - int(r1))
}

// SquareDistance returns the Chebyshev distance between two squares.
func SquareDistance(s1, s2 Square) int {
	if !s1.IsValid() || !s2.IsValid() || s1 == s2 {
		return 0
	}
	return squareDistance[s1][s2]
}

// CenterDistance returns the distance to the nearest of the four center
// squares, used by the evaluator to reward centralization.
func (sq Square) CenterDistance() int {
	return centerDistance[sq]
}

// GetAttacksBb returns the attack Bitboard of a piece of type pt placed on
// sq given the board's occupancy. Sliding pieces look up the magic tables;
// knight and king ignore occupied (precomputed pseudo-attacks).
func GetAttacksBb(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Bishop:
		m := &bishopMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Rook:
		m := &rookMagics[sq]
		return m.Attacks[m.index(occupied)]
	case Queen:
		mb := &bishopMagics[sq]
		mr := &rookMagics[sq]
		return mb.Attacks[mb.index(occupied)] | mr.Attacks[mr.index(occupied)]
	case Knight, King:
		return nonSliderAttacks[pt][sq]
	default:
		panic(fmt.Sprintf("GetAttacksBb called with unsupported piece type %d", pt))
	}
}

// GetPawnAttacks returns the squares a pawn of color c on sq attacks.
func GetPawnAttacks(c Color, sq Square) Bitboard {
	return pawnAttacks[c][sq]
}

// GetPseudoAttacks returns the attack Bitboard of a piece of type pt placed
// on sq on an otherwise empty board. For sliding pieces this is the magic
// attack set with zero occupancy; for knight and king it is the same table
// GetAttacksBb uses, since those never depend on occupancy.
func GetPseudoAttacks(pt PieceType, sq Square) Bitboard {
	return GetAttacksBb(pt, sq, BbZero)
}

// FilesWestMask returns the files strictly west of sq.
func (sq Square) FilesWestMask() Bitboard { return filesWestMask[sq] }

// FilesEastMask returns the files strictly east of sq.
func (sq Square) FilesEastMask() Bitboard { return filesEastMask[sq] }

// FileWestMask returns the single file immediately west of sq.
func (sq Square) FileWestMask() Bitboard { return fileWestMask[sq] }

// FileEastMask returns the single file immediately east of sq.
func (sq Square) FileEastMask() Bitboard { return fileEastMask[sq] }

// RanksNorthMask returns the ranks strictly north of sq.
func (sq Square) RanksNorthMask() Bitboard { return ranksNorthMask[sq] }

// RanksSouthMask returns the ranks strictly south of sq.
func (sq Square) RanksSouthMask() Bitboard { return ranksSouthMask[sq] }

// NeighbourFilesMask returns the files immediately east and west of sq.
func (sq Square) NeighbourFilesMask() Bitboard { return neighbourFilesMask[sq] }

// Ray returns the squares reachable from sq along the given orientation,
// stopping at the board edge (not occupancy-aware).
func (sq Square) Ray(o Orientation) Bitboard {
	return rays[o][sq]
}

// Intermediate returns the squares strictly between sq1 and sq2 if they
// share a rank, file or diagonal, else BbZero.
func Intermediate(sq1, sq2 Square) Bitboard {
	return intermediate[sq1][sq2]
}

// Intermediate returns the squares strictly between sq and to.
func (sq Square) Intermediate(to Square) Bitboard {
	return intermediate[sq][to]
}

// PassedPawnMask returns the squares on sq's file and the two neighbour
// files, ahead of sq from color c's perspective, that an enemy pawn
// occupying would stop a pawn of color c on sq from passing.
func (sq Square) PassedPawnMask(c Color) Bitboard {
	return passedPawnMask[c][sq]
}

// KingSideCastleMask returns the king-side corner squares of color c's
// back rank (f1, g1, h1 for White; f8, g8, h8 for Black).
func KingSideCastleMask(c Color) Bitboard {
	return kingSideCastleMask[c]
}

// QueenSideCastleMask returns the queen-side corner squares of color c's
// back rank (a1-d1 for White; a8-d8 for Black).
func QueenSideCastleMask(c Color) Bitboard {
	return queenSideCastleMask[c]
}

// GetCastlingRights returns which castling rights are forfeited when a
// piece moves to or from sq (used to update Position.castling incrementally).
func GetCastlingRights(sq Square) CastlingRights {
	return castlingRights[sq]
}

// SquaresBb returns all squares of the given "board color" (light/dark),
// used for same-colored-bishop and drawn-endgame detection.
func SquaresBb(c Color) Bitboard {
	return squaresBb[c]
}

// String renders the 64 bits as a binary string, most significant bit
// (h8) first and a1 last.
func (b Bitboard) String() string {
	return fmt.Sprintf("%-0.64b", uint64(b))
}

// StringBoard renders b as an 8x8 ASCII board, rank 8 on top.
func (b Bitboard) StringBoard() string {
	var os strings.Builder
	os.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank1; r <= Rank8; r++ {
		for f := FileA; f <= FileH; f++ {
			if b.Has(SquareOf(f, Rank8-r)) {
				os.WriteString("| X ")
			} else {
				os.WriteString("|   ")
			}
		}
		os.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return os.String()
}

// StringGrouped renders the 64 bits LSB to MSB (A1..H8), dot-separated by
// rank, followed by the decimal value.
func (b Bitboard) StringGrouped() string {
	var os strings.Builder
	for i := 0; i < 64; i++ {
		if i > 0 && i%8 == 0 {
			os.WriteString(".")
		}
		if b&(BbOne<<i) != 0 {
			os.WriteString("1")
		} else {
			os.WriteString("0")
		}
	}
	fmt.Fprintf(&os, " (%d)", uint64(b))
	return os.String()
}

// Bitboard constants.
const (
	BbZero = Bitboard(0)
	BbAll  = ^BbZero
	BbOne  = Bitboard(1)

	FileA_Bb Bitboard = 0x0101010101010101
	FileB_Bb          = FileA_Bb << 1
	FileC_Bb          = FileA_Bb << 2
	FileD_Bb          = FileA_Bb << 3
	FileE_Bb          = FileA_Bb << 4
	FileF_Bb          = FileA_Bb << 5
	FileG_Bb          = FileA_Bb << 6
	FileH_Bb          = FileA_Bb << 7

	Rank1_Bb Bitboard = 0xFF
	Rank2_Bb          = Rank1_Bb << (8 * 1)
	Rank3_Bb          = Rank1_Bb << (8 * 2)
	Rank4_Bb          = Rank1_Bb << (8 * 3)
	Rank5_Bb          = Rank1_Bb << (8 * 4)
	Rank6_Bb          = Rank1_Bb << (8 * 5)
	Rank7_Bb          = Rank1_Bb << (8 * 6)
	Rank8_Bb          = Rank1_Bb << (8 * 7)

	MsbMask   = ^(Bitboard(1) << 63)
	Rank8Mask = ^Rank8_Bb
	FileAMask = ^FileA_Bb
	FileHMask = ^FileH_Bb

	DiagUpA1 Bitboard = 0b10000000_01000000_00100000_00010000_00001000_00000100_00000010_00000001
	DiagUpB1          = (MsbMask & DiagUpA1) << 1 & FileAMask
	DiagUpC1          = (MsbMask & DiagUpB1) << 1 & FileAMask
	DiagUpD1          = (MsbMask & DiagUpC1) << 1 & FileAMask
	DiagUpE1          = (MsbMask & DiagUpD1) << 1 & FileAMask
	DiagUpF1          = (MsbMask & DiagUpE1) << 1 & FileAMask
	DiagUpG1          = (MsbMask & DiagUpF1) << 1 & FileAMask
	DiagUpH1          = (MsbMask & DiagUpG1) << 1 & FileAMask
	DiagUpA2          = (Rank8Mask & DiagUpA1) << 8
	DiagUpA3          = (Rank8Mask & DiagUpA2) << 8
	DiagUpA4          = (Rank8Mask & DiagUpA3) << 8
	DiagUpA5          = (Rank8Mask & DiagUpA4) << 8
	DiagUpA6          = (Rank8Mask & DiagUpA5) << 8
	DiagUpA7          = (Rank8Mask & DiagUpA6) << 8
	DiagUpA8          = (Rank8Mask & DiagUpA7) << 8

	DiagDownH1 Bitboard = 0b0000000100000010000001000000100000010000001000000100000010000000
	DiagDownH2          = (Rank8Mask & DiagDownH1) << 8
	DiagDownH3          = (Rank8Mask & DiagDownH2) << 8
	DiagDownH4          = (Rank8Mask & DiagDownH3) << 8
	DiagDownH5          = (Rank8Mask & DiagDownH4) << 8
	DiagDownH6          = (Rank8Mask & DiagDownH5) << 8
	DiagDownH7          = (Rank8Mask & DiagDownH6) << 8
	DiagDownH8          = (Rank8Mask & DiagDownH7) << 8
	DiagDownG1          = (DiagDownH1 >> 1) & FileHMask
	DiagDownF1          = (DiagDownG1 >> 1) & FileHMask
	DiagDownE1          = (DiagDownF1 >> 1) & FileHMask
	DiagDownD1          = (DiagDownE1 >> 1) & FileHMask
	DiagDownC1          = (DiagDownD1 >> 1) & FileHMask
	DiagDownB1          = (DiagDownC1 >> 1) & FileHMask
	DiagDownA1          = (DiagDownB1 >> 1) & FileHMask

	CenterFiles   = FileD_Bb | FileE_Bb
	CenterRanks   = Rank4_Bb | Rank5_Bb
	CenterSquares = CenterFiles & CenterRanks
)

func (sq Square) bitboard() Bitboard {
	return Bitboard(uint64(1) << sq)
}

var (
	sqBb [SqLength]Bitboard

	sqToFileBb [SqLength]Bitboard
	sqToRankBb [SqLength]Bitboard

	sqDiagUpBb   [SqLength]Bitboard
	sqDiagDownBb [SqLength]Bitboard

	squareDistance [SqLength][SqLength]int

	pawnAttacks      [2][SqLength]Bitboard
	nonSliderAttacks [PtLength][SqLength]Bitboard

	rookTable  []Bitboard
	rookMagics [SqLength]Magic

	bishopTable  []Bitboard
	bishopMagics [SqLength]Magic

	filesWestMask      [SqLength]Bitboard
	filesEastMask      [SqLength]Bitboard
	ranksNorthMask     [SqLength]Bitboard
	ranksSouthMask     [SqLength]Bitboard
	fileWestMask       [SqLength]Bitboard
	fileEastMask       [SqLength]Bitboard
	neighbourFilesMask [SqLength]Bitboard

	rays [8][SqLength]Bitboard

	intermediate [SqLength][SqLength]Bitboard

	passedPawnMask [2][SqLength]Bitboard

	kingSideCastleMask  [2]Bitboard
	queenSideCastleMask [2]Bitboard

	castlingRights [SqLength]CastlingRights

	squaresBb [2]Bitboard

	centerDistance [SqLength]int
)

// initBb precomputes all the lookup tables above. Order matters: several
// steps depend on tables built by earlier steps.
func initBb() {
	rankFileBbPreCompute()
	squareBitboardsPreCompute()
	squareDistancePreCompute()
	nonSlidingAttacksPreCompute()
	initMagicBitboards()
	neighbourMasksPreCompute()
	raysPreCompute()
	intermediatePreCompute()
	maskPassedPawnsPreCompute()
	centerDistancePreCompute()
	castleMasksPreCompute()
	squareColorsPreCompute()
}

func rankFileBbPreCompute() {
	for i := Rank1; i <= Rank8; i++ {
		rankBb[i] = Rank1_Bb << (8 * i)
	}
	for i := FileA; i <= FileH; i++ {
		fileBb[i] = FileA_Bb << i
	}
}

func squareBitboardsPreCompute() {
	for sq := SqA1; sq < SqNone; sq++ {
		sqBb[sq] = sq.bitboard()

		sqToFileBb[sq] = FileA_Bb << sq.FileOf()
		sqToRankBb[sq] = Rank1_Bb << (8 * sq.RankOf())

		switch {
		case DiagUpA8&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA8
		case DiagUpA7&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA7
		case DiagUpA6&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA6
		case DiagUpA5&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA5
		case DiagUpA4&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA4
		case DiagUpA3&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA3
		case DiagUpA2&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA2
		case DiagUpA1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpA1
		case DiagUpB1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpB1
		case DiagUpC1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpC1
		case DiagUpD1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpD1
		case DiagUpE1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpE1
		case DiagUpF1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpF1
		case DiagUpG1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpG1
		case DiagUpH1&sq.bitboard() > 0:
			sqDiagUpBb[sq] = DiagUpH1
		}

		switch {
		case DiagDownH8&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH8
		case DiagDownH7&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH7
		case DiagDownH6&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH6
		case DiagDownH5&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH5
		case DiagDownH4&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH4
		case DiagDownH3&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH3
		case DiagDownH2&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH2
		case DiagDownH1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownH1
		case DiagDownG1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownG1
		case DiagDownF1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownF1
		case DiagDownE1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownE1
		case DiagDownD1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownD1
		case DiagDownC1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownC1
		case DiagDownB1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownB1
		case DiagDownA1&sq.bitboard() > 0:
			sqDiagDownBb[sq] = DiagDownA1
		}
	}
}

func squareDistancePreCompute() {
	for sq1 := SqA1; sq1 <= SqH8; sq1++ {
		for sq2 := SqA1; sq2 <= SqH8; sq2++ {
			if sq1 != sq2 {
				squareDistance[sq1][sq2] = util.Max(FileDistance(sq1.FileOf(), sq2.FileOf()), RankDistance(sq1.RankOf(), sq2.RankOf()))
			}
		}
	}
}

func nonSlidingAttacksPreCompute() {
	var steps = [][]Direction{
		{},
		{Northwest, North, Northeast, East},
		{Northwest, Northeast},
		{West + Northwest, East + Northeast, North + Northwest, North + Northeast},
	}

	for c := White; c <= Black; c++ {
		for _, pt := range []PieceType{King, Pawn, Knight} {
			for s := SqA1; s <= SqH8; s++ {
				for i := 0; i < len(steps[pt]); i++ {
					to := Square(int(s) + c.Direction()*int(steps[pt][i]))
					if to.IsValid() && squareDistance[s][to] < 3 {
						if pt == Pawn {
							pawnAttacks[c][s] |= sqBb[to]
						} else {
							nonSliderAttacks[pt][s] |= sqBb[to]
						}
					}
				}
			}
		}
	}
}

// initMagicBitboards builds the fancy-magic sliding attack tables via a
// runtime PRNG search (see magic.go); no constant is hand-copied, so every
// table is self-verified against the brute-force slidingAttack reference.
func initMagicBitboards() {
	rookDirections := [4]Direction{North, East, South, West}
	bishopDirections := [4]Direction{Northeast, Southeast, Southwest, Northwest}

	rookTable = make([]Bitboard, 0x19000)
	bishopTable = make([]Bitboard, 0x1480)

	initMagics(&rookTable, &rookMagics, &rookDirections)
	initMagics(&bishopTable, &bishopMagics, &bishopDirections)
}

func neighbourMasksPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := int(square.FileOf())
		r := int(square.RankOf())
		for j := 0; j <= 7; j++ {
			if j < f {
				filesWestMask[square] |= FileA_Bb << j
			}
			if 7-j > f {
				filesEastMask[square] |= FileA_Bb << (7 - j)
			}
			if 7-j > r {
				ranksNorthMask[square] |= Rank1_Bb << (8 * (7 - j))
			}
			if j < r {
				ranksSouthMask[square] |= Rank1_Bb << (8 * j)
			}
		}
		if f > 0 {
			fileWestMask[square] = FileA_Bb << (f - 1)
		}
		if f < 7 {
			fileEastMask[square] = FileA_Bb << (f + 1)
		}
		neighbourFilesMask[square] = fileEastMask[square] | fileWestMask[square]
	}
}

func raysPreCompute() {
	for sq := SqA1; sq <= SqH8; sq++ {
		rays[N][sq] = GetAttacksBb(Rook, sq, BbZero) & ranksNorthMask[sq]
		rays[E][sq] = GetAttacksBb(Rook, sq, BbZero) & filesEastMask[sq]
		rays[S][sq] = GetAttacksBb(Rook, sq, BbZero) & ranksSouthMask[sq]
		rays[W][sq] = GetAttacksBb(Rook, sq, BbZero) & filesWestMask[sq]
		rays[NW][sq] = GetAttacksBb(Bishop, sq, BbZero) & filesWestMask[sq] & ranksNorthMask[sq]
		rays[NE][sq] = GetAttacksBb(Bishop, sq, BbZero) & filesEastMask[sq] & ranksNorthMask[sq]
		rays[SE][sq] = GetAttacksBb(Bishop, sq, BbZero) & filesEastMask[sq] & ranksSouthMask[sq]
		rays[SW][sq] = GetAttacksBb(Bishop, sq, BbZero) & filesWestMask[sq] & ranksSouthMask[sq]
	}
}

func intermediatePreCompute() {
	for from := SqA1; from <= SqH8; from++ {
		for to := SqA1; to <= SqH8; to++ {
			toBB := sqBb[to]
			for o := 0; o < 8; o++ {
				if rays[Orientation(o)][from]&toBB != BbZero {
					intermediate[from][to] |= rays[Orientation(o)][from] &^ rays[Orientation(o)][to] &^ toBB
				}
			}
		}
	}
}

func maskPassedPawnsPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		f := square.FileOf()
		r := square.RankOf()
		passedPawnMask[White][square] |= rays[N][square]
		if f < 7 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(East)]
		}
		if f > 0 && r < 7 {
			passedPawnMask[White][square] |= rays[N][square.To(West)]
		}
		passedPawnMask[Black][square] |= rays[S][square]
		if f < 7 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(East)]
		}
		if f > 0 && r > 0 {
			passedPawnMask[Black][square] |= rays[S][square.To(West)]
		}
	}
}

func centerDistancePreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		switch {
		case (sqBb[square] & ranksNorthMask[27] & filesWestMask[36]) != 0:
			centerDistance[square] = squareDistance[square][SqD5]
		case (sqBb[square] & ranksNorthMask[28] & filesEastMask[35]) != 0:
			centerDistance[square] = squareDistance[square][SqE5]
		case (sqBb[square] & ranksSouthMask[35] & filesWestMask[28]) != 0:
			centerDistance[square] = squareDistance[square][SqD4]
		case (sqBb[square] & ranksSouthMask[36] & filesEastMask[27]) != 0:
			centerDistance[square] = squareDistance[square][SqE4]
		}
	}
}

func castleMasksPreCompute() {
	kingSideCastleMask[White] = sqBb[SqF1] | sqBb[SqG1] | sqBb[SqH1]
	kingSideCastleMask[Black] = sqBb[SqF8] | sqBb[SqG8] | sqBb[SqH8]
	queenSideCastleMask[White] = sqBb[SqD1] | sqBb[SqC1] | sqBb[SqB1] | sqBb[SqA1]
	queenSideCastleMask[Black] = sqBb[SqD8] | sqBb[SqC8] | sqBb[SqB8] | sqBb[SqA8]
	castlingRights[SqE1] = CastlingWhite
	castlingRights[SqA1] = CastlingWhiteOOO
	castlingRights[SqH1] = CastlingWhiteOO
	castlingRights[SqE8] = CastlingBlack
	castlingRights[SqA8] = CastlingBlackOOO
	castlingRights[SqH8] = CastlingBlackOO
}

func squareColorsPreCompute() {
	for square := SqA1; square <= SqH8; square++ {
		if (int(square.FileOf())+int(square.RankOf()))%2 == 0 {
			squaresBb[Black] |= BbOne << square
		} else {
			squaresBb[White] |= BbOne << square
		}
	}
}
