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
	"strings"
)

// Move is a 16-bit encoded chess move: origin square, destination square and
// a 4-bit flag nibble. Unlike pkg/types.Move in the teacher, no sort value is
// carried in spare bits - there are none spare in a 16-bit word - so move
// ordering carries its value alongside the Move in a separate struct (see
// internal/movegen.ScoredMove).
//
//	BITMAP 16-bit
//	1 1 1 1 1 1
//	5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//	-------------------------------
//	                    1 1 1 1 1 1  to
//	        1 1 1 1 1 1              from
//	1 1 1 1                          flag
type Move uint16

// MoveNone is the all-zero value, printed as "0000" and never produced by
// the move generator. Position.DoMove does not accept it; the null move is
// made with Position.DoNullMove.
const MoveNone Move = 0

const (
	toShift   uint = 0
	fromShift uint = 6
	flagShift uint = 12

	squareMask Move = 0x3F
	toMask          = squareMask << toShift
	fromMask        = squareMask << fromShift
	flagMask   Move = 0xF << flagShift
)

// MoveFlag is the 4-bit tag in a Move's high nibble.
type MoveFlag uint8

// MoveFlag values. The high bit (8) marks a promotion, the second-highest
// bit (4) marks a capture - both cheap to test without decoding the whole
// nibble, which is the reason for this particular bit assignment.
const (
	FlagQuiet           MoveFlag = 0
	FlagDoublePawnPush  MoveFlag = 1
	FlagKingCastle      MoveFlag = 2
	FlagQueenCastle     MoveFlag = 3
	FlagCapture         MoveFlag = 4
	FlagEnPassant       MoveFlag = 5
	FlagPromoKnight     MoveFlag = 8
	FlagPromoBishop     MoveFlag = 9
	FlagPromoRook       MoveFlag = 10
	FlagPromoQueen      MoveFlag = 11
	FlagPromoKnightCapt MoveFlag = 12
	FlagPromoBishopCapt MoveFlag = 13
	FlagPromoRookCapt   MoveFlag = 14
	FlagPromoQueenCapt  MoveFlag = 15

	promotionBit MoveFlag = 8
	captureBit   MoveFlag = 4
)

// IsValid reports whether f is one of the defined flags (6 and 7 are
// unassigned and therefore invalid).
func (f MoveFlag) IsValid() bool {
	switch f {
	case FlagQuiet, FlagDoublePawnPush, FlagKingCastle, FlagQueenCastle,
		FlagCapture, FlagEnPassant,
		FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen,
		FlagPromoKnightCapt, FlagPromoBishopCapt, FlagPromoRookCapt, FlagPromoQueenCapt:
		return true
	default:
		return false
	}
}

var moveFlagToString = map[MoveFlag]string{
	FlagQuiet: "quiet", FlagDoublePawnPush: "doublepawnpush",
	FlagKingCastle: "O-O", FlagQueenCastle: "O-O-O",
	FlagCapture: "capture", FlagEnPassant: "enpassant",
	FlagPromoKnight: "promo=N", FlagPromoBishop: "promo=B",
	FlagPromoRook: "promo=R", FlagPromoQueen: "promo=Q",
	FlagPromoKnightCapt: "promo=Nx", FlagPromoBishopCapt: "promo=Bx",
	FlagPromoRookCapt: "promo=Rx", FlagPromoQueenCapt: "promo=Qx",
}

// String returns a short label for the flag.
func (f MoveFlag) String() string {
	if s, ok := moveFlagToString[f]; ok {
		return s
	}
	return "invalid"
}

var promoFlagToPieceType = map[MoveFlag]PieceType{
	FlagPromoKnight: Knight, FlagPromoKnightCapt: Knight,
	FlagPromoBishop: Bishop, FlagPromoBishopCapt: Bishop,
	FlagPromoRook: Rook, FlagPromoRookCapt: Rook,
	FlagPromoQueen: Queen, FlagPromoQueenCapt: Queen,
}

var pieceTypeToPromoFlag = map[PieceType][2]MoveFlag{
	// [0] quiet promotion, [1] capturing promotion
	Knight: {FlagPromoKnight, FlagPromoKnightCapt},
	Bishop: {FlagPromoBishop, FlagPromoBishopCapt},
	Rook:   {FlagPromoRook, FlagPromoRookCapt},
	Queen:  {FlagPromoQueen, FlagPromoQueenCapt},
}

// NewMove encodes a non-promotion move.
func NewMove(from, to Square, flag MoveFlag) Move {
	return Move(to)<<toShift | Move(from)<<fromShift | Move(flag)<<flagShift
}

// NewPromotionMove encodes a promotion move to promType (Knight/Bishop/Rook/Queen).
func NewPromotionMove(from, to Square, promType PieceType, capture bool) Move {
	flags := pieceTypeToPromoFlag[promType]
	flag := flags[0]
	if capture {
		flag = flags[1]
	}
	return NewMove(from, to, flag)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m & toMask) >> toShift)
}

// Flag returns the move's flag nibble.
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// IsPromotion reports whether the move promotes a pawn - a single bit test
// against the flag nibble's high bit.
func (m Move) IsPromotion() bool {
	return MoveFlag((m&flagMask)>>flagShift)&promotionBit != 0
}

// IsCapture reports whether the move captures a piece (including en passant
// and capturing promotions) - a single bit test against the flag nibble's
// second-highest bit.
func (m Move) IsCapture() bool {
	return MoveFlag((m&flagMask)>>flagShift)&captureBit != 0
}

// IsEnPassant reports whether the move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.Flag() == FlagEnPassant
}

// IsCastle reports whether the move castles either side.
func (m Move) IsCastle() bool {
	f := m.Flag()
	return f == FlagKingCastle || f == FlagQueenCastle
}

// IsDoublePawnPush reports whether the move is a two-square pawn push.
func (m Move) IsDoublePawnPush() bool {
	return m.Flag() == FlagDoublePawnPush
}

// PromotionType returns the piece type promoted to. Only meaningful when
// IsPromotion is true.
func (m Move) PromotionType() PieceType {
	return promoFlagToPieceType[m.Flag()]
}

// IsValid reports whether the move has valid squares and a defined flag.
// MoveNone is not valid in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.Flag().IsValid()
}

// StringUci returns the UCI wire representation, e.g. "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.IsPromotion() {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// String returns a verbose, debugging-oriented representation.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s flag:%s (%d) }", m.StringUci(), m.Flag().String(), m)
}
