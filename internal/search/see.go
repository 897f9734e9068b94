/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package search

import (
	"github.com/mjkopp/stonefish/internal/attacks"
	"github.com/mjkopp/stonefish/internal/position"
	. "github.com/mjkopp/stonefish/internal/types"
)

// see computes the Static Exchange Evaluation of a capturing move - the
// material balance after the full sequence of recaptures on the target
// square, assuming both sides always recapture with their least valuable
// attacker.
func see(p *position.Position, move Move) Value {
	// en passant moves are ignored in the sense that they are treated as
	// a winning capture and therefore never lead to a cut-off when using see()
	if move.IsEnPassant() {
		return 100
	}

	// short array to store the captures - max 32 pieces on the board
	gain := make([]Value, 32)

	ply := 0
	toSquare := move.To()
	fromSquare := move.From()
	movedPiece := p.GetPiece(fromSquare)
	nextPlayer := p.NextPlayer()

	// all occupied squares, to remove single pieces later and reveal
	// hidden attacks (x-ray)
	occupiedBitboard := p.OccupiedAll()

	// all attacks to the square as a bitboard
	remainingAttacks := attacks.AttacksTo(p, toSquare, White) | attacks.AttacksTo(p, toSquare, Black)

	// initial value of the first capture
	capturedValue := p.GetPiece(toSquare).ValueOf()
	gain[ply] = capturedValue

	// loop through all remaining attacks/captures
	for {
		ply++
		nextPlayer = nextPlayer.Flip()

		// speculative store, if defended
		if move.IsPromotion() {
			gain[ply] = move.PromotionType().ValueOf() - Pawn.ValueOf() - gain[ply-1]
		} else {
			gain[ply] = movedPiece.ValueOf() - gain[ply-1]
		}

		// pruning if defended - will not change final see score
		if seeMax(-gain[ply-1], gain[ply]) < 0 {
			break
		}

		remainingAttacks = PopSquare(remainingAttacks, fromSquare)  // reset bit in set to traverse
		occupiedBitboard = PopSquare(occupiedBitboard, fromSquare) // reset bit in temporary occupancy (for x-rays)

		// reevaluate attacks to reveal attacks after removing the moving piece
		remainingAttacks |= attacks.RevealedAttacks(p, toSquare, occupiedBitboard, White) |
			attacks.RevealedAttacks(p, toSquare, occupiedBitboard, Black)

		// determine next capture
		fromSquare = getLeastValuablePiece(p, remainingAttacks, nextPlayer)

		// break if no more attackers
		if fromSquare == SqNone {
			break
		}

		movedPiece = p.GetPiece(fromSquare)
	}

	ply--
	for ply > 0 {
		gain[ply-1] = -seeMax(-gain[ply-1], gain[ply])
		ply--
	}

	return gain[0]
}

// getLeastValuablePiece returns the square of the least valuable attacker
// of color among bitboard. When several of the same type are available it
// uses the least significant bit of the bitboard.
func getLeastValuablePiece(p *position.Position, bitboard Bitboard, color Color) Square {
	switch {
	case (bitboard & p.PiecesBb(color, Pawn)) != 0:
		return (bitboard & p.PiecesBb(color, Pawn)).Lsb()
	case (bitboard & p.PiecesBb(color, Knight)) != 0:
		return (bitboard & p.PiecesBb(color, Knight)).Lsb()
	case (bitboard & p.PiecesBb(color, Bishop)) != 0:
		return (bitboard & p.PiecesBb(color, Bishop)).Lsb()
	case (bitboard & p.PiecesBb(color, Rook)) != 0:
		return (bitboard & p.PiecesBb(color, Rook)).Lsb()
	case (bitboard & p.PiecesBb(color, Queen)) != 0:
		return (bitboard & p.PiecesBb(color, Queen)).Lsb()
	case (bitboard & p.PiecesBb(color, King)) != 0:
		return (bitboard & p.PiecesBb(color, King)).Lsb()
	default:
		return SqNone
	}
}

func seeMax(x, y Value) Value {
	if x > y {
		return x
	}
	return y
}
