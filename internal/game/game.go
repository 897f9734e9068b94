//
// FrankyGo - UCI chess engine in GO for learning purposes
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

// Package game wraps a Position with the move-by-move bookkeeping a UCI
// session needs on top of it: applying/undoing the moves the UI sends with
// the "position" command, and deciding whether the current position is a
// draw by repetition or the 50-move rule.
package game

import (
	"github.com/mjkopp/stonefish/internal/assert"
	"github.com/mjkopp/stonefish/internal/position"
	. "github.com/mjkopp/stonefish/internal/types"
)

// Game is a Position together with the moves played to reach it.
// Position itself already carries its own Do/Undo history (see
// position.go's history array), so Game is a thin session-level wrapper
// around it rather than a second parallel stack.
type Game struct {
	pos *position.Position
}

// NewGame creates a new Game at the standard starting position.
func NewGame() *Game {
	return &Game{pos: position.NewPosition()}
}

// NewGameFromPosition creates a new Game starting from the given position.
func NewGameFromPosition(p *position.Position) *Game {
	return &Game{pos: p}
}

// NewGameFromFen creates a new Game starting from the given FEN string.
func NewGameFromFen(fen string) (*Game, error) {
	p, err := position.NewPositionFen(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: p}, nil
}

// Reset discards all moves played and returns the game to the standard
// starting position. Used for the "ucinewgame" UCI command.
func (g *Game) Reset() {
	g.pos = position.NewPosition()
}

// Position returns the current position.
func (g *Game) Position() *position.Position {
	return g.pos
}

// SetPosition replaces the current position, discarding any moves
// previously played in this game. Used for the "position fen ..." and
// "position startpos" UCI commands.
func (g *Game) SetPosition(p *position.Position) {
	g.pos = p
}

// Do plays move on the current position.
func (g *Game) Do(move Move) {
	if assert.DEBUG {
		assert.Assert(move.IsValid(), "game.Do: invalid move %s", move.String())
	}
	g.pos.DoMove(move)
}

// Undo takes back the last move played.
func (g *Game) Undo() {
	g.pos.UndoMove()
}

// RepetitionCount returns how many times the current position (including
// the current occurrence) has occurred since the last irreversible move,
// as counted by the halfmove clock. A return of 3 or more is a draw by
// threefold repetition.
func (g *Game) RepetitionCount() int {
	count := 1
	for g.pos.CheckRepetitions(count) {
		count++
	}
	return count
}

// IsDraw reports whether the current position is a draw by threefold
// repetition, the 50-move rule, or insufficient material.
func (g *Game) IsDraw() bool {
	return g.RepetitionCount() >= 3 || g.pos.HalfMoveClock() >= 100 || g.pos.HasInsufficientMaterial()
}
