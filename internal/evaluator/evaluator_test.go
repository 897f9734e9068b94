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

package evaluator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/mjkopp/stonefish/internal/config"
	"github.com/mjkopp/stonefish/internal/position"
	. "github.com/mjkopp/stonefish/internal/types"
)

func TestMain(m *testing.M) {
	Setup()
	code := m.Run()
	os.Exit(code)
}

//noinspection GoStructInitializationWithoutFieldNames
func TestEvaluator_valueFromScore(t *testing.T) {
	e := NewEvaluator()

	e.gamePhaseFactor = 1.0
	e.score = Score{10, 0}
	assert.EqualValues(t, 10, e.value())
	e.gamePhaseFactor = 0.0
	assert.EqualValues(t, 0, e.value())
	e.gamePhaseFactor = 0.5
	assert.EqualValues(t, 5, e.value())

	e.gamePhaseFactor = 1.0
	e.score = Score{50, 50}
	assert.EqualValues(t, 50, e.value())
	e.gamePhaseFactor = 0.0
	assert.EqualValues(t, 50, e.value())
	e.gamePhaseFactor = 0.5
	assert.EqualValues(t, 50, e.value())
}

func TestStartPosZeroEval(t *testing.T) {
	Settings.Eval.Tempo = 0
	p := position.NewPosition()
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestMirroredZeroEval(t *testing.T) {
	Settings.Eval.Tempo = 0
	p := position.NewPosition("r1bq1rk1/pppp1pp1/2n2n1p/1B2p3/1b2P3/2N2N1P/PPPP1PP1/R1BQ1RK1 w - -")
	e := NewEvaluator()
	assert.EqualValues(t, 0, e.Evaluate(p))
}

func TestLazyEval(t *testing.T) {
	e := NewEvaluator()
	Settings.Eval.Tempo = 0
	Settings.Eval.UseLazyEval = true
	Settings.Eval.UseAttacksInEval = false
	Settings.Eval.UseAdvancedPieceEval = false
	Settings.Eval.UseKingEval = false
	p := position.NewPosition("r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/B5R1/pbp2PPP/1R4K1 b kq e3")
	value := e.Evaluate(p)
	out.Println(value)
	p = position.NewPosition("5r1k/1q6/8/8/8/8/6P1/7K b - - 0 1 ")
	value = e.Evaluate(p)
	out.Println(value)
}
