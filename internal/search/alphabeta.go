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
	. "github.com/mjkopp/stonefish/internal/config"
	"github.com/mjkopp/stonefish/internal/movegen"
	"github.com/mjkopp/stonefish/internal/moveslice"
	"github.com/mjkopp/stonefish/internal/position"
	"github.com/mjkopp/stonefish/internal/tt"
	. "github.com/mjkopp/stonefish/internal/types"
)

var trace = false

// rootSearch runs the recursive alpha beta search for every move at ply 0.
// Root moves are handled separately from search because they come from a
// pre-generated, scored list rather than the on-demand move generator, and
// because the result of each root move is written back into that list so
// the next iteration can search the best move first.
func (s *Search) rootSearch(p *position.Position, depth int, alpha Value, beta Value) Value {
	if trace {
		s.slog.Debugf("Ply %-2.d Depth %-2.d start: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("Ply %-2.d Depth %-2.d end: %s", 0, depth, s.statistics.CurrentVariation.StringUci())
	}

	bestNodeValue := ValueNA
	var value Value

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for i, sm := range *s.rootMoves {
		m := sm.Move

		p.DoMove(m)
		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(m)
		s.statistics.CurrentRootMoveIndex = i
		s.statistics.CurrentRootMove = m

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			// ///////////////////////////////////////////////////////////////////
			// PVS - first move is the assumed PV and gets the full window, every
			// other move is first tried with a null window and only re-searched
			// with the full window if it beats alpha.
			if !Settings.Search.UsePVS || i == 0 {
				value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
			} else {
				value = -s.search(p, depth-1, 1, -alpha-1, -alpha, false, true)
				if value > alpha && value < beta && !s.stopConditions() {
					s.statistics.RootPvsResearches++
					value = -s.search(p, depth-1, 1, -beta, -alpha, true, true)
				}
			}
			// ///////////////////////////////////////////////////////////////////
		}

		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		// We want at least one complete search at depth 1 before bailing out.
		// Any better move found after that will already have been stored in
		// pv[0].
		if s.stopConditions() && depth > 1 {
			return bestNodeValue
		}

		// store the value into the root move so the next iteration can sort
		// the root moves by value before searching them
		s.rootMoves.Set(i, movegen.ScoredMove{Move: m, Value: int32(value)})

		if value > bestNodeValue {
			bestNodeValue = value
			savePV(m, s.pv[1], s.pv[0])
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	return bestNodeValue
}

// search is the normal alpha beta search below the root (ply > 0). It
// recurses until the remaining depth reaches zero, at which point it hands
// off to quiescence search. Almost all pruning happens here.
func (s *Search) search(p *position.Position, depth int, ply int, alpha Value, beta Value, isPV bool, doNull bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v start: %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d Depth %-2.d a:%-6.d b:%-6.d pv:%-6.v end  : %s", ply, "", ply, depth, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.stopConditions() {
		return ValueNA
	}

	if depth == 0 || ply >= MaxDepth {
		return s.qsearch(p, ply, alpha, beta, isPV)
	}

	// Mate Distance Pruning - if we already found a shorter mate, ignore
	// this one.
	if Settings.Search.UseMDP {
		if alpha < -MateBase+Value(ply) {
			alpha = -MateBase + Value(ply)
		}
		if beta > MateBase-Value(ply) {
			beta = MateBase - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	us := p.NextPlayer()
	bestNodeValue := ValueNA
	bestNodeMove := MoveNone
	ttMove := MoveNone
	ttType := ALPHA
	hasCheck := p.HasCheck()
	matethreat := false

	// TT lookup. A hit gives us a move to search first and, if the stored
	// depth is deep enough, possibly a value we can return outright.
	var ttEntry *tt.TtEntry
	if Settings.Search.UseTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			if int(ttEntry.Depth()) >= depth {
				ttValue := valueFromTT(ttEntry.Value(), ply)
				cut := false
				switch {
				case !ttValue.IsValid():
					cut = false
				case ttEntry.Vtype() == EXACT:
					cut = true
				case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
					cut = true
				case ttEntry.Vtype() == BETA && ttValue >= beta:
					cut = true
				}
				if cut && Settings.Search.UseTTValue {
					s.getPVLine(p, s.pv[ply], depth)
					s.statistics.TTCuts++
					return ttValue
				}
				s.statistics.TTNoCuts++
			}
		} else {
			s.statistics.TTMiss++
		}
	}

	// Reverse Futility Pruning (static null move pruning) - if the static
	// eval already clears beta by a depth-dependent margin, assume the
	// position would fail high in the next ply too.
	if Settings.Search.UseRFP && doNull && depth <= 3 && !isPV && !hasCheck {
		staticEval := s.evaluate(p, ply)
		margin := rfp[depth]
		if staticEval-margin >= beta {
			s.statistics.RfpPrunings++
			return staticEval - margin
		}
	}

	// Null Move Pruning - if passing the move still fails high, assume a
	// real move would too. Skipped in check, in PV nodes, recursively, and
	// when there is no non-pawn material left (zugzwang risk).
	if Settings.Search.UseNullMove &&
		doNull &&
		!isPV &&
		depth >= Settings.Search.NmpDepth &&
		p.MaterialNonPawn(us) > 0 &&
		!hasCheck {

		r := Settings.Search.NmpReduction
		if depth > 8 || (depth > 6 && p.GamePhase() >= 3) {
			r++
		}
		newDepth := depth - r - 1
		if newDepth < 0 {
			newDepth = 0
		}

		p.DoNullMove()
		s.nodesVisited++
		nValue := -s.search(p, newDepth, ply+1, -beta, -beta+1, false, false)
		p.UndoNullMove()

		if s.stopConditions() {
			return ValueNA
		}

		if nValue > MateThreshold {
			s.statistics.NMPMateBeta++
			nValue = MateThreshold
		} else if nValue < -MateThreshold {
			s.statistics.NMPMateAlpha++
			matethreat = true
		}

		if nValue >= beta {
			s.statistics.NullMoveCuts++
			if Settings.Search.UseTT {
				s.storeTT(p, depth, ply, ttMove, nValue, BETA)
			}
			return nValue
		}
	}

	// Internal Iterative Deepening - when we have no TT move to search
	// first, do a reduced-depth search just to find one.
	if Settings.Search.UseIID &&
		depth >= Settings.Search.IIDDepth &&
		ttMove == MoveNone &&
		doNull &&
		isPV {

		newDepth := depth - Settings.Search.IIDReduction
		if newDepth < 0 {
			newDepth = 0
		}

		s.search(p, newDepth, ply, alpha, beta, isPV, true)
		s.statistics.IIDsearches++

		if s.stopConditions() {
			return ValueNA
		}

		if s.pv[ply].Len() > 0 {
			s.statistics.IIDmoves++
			ttMove = s.pv[ply].At(0)
		}
	}

	// Reset the on-demand move generator and PV line after IID, which may
	// have used both for the reduced search.
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseTTMove {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := myMg.GetNextMove(p, movegen.GenAll); move != MoveNone; move = myMg.GetNextMove(p, movegen.GenAll) {

		from := move.From()
		to := move.To()

		newDepth := depth - 1
		lmrDepth := newDepth
		extension := 0

		givesCheck := p.GivesCheck(move)

		// Search extensions. Kept conservative - extending too eagerly costs
		// more than it gains.
		if Settings.Search.UseExt {
			if Settings.Search.UseCheckExt && givesCheck {
				s.statistics.CheckExtension++
				extension = 1
			}
			if Settings.Search.UseThreatExt && matethreat {
				s.statistics.ThreatExtension++
				extension = 1
			}
			newDepth += extension
		}

		// ///////////////////////////////////////////////////////
		// Forward pruning - only applied to quiet, non-critical moves.
		if !isPV &&
			extension == 0 &&
			move != ttMove &&
			move != (*myMg.KillerMoves())[0] &&
			move != (*myMg.KillerMoves())[1] &&
			!move.IsPromotion() &&
			!p.IsCapturingMove(move) &&
			!hasCheck &&
			!givesCheck &&
			!matethreat {

			materialEval := p.Material(us) - p.Material(us.Flip())
			moveGain := p.GetPiece(to).ValueOf()

			// Futility Pruning - skip moves so far below alpha that even
			// their best-case material swing would not reach it.
			if Settings.Search.UseFP && depth < 7 {
				if materialEval+moveGain+fp[depth] <= alpha {
					if materialEval+moveGain > bestNodeValue {
						bestNodeValue = materialEval + moveGain
					}
					s.statistics.FpPrunings++
					continue
				}
			}

			// Late Move Pruning - skip quiet moves once enough have already
			// been searched at this depth.
			if Settings.Search.UseLmp && movesSearched >= LmpMovesSearched(depth) {
				s.statistics.LmpCuts++
				continue
			}

			// Late Move Reduction - search late, quiet moves to a reduced
			// depth first; re-searched at full depth below if they beat
			// alpha.
			if Settings.Search.UseLmr &&
				depth >= Settings.Search.LmrDepth &&
				movesSearched >= Settings.Search.LmrMovesSearched {
				lmrDepth -= LmrReduction(depth, movesSearched)
				s.statistics.LmrReductions++
			}
			if lmrDepth < 0 {
				lmrDepth = 0
			}
		}
		// ///////////////////////////////////////////////////////

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			// ///////////////////////////////////////////////////////
			// PVS - the first move is assumed to be the PV move; every
			// other move is tried with a null window first, and only
			// re-searched at full window if that proof fails.
			if !Settings.Search.UsePVS || movesSearched == 0 {
				value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
			} else {
				value = -s.search(p, lmrDepth, ply+1, -alpha-1, -alpha, false, true)
				if value > alpha && !s.stopConditions() {
					if lmrDepth < newDepth {
						s.statistics.LmrResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
					} else if value < beta {
						s.statistics.PvsResearches++
						value = -s.search(p, newDepth, ply+1, -beta, -alpha, true, true)
					}
				}
			}
			// ///////////////////////////////////////////////////////
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					if Settings.Search.UseKiller && !p.IsCapturingMove(move) {
						myMg.StoreKiller(move)
					}
					s.history.HistoryCount[us][from][to] += 1 << depth
					lastMove := p.LastMove()
					if lastMove != MoveNone {
						s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
		// no beta cutoff - nudge the history counter back down, by the same
		// amount it would have been raised by
		s.history.HistoryCount[us][from][to] -= 1 << depth
		if s.history.HistoryCount[us][from][to] < 0 {
			s.history.HistoryCount[us][from][to] = 0
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	if movesSearched == 0 && !s.stopConditions() {
		if p.HasCheck() {
			s.statistics.Checkmates++
			bestNodeValue = -MateBase + Value(ply)
		} else {
			s.statistics.Stalemates++
			bestNodeValue = ValueDraw
		}
		ttType = EXACT
	}

	if Settings.Search.UseTT {
		s.storeTT(p, depth, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// qsearch extends the search past the depth limit along capturing (and, if
// in check, all) lines to avoid misjudging a position just because a
// favorable or unfavorable capture was about to happen.
func (s *Search) qsearch(p *position.Position, ply int, alpha Value, beta Value, isPV bool) Value {
	if trace {
		s.slog.Debugf("%0*s Ply %-2.d QSearch a:%-6.d b:%-6.d pv:%-6.v start: %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
		defer s.slog.Debugf("%0*s Ply %-2.d QSearch a:%-6.d b:%-6.d pv:%-6.v end  : %s", ply, "", ply, alpha, beta, isPV, s.statistics.CurrentVariation.StringUci())
	}

	if s.statistics.CurrentExtraSearchDepth < ply {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	if !Settings.Search.UseQuiescence || ply >= MaxDepth {
		return s.evaluate(p, ply)
	}

	if Settings.Search.UseMDP {
		if alpha < -MateBase+Value(ply) {
			alpha = -MateBase + Value(ply)
		}
		if beta > MateBase-Value(ply) {
			beta = MateBase - Value(ply)
		}
		if alpha >= beta {
			s.statistics.Mdp++
			return alpha
		}
	}

	bestNodeValue := ValueNA
	ttType := ALPHA
	ttMove := MoveNone
	hasCheck := p.HasCheck()

	if !hasCheck {
		staticEval := s.evaluate(p, ply)
		if Settings.Search.UseQSStandpat && staticEval > alpha {
			if staticEval >= beta {
				s.statistics.StandpatCuts++
				return staticEval
			}
			alpha = staticEval
		}
		bestNodeValue = staticEval
	}

	var ttEntry *tt.TtEntry
	if Settings.Search.UseQSTT {
		ttEntry = s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			ttMove = ttEntry.Move()
			ttValue := valueFromTT(ttEntry.Value(), ply)
			cut := false
			switch {
			case !ttValue.IsValid():
				cut = false
			case ttEntry.Vtype() == EXACT:
				cut = true
			case ttEntry.Vtype() == ALPHA && ttValue <= alpha:
				cut = true
			case ttEntry.Vtype() == BETA && ttValue >= beta:
				cut = true
			}
			if cut && Settings.Search.UseTTValue {
				s.statistics.TTCuts++
				return ttValue
			}
			s.statistics.TTNoCuts++
		} else {
			s.statistics.TTMiss++
		}
	}

	bestNodeMove := MoveNone
	myMg := s.mg[ply]
	myMg.ResetOnDemand()
	s.pv[ply].Clear()

	if Settings.Search.UseQSTT {
		if ttMove != MoveNone {
			s.statistics.TTMoveUsed++
			myMg.SetPvMove(ttMove)
		} else {
			s.statistics.NoTTMove++
		}
	}

	var value Value
	movesSearched := 0

	// in check we search all moves - a search extension for checks, since
	// capture-only generation would miss the way out
	var mode movegen.GenMode
	if hasCheck {
		s.statistics.CheckInQS++
		mode = movegen.GenAll
	} else {
		mode = movegen.GenCap
	}

	// ///////////////////////////////////////////////////////
	// MOVE LOOP
	for move := myMg.GetNextMove(p, mode); move != MoveNone; move = myMg.GetNextMove(p, mode) {

		if !hasCheck && !s.goodCapture(p, move) {
			continue
		}

		p.DoMove(move)

		if !p.WasLegalMove() {
			p.UndoMove()
			continue
		}

		s.nodesVisited++
		s.statistics.CurrentVariation.PushBack(move)
		s.sendSearchUpdateToUci()

		if hasCheck && s.checkDrawRepAnd50(p, 2) {
			value = ValueDraw
		} else {
			value = -s.qsearch(p, ply+1, -beta, -alpha, isPV)
		}

		movesSearched++
		s.statistics.CurrentVariation.PopBack()
		p.UndoMove()

		if s.stopConditions() {
			return ValueNA
		}

		if value > bestNodeValue {
			bestNodeValue = value
			bestNodeMove = move
			if value > alpha {
				savePV(move, s.pv[ply+1], s.pv[ply])
				if value >= beta {
					s.statistics.BetaCuts++
					if movesSearched == 1 {
						s.statistics.BetaCuts1st++
					}
					s.history.HistoryCount[p.NextPlayer()][move.From()][move.To()] += 1 << 1
					lastMove := p.LastMove()
					if lastMove != MoveNone {
						s.history.CounterMoves[lastMove.From()][lastMove.To()] = move
					}
					ttType = BETA
					break
				}
				alpha = value
				ttType = EXACT
			}
		}
	}
	// MOVE LOOP
	// ///////////////////////////////////////////////////////

	if movesSearched == 0 && !s.stopConditions() && p.HasCheck() {
		s.statistics.Checkmates++
		bestNodeValue = -MateBase + Value(ply)
		ttType = EXACT
	}

	if Settings.Search.UseQSTT {
		s.storeTT(p, 1, ply, bestNodeMove, bestNodeValue, ttType)
	}

	return bestNodeValue
}

// evaluate returns the static evaluation of the position, reusing a cached
// value from the TT when available.
func (s *Search) evaluate(p *position.Position, ply int) Value {
	s.statistics.LeafPositionsEvaluated++

	value := ValueNA

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		ttEntry := s.tt.Probe(p.ZobristKey())
		if ttEntry != nil {
			s.statistics.TTHit++
			s.statistics.EvaluationsFromTT++
			value = valueFromTT(ttEntry.Value(), ply)
		}
	}

	if value == ValueNA {
		s.statistics.Evaluations++
		value = s.eval.Evaluate(p)
	}

	if Settings.Search.UseTT && Settings.Search.UseEvalTT {
		s.storeTT(p, 0, ply, MoveNone, value, EXACT)
	}

	return value
}

// goodCapture narrows the moves looked at in quiescence search to captures
// that are worth the effort.
func (s *Search) goodCapture(p *position.Position, move Move) bool {
	if Settings.Search.UseSEE {
		return see(p, move) > 0
	}
	return p.GetPiece(move.From()).ValueOf()+50 < p.GetPiece(move.To()).ValueOf() ||
		(p.LastMove() != MoveNone && p.LastMove().To() == move.To() && p.LastCapturedPiece() != PieceNone) ||
		!p.IsAttacked(move.To(), p.NextPlayer().Flip())
}

// savePV writes move as the first entry of dest, followed by all of src.
func savePV(move Move, src *moveslice.MoveSlice, dest *moveslice.MoveSlice) {
	dest.Clear()
	dest.PushBack(move)
	*dest = append(*dest, *src...)
}

// storeTT writes a search result into the TT. It never has a separate
// static-eval value on hand - that is only computed in evaluate - so it
// always passes ValueNA for eval.
func (s *Search) storeTT(p *position.Position, depth int, ply int, move Move, value Value, valueType ValueType) {
	s.tt.Put(p.ZobristKey(), move, int8(depth), valueToTT(value, ply), valueType, ValueNA)
}

// getPVLine follows the chain of TT best moves from p to fill pv, up to
// depth moves deep.
func (s *Search) getPVLine(p *position.Position, pv *moveslice.MoveSlice, depth int) {
	pv.Clear()
	counter := 0
	ttMatch := s.tt.GetEntry(p.ZobristKey())
	for ttMatch != nil && ttMatch.Move() != MoveNone && counter < depth {
		pv.PushBack(ttMatch.Move())
		p.DoMove(ttMatch.Move())
		counter++
		ttMatch = s.tt.GetEntry(p.ZobristKey())
	}
	for i := 0; i < counter; i++ {
		p.UndoMove()
	}
}

// valueToTT shifts a mate value by ply so it stores the distance to mate
// from the position actually being stored, not from the root.
func valueToTT(value Value, ply int) Value {
	if value.IsMateValue() {
		if value > 0 {
			value += Value(ply)
		} else {
			value -= Value(ply)
		}
	}
	return value
}

// valueFromTT reverses valueToTT's shift when reading a stored mate value
// back at a different ply than it was stored at.
func valueFromTT(value Value, ply int) Value {
	if value.IsMateValue() {
		if value > 0 {
			value -= Value(ply)
		} else {
			value += Value(ply)
		}
	}
	return value
}

