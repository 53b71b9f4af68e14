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

// Package evaluator contains structures and functions to calculate the
// value of a chess position to be used in a chess engine search.
package evaluator

import (
	"github.com/op/go-logging"

	"chesscore/config"
	myLogging "chesscore/logging"
	"chesscore/position"
	. "chesscore/types"
)

// queenDirections reuses the eight king/queen deltas - a queen slides along
// the same directions a king steps one square along.
var queenDirections = KingDirections[:]

// Evaluator evaluates chess positions using material and mobility
// heuristics. Create a new instance with NewEvaluator.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog("evaluator"),
	}
}

// Evaluate returns a centipawn score from the position's side-to-move
// perspective: material score plus mobility score plus a tempo bonus.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	me := p.ActiveColor()
	opp := me.Opposite()

	materialScore := (material(p, me) - material(p, opp)) * config.Settings.Eval.MaterialWeight / 100
	mobilityScore := (mobility(p, me) - mobility(p, opp)) * config.Settings.Eval.MobilityWeight / 100

	value := Value(materialScore + mobilityScore + config.Settings.Eval.Tempo)
	e.log.Debugf("evaluate %s: material=%d mobility=%d -> %s", p.ActiveColor(), materialScore, mobilityScore, value)
	return value
}

// material is position.Material(c) plus the bishop-pair bonus.
func material(p *position.Position, c Color) int {
	m := p.Material(c)
	if Size(p.Pieces(c, Bishop)) >= 2 {
		m += config.Settings.Eval.BishopPairBonus
	}
	return m
}

// mobility sums, over every knight/bishop/rook/queen of color c, the number
// of squares it reaches along its movement directions times that piece
// type's weight. Kings and pawns do not contribute.
func mobility(p *position.Position, c Color) int {
	total := 0
	for bb := p.Pieces(c, Knight); bb != BbZero; bb = Remainder(bb) {
		total += knightMobility(p, Next(bb)) * config.Settings.Eval.KnightMobilityWeight
	}
	for bb := p.Pieces(c, Bishop); bb != BbZero; bb = Remainder(bb) {
		total += slidingMobility(p, Next(bb), BishopDirections[:]) * config.Settings.Eval.BishopMobilityWeight
	}
	for bb := p.Pieces(c, Rook); bb != BbZero; bb = Remainder(bb) {
		total += slidingMobility(p, Next(bb), RookDirections[:]) * config.Settings.Eval.RookMobilityWeight
	}
	for bb := p.Pieces(c, Queen); bb != BbZero; bb = Remainder(bb) {
		total += slidingMobility(p, Next(bb), queenDirections) * config.Settings.Eval.QueenMobilityWeight
	}
	return total
}

// knightMobility counts the on-board knight-move destinations from sq.
func knightMobility(p *position.Position, sq Square) int {
	n := 0
	for _, d := range KnightDirections {
		if sq.To(d) != SqNone {
			n++
		}
	}
	return n
}

// slidingMobility walks each direction in dirs from sq until it runs off
// the board or meets a piece - the occupied square itself is counted, then
// the ray stops.
func slidingMobility(p *position.Position, sq Square, dirs []Direction) int {
	n := 0
	for _, d := range dirs {
		for t := sq.To(d); t != SqNone; t = t.To(d) {
			n++
			if p.Board(t) != PieceNone {
				break
			}
		}
	}
	return n
}
