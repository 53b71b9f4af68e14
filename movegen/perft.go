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

package movegen

import (
	"chesscore/position"
	. "chesscore/types"
)

// Perft walks every pseudo-legal move to the given depth, discarding moves
// that leave the mover's own king in check, and counts leaf positions. A
// fresh Generator per recursion level would cost nothing here since
// Generator carries no state, so the same generator is reused throughout.
func Perft(p *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	g := NewGenerator()
	return perft(g, p, depth)
}

func perft(g *Generator, p *position.Position, depth int) uint64 {
	list := g.GeneratePseudoLegalMoves(p)
	var nodes uint64
	n := list.Len()
	for i := 0; i < n; i++ {
		m := list.At(i)
		mover := m.FromPiece().ColorOf()
		p.MakeMove(m)
		if !p.IsCheckColor(mover) {
			if depth == 1 {
				nodes++
			} else {
				nodes += perft(g, p, depth-1)
			}
		}
		p.UndoMove(m)
	}
	return nodes
}

// Counters accumulates perft leaf statistics the way the teacher's Perft
// struct does, for callers that want more than a bare node count.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassant  uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// PerftDivide behaves like Perft but also tallies move-kind counters and
// returns a per-root-move node-count breakdown, the way "perft divide" is
// conventionally reported.
func PerftDivide(p *position.Position, depth int) (Counters, map[Move]uint64) {
	var c Counters
	divide := make(map[Move]uint64)
	if depth <= 0 {
		return c, divide
	}
	g := NewGenerator()
	list := g.GeneratePseudoLegalMoves(p)
	n := list.Len()
	for i := 0; i < n; i++ {
		m := list.At(i)
		mover := m.FromPiece().ColorOf()
		p.MakeMove(m)
		if !p.IsCheckColor(mover) {
			var nodes uint64
			if depth == 1 {
				nodes = 1
			} else {
				nodes = perftCount(g, p, depth-1, &c)
			}
			divide[m] = nodes
			c.Nodes += nodes
			tallyMove(m, p, &c)
		}
		p.UndoMove(m)
	}
	return c, divide
}

func perftCount(g *Generator, p *position.Position, depth int, c *Counters) uint64 {
	list := g.GeneratePseudoLegalMoves(p)
	var nodes uint64
	n := list.Len()
	for i := 0; i < n; i++ {
		m := list.At(i)
		mover := m.FromPiece().ColorOf()
		p.MakeMove(m)
		if !p.IsCheckColor(mover) {
			if depth == 1 {
				nodes++
				tallyMove(m, p, c)
			} else {
				nodes += perftCount(g, p, depth-1, c)
			}
		}
		p.UndoMove(m)
	}
	return nodes
}

// tallyMove updates the move-kind counters for a leaf move, m already made
// in p - the side to move is now the opponent, so IsCheck reports on them.
func tallyMove(m Move, p *position.Position, c *Counters) {
	if m.IsCapture() {
		c.Captures++
	}
	switch m.MoveType() {
	case EnPassant:
		c.EnPassant++
	case Castling:
		c.Castles++
	case PawnPromotion:
		c.Promotions++
	}
	if p.IsCheck() {
		c.Checks++
	}
}
