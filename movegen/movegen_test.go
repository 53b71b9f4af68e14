/*
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
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/notation"
	. "chesscore/types"
)

func TestGeneratePseudoLegalMovesStartPositionCount(t *testing.T) {
	p, err := notation.ToPosition(notation.StartFEN)
	assert.NoError(t, err)
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	assert.Equal(t, 20, list.Len())
}

func TestGenerateIncludesEnPassantCapture(t *testing.T) {
	p, err := notation.ToPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	found := false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.MoveType() == EnPassant && m.From() == SqE5 && m.To() == SqD6 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGenerateIncludesCastlingWhenClear(t *testing.T) {
	p, err := notation.ToPosition("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	kingside, queenside := false, false
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.MoveType() == Castling {
			switch m.To() {
			case SqG1:
				kingside = true
			case SqC1:
				queenside = true
			}
		}
	}
	assert.True(t, kingside)
	assert.True(t, queenside)
}

func TestGenerateExcludesCastlingThroughAttackedSquare(t *testing.T) {
	// Black rook on f8 attacks f1, the square the White king must cross to
	// castle kingside.
	p, err := notation.ToPosition("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	assert.NoError(t, err)
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, Castling, list.At(i).MoveType())
	}
}

func TestGeneratePromotionsProduceFourMoves(t *testing.T) {
	p, err := notation.ToPosition("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	assert.NoError(t, err)
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	promoCount := 0
	for i := 0; i < list.Len(); i++ {
		if list.At(i).MoveType() == PawnPromotion {
			promoCount++
		}
	}
	assert.Equal(t, 4, promoCount)
}

func TestPerftStartPositionKnownValues(t *testing.T) {
	cases := []struct {
		depth int
		nodes uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		p, err := notation.ToPosition(notation.StartFEN)
		assert.NoError(t, err)
		assert.Equal(t, c.nodes, Perft(p, c.depth), "depth %d", c.depth)
	}
}

func TestPerftKiwipeteDepthOne(t *testing.T) {
	// The standard "Kiwipete" test position, a common perft stress test
	// exercising castling, en-passant and promotions simultaneously.
	p, err := notation.ToPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, uint64(48), Perft(p, 1))
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	p, err := notation.ToPosition(notation.StartFEN)
	assert.NoError(t, err)
	counters, divide := PerftDivide(p, 2)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	assert.Equal(t, uint64(400), sum)
	assert.Equal(t, uint64(400), counters.Nodes)
}

func TestGeneratedMovesAreMakeUndoReversible(t *testing.T) {
	p, err := notation.ToPosition("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	before := p.RecomputeZobristKey()
	list := NewGenerator().GeneratePseudoLegalMoves(p)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		p.MakeMove(m)
		p.UndoMove(m)
		assert.Equal(t, before, p.ZobristKey(), m.String())
		assert.Equal(t, before, p.RecomputeZobristKey(), m.String())
	}
}
