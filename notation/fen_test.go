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

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "chesscore/types"
)

func TestToPositionStartFEN(t *testing.T) {
	p, err := ToPosition(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, White, p.ActiveColor())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, 1, p.FullmoveNumber())
	assert.Equal(t, WhiteRook, p.Board(SqA1))
	assert.Equal(t, WhiteKing, p.Board(SqE1))
	assert.Equal(t, BlackKing, p.Board(SqE8))
	assert.Equal(t, WhitePawn, p.Board(SqE2))
	assert.Equal(t, PieceNone, p.Board(SqE4))
}

func TestFromPositionRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
	}
	for _, fen := range fens {
		p, err := ToPosition(fen)
		assert.NoError(t, err, fen)
		assert.Equal(t, fen, FromPosition(p), fen)
	}
}

func TestToPositionEnPassant(t *testing.T) {
	p, err := ToPosition("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	assert.NoError(t, err)
	assert.Equal(t, MakeSquare("d6"), p.EnPassantSquare())
}

func TestToPositionRejectsBadFieldCount(t *testing.T) {
	_, err := ToPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq")
	assert.ErrorIs(t, err, ErrMalformedFEN)
}

func TestToPositionRejectsMalformedPlacement(t *testing.T) {
	_, err := ToPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	assert.ErrorIs(t, err, ErrMalformedFEN)
}

func TestToPositionRejectsEnPassantOnWrongRank(t *testing.T) {
	_, err := ToPosition("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1")
	assert.ErrorIs(t, err, ErrMalformedFEN)
}

func TestParseCastlingShredderStyle(t *testing.T) {
	// Standard rook files expressed as Shredder letters (H/A for White,
	// h/a for Black) instead of KQkq should resolve identically.
	p, err := ToPosition("r3k2r/8/8/8/8/8/8/R3K2R w HAha - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, CastlingAny, p.CastlingRights())
}
