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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "chesscore/types"
)

// buildStart returns the standard starting position without depending on
// package notation (which itself depends on position), built by hand the
// way the FEN parser would.
func buildStart() *Position {
	p := New()
	back := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		p.Put(MakePiece(White, back[f]), SquareOf(f, Rank1))
		p.Put(WhitePawn, SquareOf(f, Rank2))
		p.Put(BlackPawn, SquareOf(f, Rank7))
		p.Put(MakePiece(Black, back[f]), SquareOf(f, Rank8))
	}
	p.SetCastlingRight(CastlingAny)
	return p
}

func TestNewIsEmpty(t *testing.T) {
	p := New()
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, White, p.ActiveColor())
	assert.Equal(t, 0, p.HalfmoveClock())
	for sq := Square(0); sq < SqLength; sq++ {
		if sq.IsValid() {
			assert.Equal(t, PieceNone, p.Board(sq))
		}
	}
}

func TestStartingPositionFields(t *testing.T) {
	p := buildStart()
	assert.Equal(t, 8*100+2*325+2*325+500*2+975+20000, p.Material(White))
	assert.Equal(t, p.Material(White), p.Material(Black))
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.False(t, p.IsCheck())
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}

func TestPawnDoublePushSetsEnPassantAndUndoRestores(t *testing.T) {
	p := buildStart()
	beforeKey := p.ZobristKey()

	m := NewMove(PawnDouble, SqE2, SqE4, WhitePawn, PieceNone, PtNone)
	p.MakeMove(m)
	assert.Equal(t, SqE3, p.EnPassantSquare())
	assert.Equal(t, PieceNone, p.Board(SqE2))
	assert.Equal(t, WhitePawn, p.Board(SqE4))
	assert.Equal(t, Black, p.ActiveColor())
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())

	p.UndoMove(m)
	assert.Equal(t, SqNone, p.EnPassantSquare())
	assert.Equal(t, WhitePawn, p.Board(SqE2))
	assert.Equal(t, PieceNone, p.Board(SqE4))
	assert.Equal(t, White, p.ActiveColor())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestCastlingKingsideMoveAndUndo(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(WhiteRook, SqH1)
	p.Put(BlackKing, SqE8)
	p.SetCastlingRight(CastlingWhite)
	beforeKey := p.ZobristKey()

	m := NewMove(Castling, SqE1, SqG1, WhiteKing, PieceNone, PtNone)
	p.MakeMove(m)
	assert.Equal(t, WhiteKing, p.Board(SqG1))
	assert.Equal(t, WhiteRook, p.Board(SqF1))
	assert.Equal(t, PieceNone, p.Board(SqE1))
	assert.Equal(t, PieceNone, p.Board(SqH1))
	assert.False(t, p.IsAttacked(SqG1, Black))
	assert.Equal(t, CastlingNone, p.CastlingRights()&CastlingWhite)
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())

	p.UndoMove(m)
	assert.Equal(t, WhiteKing, p.Board(SqE1))
	assert.Equal(t, WhiteRook, p.Board(SqH1))
	assert.Equal(t, CastlingWhite, p.CastlingRights()&CastlingWhite)
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestInsufficientMaterialKingAndRook(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(BlackKing, SqE8)
	p.Put(WhiteRook, SqA1)
	assert.False(t, p.HasInsufficientMaterial())
}

func TestInsufficientMaterialBareKings(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(BlackKing, SqE8)
	assert.True(t, p.HasInsufficientMaterial())
}

func TestMakeUndoSymmetryFourMoves(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(BlackKing, SqE8)
	p.Put(WhitePawn, SqE2)
	beforeKey := p.ZobristKey()
	beforeBoard := p.StringBoard()

	moves := []Move{
		NewMove(PawnDouble, SqE2, SqE4, WhitePawn, PieceNone, PtNone),
		NewMove(Normal, SqE8, SqD8, BlackKing, PieceNone, PtNone),
		NewMove(Normal, SqE1, SqD1, WhiteKing, PieceNone, PtNone),
		NewMove(Normal, SqD8, SqE8, BlackKing, PieceNone, PtNone),
	}
	for _, m := range moves {
		p.MakeMove(m)
	}
	for i := len(moves) - 1; i >= 0; i-- {
		p.UndoMove(moves[i])
	}

	assert.Equal(t, beforeKey, p.ZobristKey())
	assert.Equal(t, beforeBoard, p.StringBoard())
	assert.Equal(t, 0, p.HalfmoveClock())
	assert.Equal(t, White, p.ActiveColor())
}

func TestEnPassantCaptureMakeUndo(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(BlackKing, SqE8)
	p.Put(WhitePawn, SqE5)
	p.Put(BlackPawn, SqD5)
	p.SetEnPassantSquare(SqD6)
	beforeKey := p.ZobristKey()

	m := NewMove(EnPassant, SqE5, SqD6, WhitePawn, BlackPawn, PtNone)
	p.MakeMove(m)
	assert.Equal(t, WhitePawn, p.Board(SqD6))
	assert.Equal(t, PieceNone, p.Board(SqE5))
	assert.Equal(t, PieceNone, p.Board(SqD5))
	assert.Equal(t, 0, p.HalfmoveClock())

	p.UndoMove(m)
	assert.Equal(t, WhitePawn, p.Board(SqE5))
	assert.Equal(t, BlackPawn, p.Board(SqD5))
	assert.Equal(t, PieceNone, p.Board(SqD6))
	assert.Equal(t, SqD6, p.EnPassantSquare())
	assert.Equal(t, beforeKey, p.ZobristKey())
}

func TestIsRepetitionDetectsKingShuffle(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(BlackKing, SqE8)

	out1 := NewMove(Normal, SqE1, SqF1, WhiteKing, PieceNone, PtNone)
	back1 := NewMove(Normal, SqF1, SqE1, WhiteKing, PieceNone, PtNone)
	out2 := NewMove(Normal, SqE8, SqF8, BlackKing, PieceNone, PtNone)
	back2 := NewMove(Normal, SqF8, SqE8, BlackKing, PieceNone, PtNone)

	assert.False(t, p.IsRepetition())
	p.MakeMove(out1)
	p.MakeMove(out2)
	p.MakeMove(back1)
	p.MakeMove(back2)
	assert.True(t, p.IsRepetition())
}

func TestClearCastlingKeepsZobristConsistent(t *testing.T) {
	p := New()
	p.Put(WhiteKing, SqE1)
	p.Put(WhiteRook, SqA1)
	p.Put(BlackKing, SqE8)
	p.SetCastlingRight(CastlingWhiteOOO)

	m := NewMove(Normal, SqA1, SqB1, WhiteRook, PieceNone, PtNone)
	p.MakeMove(m)
	assert.Equal(t, CastlingNone, p.CastlingRights())
	assert.Equal(t, p.RecomputeZobristKey(), p.ZobristKey())
}
