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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakePiece(t *testing.T) {
	p := MakePiece(White, Queen)
	assert.Equal(t, White, p.ColorOf())
	assert.Equal(t, Queen, p.TypeOf())
	assert.Equal(t, WhiteQueen, p)

	p = MakePiece(Black, Knight)
	assert.Equal(t, Black, p.ColorOf())
	assert.Equal(t, Knight, p.TypeOf())
	assert.Equal(t, BlackKnight, p)
}

func TestPieceValueOf(t *testing.T) {
	assert.Equal(t, 100, WhitePawn.ValueOf())
	assert.Equal(t, 325, WhiteKnight.ValueOf())
	assert.Equal(t, 325, WhiteBishop.ValueOf())
	assert.Equal(t, 500, WhiteRook.ValueOf())
	assert.Equal(t, 975, WhiteQueen.ValueOf())
	assert.Equal(t, 20000, WhiteKing.ValueOf())
}

func TestPieceFromChar(t *testing.T) {
	assert.Equal(t, WhiteKing, PieceFromChar('K'))
	assert.Equal(t, BlackKing, PieceFromChar('k'))
	assert.Equal(t, WhitePawn, PieceFromChar('P'))
	assert.Equal(t, BlackQueen, PieceFromChar('q'))
	assert.Equal(t, PieceNone, PieceFromChar('x'))
}

func TestPieceChar(t *testing.T) {
	assert.Equal(t, "K", WhiteKing.Char())
	assert.Equal(t, "k", BlackKing.Char())
	assert.Equal(t, "-", PieceNone.Char())
}
