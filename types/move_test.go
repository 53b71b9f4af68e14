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

func TestMoveRoundTrip(t *testing.T) {
	from := MakeSquare("e2")
	to := MakeSquare("e4")
	m := NewMove(PawnDouble, from, to, WhitePawn, PieceNone, PtNone)
	assert.Equal(t, PawnDouble, m.MoveType())
	assert.Equal(t, from, m.From())
	assert.Equal(t, to, m.To())
	assert.Equal(t, WhitePawn, m.FromPiece())
	assert.Equal(t, PieceNone, m.ToPiece())
	assert.Equal(t, PtNone, m.PromotionType())
	assert.False(t, m.IsCapture())
	assert.Equal(t, "e2e4", m.String())
}

func TestMoveCapture(t *testing.T) {
	from := MakeSquare("d4")
	to := MakeSquare("e5")
	m := NewMove(Normal, from, to, WhiteBishop, BlackPawn, PtNone)
	assert.True(t, m.IsCapture())
	assert.Equal(t, BlackPawn, m.ToPiece())
}

func TestMovePromotion(t *testing.T) {
	from := MakeSquare("e7")
	to := MakeSquare("e8")
	m := NewMove(PawnPromotion, from, to, WhitePawn, PieceNone, Queen)
	assert.Equal(t, Queen, m.PromotionType())
	assert.Equal(t, "e7e8q", m.String())
}

func TestMoveNoneIsZero(t *testing.T) {
	assert.Equal(t, Move(0), MoveNone)
	assert.Equal(t, "0000", MoveNone.String())
}
