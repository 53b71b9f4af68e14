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
	"fmt"
	"strings"
)

// Move packs a whole chess move into a single 32-bit integer so that
// move generation never needs to allocate. Layout, low bit first:
//
//	bits  0- 2  move type      (3 bits)
//	bits  3- 9  origin square  (7 bits)
//	bits 10-16  target square  (7 bits)
//	bits 17-20  origin piece   (4 bits)
//	bits 21-24  target piece   (4 bits, PieceNone if no capture)
//	bits 25-27  promotion type (3 bits, PtNone if not a promotion)
//
// Accessors are pure bit extractions - no branching, no lookups.
type Move uint32

// MoveNone is the zero value: an invalid move usable as a "no move" marker.
const MoveNone Move = 0

const (
	typeShift       = 0
	fromShift       = 3
	toShift         = 10
	fromPieceShift  = 17
	toPieceShift    = 21
	promotionShift  = 25
	typeBits  Move = 0x7
	sqBits    Move = 0x7F
	pieceBits Move = 0xF
	ptBits    Move = 0x7
)

// NewMove packs the given fields into a Move. toPiece should be PieceNone
// when the move is not a capture; promotion should be PtNone when the move
// is not a promotion.
func NewMove(t MoveType, from, to Square, fromPiece, toPiece Piece, promotion PieceType) Move {
	return Move(t)<<typeShift |
		Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(fromPiece)<<fromPieceShift |
		Move(toPiece)<<toPieceShift |
		Move(promotion)<<promotionShift
}

// MoveType returns the packed move type.
func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & typeBits)
}

// From returns the packed origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & sqBits)
}

// To returns the packed target square.
func (m Move) To() Square {
	return Square((m >> toShift) & sqBits)
}

// FromPiece returns the packed origin piece.
func (m Move) FromPiece() Piece {
	return Piece((m >> fromPieceShift) & pieceBits)
}

// ToPiece returns the packed target piece, PieceNone if the move is not a
// capture.
func (m Move) ToPiece() Piece {
	return Piece((m >> toPieceShift) & pieceBits)
}

// PromotionType returns the packed promotion piece type, PtNone if the
// move is not a promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m >> promotionShift) & ptBits)
}

// IsCapture reports whether the move captures a piece (including
// en-passant captures, which always pack a ToPiece even though the target
// square itself was empty).
func (m Move) IsCapture() bool {
	return m.ToPiece() != PieceNone
}

// String renders the move in UCI long algebraic form, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	if m == MoveNone {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.MoveType() == PawnPromotion {
		s += strings.ToLower(m.PromotionType().Char())
	}
	return s
}

// StringBits renders the move with every packed field labeled, for
// debugging.
func (m Move) StringBits() string {
	return fmt.Sprintf("Move{from=%s to=%s type=%s fromPc=%s toPc=%s promo=%s}",
		m.From(), m.To(), m.MoveType(), m.FromPiece(), m.ToPiece(), m.PromotionType())
}
