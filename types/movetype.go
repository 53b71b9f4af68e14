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

// MoveType distinguishes the five move shapes make/undo must handle
// differently.
type MoveType uint8

// Constants for move types. Fits in 3 bits.
const (
	Normal        MoveType = 0
	PawnDouble    MoveType = 1
	PawnPromotion MoveType = 2
	EnPassant     MoveType = 3
	Castling      MoveType = 4
)

var moveTypeToString = [5]string{"normal", "pawn-double", "promotion", "en-passant", "castling"}

// String returns a human readable move-type name.
func (t MoveType) String() string {
	if int(t) >= len(moveTypeToString) {
		return "?"
	}
	return moveTypeToString[t]
}

// IsValid reports whether t is one of the five defined move types.
func (t MoveType) IsValid() bool {
	return t <= Castling
}
