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
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit set of squares. Bit i corresponds to the 0x88
// square s via the dense mapping i = ((s & ~7) >> 1) | (s & 7), which folds
// the upper nibble of each 0x88 rank byte away. The mapping is private to
// this file; every other package only ever sees 0x88 Square values.
type Bitboard uint64

// BbZero is the empty bitboard.
const BbZero Bitboard = 0

// denseIndex converts a valid 0x88 square to its 0..63 bit index.
func denseIndex(sq Square) uint {
	s := int(sq)
	return uint(((s &^ 7) >> 1) | (s & 7))
}

// sparseSquare is the inverse of denseIndex: given a 0..63 bit index,
// returns the corresponding 0x88 square.
func sparseSquare(i uint) Square {
	return Square(int(i&7) | int((i&^7)<<1))
}

// Add returns bb with sq set.
func Add(sq Square, bb Bitboard) Bitboard {
	return bb | (1 << denseIndex(sq))
}

// Remove returns bb with sq cleared.
func Remove(sq Square, bb Bitboard) Bitboard {
	return bb &^ (1 << denseIndex(sq))
}

// Has reports whether sq is set in bb.
func (bb Bitboard) Has(sq Square) bool {
	return bb&(1<<denseIndex(sq)) != 0
}

// Size returns the population count of bb.
func Size(bb Bitboard) int {
	return bits.OnesCount64(uint64(bb))
}

// Next returns the 0x88 square of the lowest set bit of bb. Undefined
// (returns SqNone) if bb is empty.
func Next(bb Bitboard) Square {
	if bb == BbZero {
		return SqNone
	}
	return sparseSquare(uint(bits.TrailingZeros64(uint64(bb))))
}

// Remainder clears the lowest set bit of bb and returns the result.
func Remainder(bb Bitboard) Bitboard {
	return bb & (bb - 1)
}

// String renders bb as a 64-character binary string, most significant bit
// (h8) first and a1 last.
func (bb Bitboard) String() string {
	return fmt.Sprintf("%064b", uint64(bb))
}

// StringBoard renders bb as an 8x8 ascii board, rank 8 at the top.
func (bb Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; r >= Rank1; r-- {
		for f := FileA; f <= FileH; f++ {
			sb.WriteString("| ")
			if bb.Has(SquareOf(f, r)) {
				sb.WriteString("X")
			} else {
				sb.WriteString(".")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
	}
	return sb.String()
}
