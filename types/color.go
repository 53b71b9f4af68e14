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

import "fmt"

// Color represents the side to move: White or Black. NoColor is a sentinel
// used only to report parse failures - it never appears in a well-formed
// Position.
type Color int8

// Constants for each color.
const (
	White   Color = 0
	Black   Color = 1
	NoColor Color = 2
)

// Opposite returns the other color.
func (c Color) Opposite() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid (non-sentinel) color.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// String returns "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// pawnMoveDirection is +1 for White (towards rank 8) and -1 for Black.
var pawnMoveDirection = [2]int{1, -1}

// PawnDirection returns +1 for White and -1 for Black, the rank direction
// in which that color's pawns advance.
func (c Color) PawnDirection() int {
	if !c.IsValid() {
		panic(fmt.Sprintf("types: invalid color %d", c))
	}
	return pawnMoveDirection[c]
}
