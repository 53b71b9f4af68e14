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

// PieceType is a set of constants for the six chess piece types.
type PieceType int8

// Constants for piece types. PtNone is the sentinel for "no piece".
const (
	PtNone   PieceType = 0
	Pawn     PieceType = 1
	Knight   PieceType = 2
	Bishop   PieceType = 3
	Rook     PieceType = 4
	Queen    PieceType = 5
	King     PieceType = 6
	PtLength PieceType = 7
)

var pieceTypeToString = [PtLength]string{"-", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}

// String returns a human readable name of the piece type.
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

var pieceTypeToChar = string("-PNBRQK")

// Char returns the single upper case FEN letter of the piece type.
func (pt PieceType) Char() string {
	return string(pieceTypeToChar[pt])
}

// pieceTypeValue is the material value table from spec section 3.
var pieceTypeValue = [PtLength]int{0, 100, 325, 325, 500, 975, 20000}

// ValueOf returns the material value in centipawns of the piece type.
func (pt PieceType) ValueOf() int {
	return pieceTypeValue[pt]
}

// IsValid checks if pt is one of the six real piece types.
func (pt PieceType) IsValid() bool {
	return pt >= Pawn && pt <= King
}

// PieceTypeFromChar returns the piece type for a FEN letter, case
// insensitive, or PtNone if unrecognized.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'p', 'P':
		return Pawn
	case 'n', 'N':
		return Knight
	case 'b', 'B':
		return Bishop
	case 'r', 'R':
		return Rook
	case 'q', 'Q':
		return Queen
	case 'k', 'K':
		return King
	default:
		return PtNone
	}
}
