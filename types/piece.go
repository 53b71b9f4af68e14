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

// Piece is one of the 12 (color, piece-type) combinations, or PieceNone.
type Piece int8

// Constants for pieces, encoded as (color<<3)|pieceType so ColorOf/TypeOf
// are pure bit extractions.
const (
	PieceNone   Piece = 0
	WhitePawn   Piece = Piece(Pawn)
	WhiteKnight Piece = Piece(Knight)
	WhiteBishop Piece = Piece(Bishop)
	WhiteRook   Piece = Piece(Rook)
	WhiteQueen  Piece = Piece(Queen)
	WhiteKing   Piece = Piece(King)
	BlackPawn   Piece = Piece(Pawn) | 8
	BlackKnight Piece = Piece(Knight) | 8
	BlackBishop Piece = Piece(Bishop) | 8
	BlackRook   Piece = Piece(Rook) | 8
	BlackQueen  Piece = Piece(Queen) | 8
	BlackKing   Piece = Piece(King) | 8
	PieceLength Piece = 16
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 | int(pt))
}

// ColorOf returns the color of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// ValueOf returns the material value of the piece (0 for PieceNone).
func (p Piece) ValueOf() int {
	return p.TypeOf().ValueOf()
}

// IsValid reports whether p is one of the 12 real pieces.
func (p Piece) IsValid() bool {
	return p.TypeOf().IsValid() && (p.ColorOf() == White || p.ColorOf() == Black)
}

var pieceToChar = [PieceLength]string{
	"-", "P", "N", "B", "R", "Q", "K", "-",
	"-", "p", "n", "b", "r", "q", "k", "-",
}

// Char returns the single FEN letter for the piece, upper case for White,
// lower case for Black.
func (p Piece) Char() string {
	return pieceToChar[p]
}

// String is an alias for Char, matching the teacher's piece string idiom.
func (p Piece) String() string {
	return p.Char()
}

// PieceFromChar returns the piece for a FEN letter, or PieceNone if the
// character is not a recognized piece letter.
func PieceFromChar(c byte) Piece {
	pt := PieceTypeFromChar(c)
	if pt == PtNone {
		return PieceNone
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, pt)
	}
	return MakePiece(White, pt)
}
