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

// Package types contains the primitive domain of the engine: small integer
// types for color, piece type, piece, file, rank, square, castling right,
// move type and the packed move, plus the Bitboard word. Most of these
// would be enum candidates in another language but Go has none, so each is
// a distinct integer type with documented bit layouts.
package types

import "fmt"

// Square is a 0x88 board index: (rank<<4)|file. A square is on-board iff
// (square & 0x88) == 0. This wastes half the 128-entry array but makes
// off-board detection during ray walks and knight/king jumps a single
// bitwise AND instead of four range comparisons.
type Square int8

// SqLength is the size of the 0x88 board array; only 64 of its indices
// are on-board squares.
const SqLength = 128

// SqNone is the sentinel for "no square" (e.g. no en-passant target).
const SqNone Square = -1

// Named squares, used throughout the castling and FEN logic. Only the
// corner/king/rook-destination squares castling needs are spelled out by
// name; everything else is built with SquareOf or MakeSquare.
const (
	SqA1 Square = 0x00
	SqB1 Square = 0x01
	SqC1 Square = 0x02
	SqD1 Square = 0x03
	SqE1 Square = 0x04
	SqF1 Square = 0x05
	SqG1 Square = 0x06
	SqH1 Square = 0x07
	SqA8 Square = 0x70
	SqB8 Square = 0x71
	SqC8 Square = 0x72
	SqD8 Square = 0x73
	SqE8 Square = 0x74
	SqF8 Square = 0x75
	SqG8 Square = 0x76
	SqH8 Square = 0x77
)

// SquareOf builds a square from a file and rank, both 0..7.
func SquareOf(f File, r Rank) Square {
	return Square(int(r)<<4 | int(f))
}

// IsValid reports whether sq sits on the board, the 0x88 test.
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq)&0x88 == 0
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 4)
}

// To returns the square reached by moving one step in direction d, or
// SqNone if that step leaves the board.
func (sq Square) To(d Direction) Square {
	t := sq + Square(d)
	if !t.IsValid() {
		return SqNone
	}
	return t
}

// MakeSquare parses algebraic notation (e.g. "e4") into a Square, or
// SqNone if s is not exactly two characters or names an off-board square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return SquareOf(f, r)
}

// String returns algebraic notation (e.g. "e4"), or "-" if sq is SqNone or
// otherwise off-board.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%s%s", sq.FileOf().String(), sq.RankOf().String())
}
