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

// Direction is a delta applied to a 0x88 Square. Off-board detection after
// applying a direction is always the 0x88 test, never range checks on file
// or rank individually.
type Direction int8

// Direction constants for the 0x88 board.
const (
	North     Direction = 16
	South     Direction = -16
	East      Direction = 1
	West      Direction = -1
	Northeast Direction = North + East
	Northwest Direction = North + West
	Southeast Direction = South + East
	Southwest Direction = South + West
)

// pawnAttackDirs gives the two directions a pawn of the given color captures
// towards. Package movegen steps along them to generate pawn captures;
// IsAttacked in package position walks them backwards from the target.
var pawnAttackDirs = [2][2]Direction{
	{Northwest, Northeast}, // White
	{Southwest, Southeast}, // Black
}

// PawnAttackDirections returns the two directions in which a pawn of color c
// attacks.
func PawnAttackDirections(c Color) [2]Direction {
	return pawnAttackDirs[c]
}

// KnightDirections are the eight knight-move deltas.
var KnightDirections = [8]Direction{33, 31, 18, 14, -14, -18, -31, -33}

// BishopDirections are the four diagonal deltas.
var BishopDirections = [4]Direction{Northeast, Northwest, Southeast, Southwest}

// RookDirections are the four orthogonal deltas.
var RookDirections = [4]Direction{North, South, East, West}

// KingDirections are the eight adjacent-square deltas.
var KingDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}
