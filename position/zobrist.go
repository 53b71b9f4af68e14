/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
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

package position

import (
	"sync"

	. "chesscore/types"
)

// Key is a Zobrist hash of a chess position.
type Key uint64

// zobrist is the process-wide table of random constants the incremental
// hash is built from. It is populated once by initZobrist and is read-only
// for the remainder of the process lifetime, so it may be freely shared
// across Positions and across goroutines.
type zobrist struct {
	pieces         [PieceLength][SqLength]Key
	castlingRights [CastlingRightsLength]Key
	enPassant      [SqLength]Key
	activeColor    Key
}

var (
	zobristBase zobrist
	zobristOnce sync.Once
)

// ensureZobrist initializes zobristBase exactly once, safely under
// concurrent first use. Every Position constructor calls this before
// touching the table.
func ensureZobrist() {
	zobristOnce.Do(initZobrist)
}

func initZobrist() {
	r := newRandom(1070372)
	for pc := Piece(0); pc < PieceLength; pc++ {
		for sq := Square(0); sq < SqLength; sq++ {
			if Square(sq).IsValid() {
				zobristBase.pieces[pc][sq] = Key(r.rand64())
			}
		}
	}
	// Each of the four single castling-rights bits gets an independent key;
	// every composite mask's key is the XOR of its bits' keys. This is the
	// "simplest conforming implementation" spec 4.2 calls for and is what
	// makes the castling-rights table XOR-decomposable: removing bit X from
	// the mask always XORs out exactly key(X), regardless of which other
	// bits are set.
	bitKeys := [4]Key{Key(r.rand64()), Key(r.rand64()), Key(r.rand64()), Key(r.rand64())}
	for mask := CastlingRights(0); mask < CastlingRightsLength; mask++ {
		var k Key
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<bit) != 0 {
				k ^= bitKeys[bit]
			}
		}
		zobristBase.castlingRights[mask] = k
	}
	for sq := Square(0); sq < SqLength; sq++ {
		if Square(sq).IsValid() {
			zobristBase.enPassant[sq] = Key(r.rand64())
		}
	}
	zobristBase.activeColor = Key(r.rand64())
}
