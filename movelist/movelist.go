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

// Package movelist provides a deque-backed list of moves, used by movegen
// to collect pseudo-legal moves without the reallocations a growing slice
// would cause during a deep perft walk.
package movelist

import (
	"fmt"
	"strings"

	"github.com/gammazero/deque"

	. "chesscore/types"
)

// MoveList is a deque.Deque typed to hold only Move values.
type MoveList struct {
	deque.Deque
}

// New returns an empty MoveList.
func New() *MoveList {
	return &MoveList{}
}

// PushBack appends m to the end of the list.
func (ml *MoveList) PushBack(m Move) {
	ml.Deque.PushBack(m)
}

// PopBack removes and returns the move at the end of the list. Panics if
// the list is empty, per deque.Deque's own contract.
func (ml *MoveList) PopBack() Move {
	return ml.Deque.PopBack().(Move)
}

// At returns the move at index i without removing it.
func (ml *MoveList) At(i int) Move {
	return ml.Deque.At(i).(Move)
}

// String renders the list as "MoveList: [n] { m1, m2, ... }".
func (ml *MoveList) String() string {
	var b strings.Builder
	n := ml.Len()
	fmt.Fprintf(&b, "MoveList: [%d] { ", n)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ml.At(i).String())
	}
	b.WriteString(" }")
	return b.String()
}
