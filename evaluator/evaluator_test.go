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

package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"chesscore/notation"
	. "chesscore/types"
)

func TestEvaluateStartPositionIsSymmetricPlusTempo(t *testing.T) {
	p, err := notation.ToPosition(notation.StartFEN)
	assert.NoError(t, err)

	e := NewEvaluator()
	value := e.Evaluate(p)

	// Material and mobility are identical for both sides in the starting
	// position, so only the tempo bonus survives.
	assert.Equal(t, Value(1), value)
}

func TestEvaluateRewardsExtraMaterial(t *testing.T) {
	base, err := notation.ToPosition("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	assert.NoError(t, err)
	withQueen, err := notation.ToPosition("4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	assert.Greater(t, int(e.Evaluate(withQueen)), int(e.Evaluate(base)))
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	onePair, err := notation.ToPosition("4k3/8/8/8/8/8/8/2B1K2B w - - 0 1")
	assert.NoError(t, err)
	oneBishop, err := notation.ToPosition("4k3/8/8/8/8/8/8/4K2B w - - 0 1")
	assert.NoError(t, err)

	e := NewEvaluator()
	// The pair has twice the raw material of the lone bishop, plus the
	// bishop-pair bonus: strictly more than double.
	assert.Greater(t, int(e.Evaluate(onePair)), 2*int(e.Evaluate(oneBishop)))
}
