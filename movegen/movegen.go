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

// Package movegen enumerates pseudo-legal moves for a position and counts
// perft leaf nodes. It does not filter for legality itself - the caller
// makes the move and checks whether the mover's own king is attacked
// afterwards, the same make-then-test approach position.IsCheckColor
// exists for.
package movegen

import (
	"chesscore/movelist"
	"chesscore/position"
	. "chesscore/types"
)

// promotionTypes are the four pieces a pawn may promote to, in the order
// moves are generated.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// queenDirections is the bishop and rook deltas combined - a queen slides
// along both.
var queenDirections = [8]Direction{
	Northeast, Northwest, Southeast, Southwest,
	North, South, East, West,
}

// Generator enumerates pseudo-legal moves. It holds no per-position state,
// so a single instance is reused across an entire perft walk.
type Generator struct{}

// NewGenerator returns a move generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// GeneratePseudoLegalMoves returns every pseudo-legal move for the side to
// move in p: piece moves that respect board boundaries and friendly
// occupancy, without checking whether the mover's own king ends up
// attacked.
func (g *Generator) GeneratePseudoLegalMoves(p *position.Position) *movelist.MoveList {
	list := movelist.New()
	c := p.ActiveColor()
	genPawnMoves(p, c, list)
	genStepMoves(p, c, Knight, KnightDirections[:], list)
	genSlideMoves(p, c, Bishop, BishopDirections[:], list)
	genSlideMoves(p, c, Rook, RookDirections[:], list)
	genSlideMoves(p, c, Queen, queenDirections[:], list)
	genStepMoves(p, c, King, KingDirections[:], list)
	genCastlingMoves(p, c, list)
	return list
}

func genPawnMoves(p *position.Position, c Color, list *movelist.MoveList) {
	opp := c.Opposite()
	pawn := MakePiece(c, Pawn)
	dir := North
	startRank, promoRank := Rank2, Rank8
	if c == Black {
		dir = South
		startRank, promoRank = Rank7, Rank1
	}
	for bb := p.Pieces(c, Pawn); bb != BbZero; bb = Remainder(bb) {
		sq := Next(bb)

		if one := sq.To(dir); one != SqNone && p.Board(one) == PieceNone {
			addPawnAdvance(sq, one, pawn, promoRank, list)
			if sq.RankOf() == startRank {
				if two := one.To(dir); two != SqNone && p.Board(two) == PieceNone {
					list.PushBack(NewMove(PawnDouble, sq, two, pawn, PieceNone, PtNone))
				}
			}
		}

		for _, capDir := range PawnAttackDirections(c) {
			capSq := sq.To(capDir)
			if capSq == SqNone {
				continue
			}
			if capSq == p.EnPassantSquare() {
				list.PushBack(NewMove(EnPassant, sq, capSq, pawn, MakePiece(opp, Pawn), PtNone))
				continue
			}
			target := p.Board(capSq)
			if target != PieceNone && target.ColorOf() == opp {
				addPawnCapture(sq, capSq, pawn, target, promoRank, list)
			}
		}
	}
}

// addPawnAdvance appends a quiet pawn push, expanding to the four
// promotion moves if dst sits on the promotion rank.
func addPawnAdvance(from, to Square, pawn Piece, promoRank Rank, list *movelist.MoveList) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionTypes {
			list.PushBack(NewMove(PawnPromotion, from, to, pawn, PieceNone, pt))
		}
		return
	}
	list.PushBack(NewMove(Normal, from, to, pawn, PieceNone, PtNone))
}

// addPawnCapture appends a pawn capture, expanding to the four
// promotion-capture moves if dst sits on the promotion rank.
func addPawnCapture(from, to Square, pawn, captured Piece, promoRank Rank, list *movelist.MoveList) {
	if to.RankOf() == promoRank {
		for _, pt := range promotionTypes {
			list.PushBack(NewMove(PawnPromotion, from, to, pawn, captured, pt))
		}
		return
	}
	list.PushBack(NewMove(Normal, from, to, pawn, captured, PtNone))
}

// genStepMoves generates moves for a piece type that moves at most one
// step in each of dirs (knight, king).
func genStepMoves(p *position.Position, c Color, pt PieceType, dirs []Direction, list *movelist.MoveList) {
	piece := MakePiece(c, pt)
	opp := c.Opposite()
	for bb := p.Pieces(c, pt); bb != BbZero; bb = Remainder(bb) {
		sq := Next(bb)
		for _, d := range dirs {
			to := sq.To(d)
			if to == SqNone {
				continue
			}
			target := p.Board(to)
			if target == PieceNone {
				list.PushBack(NewMove(Normal, sq, to, piece, PieceNone, PtNone))
			} else if target.ColorOf() == opp {
				list.PushBack(NewMove(Normal, sq, to, piece, target, PtNone))
			}
		}
	}
}

// genSlideMoves generates moves for a sliding piece type (bishop, rook,
// queen), walking each direction until it runs off the board or meets a
// piece.
func genSlideMoves(p *position.Position, c Color, pt PieceType, dirs []Direction, list *movelist.MoveList) {
	piece := MakePiece(c, pt)
	opp := c.Opposite()
	for bb := p.Pieces(c, pt); bb != BbZero; bb = Remainder(bb) {
		sq := Next(bb)
		for _, d := range dirs {
			for to := sq.To(d); to != SqNone; to = to.To(d) {
				target := p.Board(to)
				if target == PieceNone {
					list.PushBack(NewMove(Normal, sq, to, piece, PieceNone, PtNone))
					continue
				}
				if target.ColorOf() == opp {
					list.PushBack(NewMove(Normal, sq, to, piece, target, PtNone))
				}
				break
			}
		}
	}
}

// genCastlingMoves appends the castling moves still available to c: rights
// granted, the squares between king and rook empty, and neither the king's
// current square, the square it crosses nor its destination attacked.
func genCastlingMoves(p *position.Position, c Color, list *movelist.MoveList) {
	opp := c.Opposite()
	king := MakePiece(c, King)
	if c == White {
		if p.CastlingRights().Has(CastlingWhiteOO) &&
			p.Board(SqF1) == PieceNone && p.Board(SqG1) == PieceNone &&
			!p.IsAttacked(SqE1, opp) && !p.IsAttacked(SqF1, opp) && !p.IsAttacked(SqG1, opp) {
			list.PushBack(NewMove(Castling, SqE1, SqG1, king, PieceNone, PtNone))
		}
		if p.CastlingRights().Has(CastlingWhiteOOO) &&
			p.Board(SqD1) == PieceNone && p.Board(SqC1) == PieceNone && p.Board(SqB1) == PieceNone &&
			!p.IsAttacked(SqE1, opp) && !p.IsAttacked(SqD1, opp) && !p.IsAttacked(SqC1, opp) {
			list.PushBack(NewMove(Castling, SqE1, SqC1, king, PieceNone, PtNone))
		}
		return
	}
	if p.CastlingRights().Has(CastlingBlackOO) &&
		p.Board(SqF8) == PieceNone && p.Board(SqG8) == PieceNone &&
		!p.IsAttacked(SqE8, opp) && !p.IsAttacked(SqF8, opp) && !p.IsAttacked(SqG8, opp) {
		list.PushBack(NewMove(Castling, SqE8, SqG8, king, PieceNone, PtNone))
	}
	if p.CastlingRights().Has(CastlingBlackOOO) &&
		p.Board(SqD8) == PieceNone && p.Board(SqC8) == PieceNone && p.Board(SqB8) == PieceNone &&
		!p.IsAttacked(SqE8, opp) && !p.IsAttacked(SqD8, opp) && !p.IsAttacked(SqC8, opp) {
		list.PushBack(NewMove(Castling, SqE8, SqC8, king, PieceNone, PtNone))
	}
}
