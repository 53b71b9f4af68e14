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

// Package position implements the mutable chess position state machine:
// the board, piece bitboards, material totals, castling rights, en-passant
// square, side to move, the two move clocks and the incrementally
// maintained Zobrist key, plus make/undo and attack queries over all of
// that state.
package position

import (
	"fmt"
	"strings"

	"chesscore/assert"
	. "chesscore/types"
)

// maxUndoDepth bounds the undo stack embedded in every Position. It covers
// the deepest search plus any pre-loaded game history used for repetition
// detection; 1024 plies is far beyond either in practice.
const maxUndoDepth = 1024

// undoRecord is what makeMove pushes before mutating the position and
// undoMove pops afterwards. It is exactly the state that cannot be
// reconstructed from the move itself.
type undoRecord struct {
	zobristKey      Key
	castlingRights  CastlingRights
	enPassantSquare Square
	halfmoveClock   int
}

// Position is the central mutable state machine. It is not safe to share
// across goroutines: make/undo and attack queries mutate shared state. Use
// Clone to hand a search thread its own copy.
type Position struct {
	board  [SqLength]Piece
	pieces [2][PtLength]Bitboard

	material        [2]int
	castlingRights  CastlingRights
	enPassantSquare Square
	activeColor     Color
	halfmoveClock   int
	halfmoveNumber  int
	zobristKey      Key

	states    [maxUndoDepth]undoRecord
	stateSize int
}

// New returns an empty position: no pieces on the board, no castling
// rights, no en-passant square, White to move, both clocks zero. Notation
// populates it via Put plus the setters below; makeMove/undoMove are the
// only mutators afterwards.
func New() *Position {
	ensureZobrist()
	return &Position{enPassantSquare: SqNone}
}

// Clone copies the board, bitboards, material, scalar state and zobrist
// key. The undo stack is not copied - the clone begins a fresh history, as
// required of a position handed to a parallel search thread.
func (p *Position) Clone() *Position {
	c := *p
	c.stateSize = 0
	return &c
}

// //////////////////////////////////////////////////////
// // Accessors
// //////////////////////////////////////////////////////

// Board returns the piece on sq, PieceNone if empty.
func (p *Position) Board(sq Square) Piece {
	return p.board[sq]
}

// Pieces returns the bitboard of pieces of type pt and color c.
func (p *Position) Pieces(c Color, pt PieceType) Bitboard {
	return p.pieces[c][pt]
}

// Occupied returns the bitboard of every square occupied by color c.
func (p *Position) Occupied(c Color) Bitboard {
	var bb Bitboard
	for pt := Pawn; pt <= King; pt++ {
		bb |= p.pieces[c][pt]
	}
	return bb
}

// Material returns the incremental material sum for color c, excluding the
// evaluator's bishop-pair bonus.
func (p *Position) Material(c Color) int {
	return p.material[c]
}

// CastlingRights returns the current castling-rights mask.
func (p *Position) CastlingRights() CastlingRights {
	return p.castlingRights
}

// EnPassantSquare returns the current en-passant target, SqNone if none.
func (p *Position) EnPassantSquare() Square {
	return p.enPassantSquare
}

// ActiveColor returns the side to move.
func (p *Position) ActiveColor() Color {
	return p.activeColor
}

// HalfmoveClock returns the plies since the last pawn move or capture.
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// HalfmoveNumber returns the ply counter: 2*fullmove number, plus 1 when
// Black is to move, as set by SetFullmoveNumber and advanced by one per
// MakeMove (so the standard starting position reports 2).
func (p *Position) HalfmoveNumber() int {
	return p.halfmoveNumber
}

// FullmoveNumber derives the FEN full-move counter from halfmoveNumber.
func (p *Position) FullmoveNumber() int {
	return p.halfmoveNumber / 2
}

// ZobristKey returns the incrementally maintained hash.
func (p *Position) ZobristKey() Key {
	return p.zobristKey
}

// KingSquare returns the square of color c's king. Undefined if c has no
// king, which never happens for a position reached via Notation plus
// makeMove/undoMove.
func (p *Position) KingSquare(c Color) Square {
	return Next(p.pieces[c][King])
}

// RecomputeZobristKey rebuilds the Zobrist key from scratch over the
// current board and state, for verifying the incrementally maintained key
// stays consistent (see the make/undo symmetry and Zobrist consistency
// properties).
func (p *Position) RecomputeZobristKey() Key {
	var k Key
	for sq := Square(0); sq < SqLength; sq++ {
		if !sq.IsValid() {
			continue
		}
		if pc := p.board[sq]; pc != PieceNone {
			k ^= zobristBase.pieces[pc][sq]
		}
	}
	k ^= zobristBase.castlingRights[p.castlingRights]
	if p.enPassantSquare != SqNone {
		k ^= zobristBase.enPassant[p.enPassantSquare]
	}
	if p.activeColor == Black {
		k ^= zobristBase.activeColor
	}
	return k
}

// //////////////////////////////////////////////////////
// // Public contract - 4.3
// //////////////////////////////////////////////////////

// Put places piece on sq. Precondition: sq is empty.
func (p *Position) Put(piece Piece, sq Square) {
	if assert.DEBUG {
		assert.Assert(p.board[sq] == PieceNone, "position: Put on occupied square %s", sq.String())
	}
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = piece
	p.pieces[c][pt] = Add(sq, p.pieces[c][pt])
	p.material[c] += pt.ValueOf()
	p.zobristKey ^= zobristBase.pieces[piece][sq]
}

// Remove clears sq and returns the piece that was there. Precondition: sq
// is occupied.
func (p *Position) Remove(sq Square) Piece {
	piece := p.board[sq]
	if assert.DEBUG {
		assert.Assert(piece != PieceNone, "position: Remove from empty square %s", sq.String())
	}
	c, pt := piece.ColorOf(), piece.TypeOf()
	p.board[sq] = PieceNone
	p.pieces[c][pt] = Remove(sq, p.pieces[c][pt])
	p.material[c] -= pt.ValueOf()
	p.zobristKey ^= zobristBase.pieces[piece][sq]
	return piece
}

// SetActiveColor sets the side to move, XORing the zobrist side-to-move key
// only if the color actually changes.
func (p *Position) SetActiveColor(c Color) {
	if c == p.activeColor {
		return
	}
	p.activeColor = c
	p.zobristKey ^= zobristBase.activeColor
}

// SetCastlingRight adds mask to the castling rights. Idempotent on bits
// already set: the zobrist key is only XORed for the newly granted bits.
func (p *Position) SetCastlingRight(mask CastlingRights) {
	newBits := mask &^ p.castlingRights
	if newBits == CastlingNone {
		return
	}
	p.zobristKey ^= zobristBase.castlingRights[newBits]
	p.castlingRights |= newBits
}

// SetEnPassantSquare sets the en-passant target, XORing out the old
// contribution (if any) and XORing in the new one (if any).
func (p *Position) SetEnPassantSquare(sq Square) {
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobristBase.enPassant[p.enPassantSquare]
	}
	p.enPassantSquare = sq
	if sq != SqNone {
		p.zobristKey ^= zobristBase.enPassant[sq]
	}
}

// SetHalfmoveClock sets the fifty-move counter directly.
func (p *Position) SetHalfmoveClock(n int) {
	p.halfmoveClock = n
}

// SetFullmoveNumber derives halfmoveNumber from a FEN full-move count. Must
// be called after SetActiveColor so the parity is correct.
func (p *Position) SetFullmoveNumber(n int) {
	black := 0
	if p.activeColor == Black {
		black = 1
	}
	p.halfmoveNumber = 2*n + black
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	return p.IsCheckColor(p.activeColor)
}

// IsCheckColor reports whether c's king is attacked by the opposite color.
func (p *Position) IsCheckColor(c Color) bool {
	return p.IsAttacked(p.KingSquare(c), c.Opposite())
}

// IsRepetition walks the undo stack backwards by twos - same side to move
// each step - no further than halfmoveClock plies, and reports whether any
// prior zobristKey matches the current one.
func (p *Position) IsRepetition() bool {
	limit := p.halfmoveClock
	if limit > p.stateSize {
		limit = p.stateSize
	}
	for i := 2; i <= limit; i += 2 {
		if p.states[p.stateSize-i].zobristKey == p.zobristKey {
			return true
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has a pawn, rook or
// queen, and each side has at most one minor piece.
func (p *Position) HasInsufficientMaterial() bool {
	for _, c := range [2]Color{White, Black} {
		if p.pieces[c][Pawn] != BbZero || p.pieces[c][Rook] != BbZero || p.pieces[c][Queen] != BbZero {
			return false
		}
	}
	for _, c := range [2]Color{White, Black} {
		if Size(p.pieces[c][Knight])+Size(p.pieces[c][Bishop]) > 1 {
			return false
		}
	}
	return true
}

// clearCastling revokes castling rights implicated by a piece arriving at
// or leaving sq: the four corner squares revoke one right each, the two
// king home squares revoke both of that color's rights.
//
// The zobrist delta for the revoked rights must be XORed into zobristKey
// before castlingRights is overwritten - computing the delta afterwards
// compares the new rights against themselves and XORs in zero, silently
// leaving the key out of sync with the position.
func (p *Position) clearCastling(sq Square) {
	newRights := p.castlingRights
	switch sq {
	case SqA1:
		newRights &^= CastlingWhiteOOO
	case SqH1:
		newRights &^= CastlingWhiteOO
	case SqA8:
		newRights &^= CastlingBlackOOO
	case SqH8:
		newRights &^= CastlingBlackOO
	case SqE1:
		newRights &^= CastlingWhite
	case SqE8:
		newRights &^= CastlingBlack
	}
	if newRights != p.castlingRights {
		p.zobristKey ^= zobristBase.castlingRights[p.castlingRights^newRights]
		p.castlingRights = newRights
	}
}

// castlingRookMove gives the fixed rook origin/destination for a castling
// move landing on the king's target square d.
func castlingRookMove(d Square) (from, to Square, rookColor Color) {
	switch d {
	case SqG1:
		return SqH1, SqF1, White
	case SqC1:
		return SqA1, SqD1, White
	case SqG8:
		return SqH8, SqF8, Black
	case SqC8:
		return SqA8, SqD8, Black
	}
	if assert.DEBUG {
		assert.Assert(false, "position: castling move with invalid target %s", d.String())
	}
	return SqNone, SqNone, NoColor
}

// MakeMove applies m, assumed pseudo-legal in the current position. Legal
// check is the caller's responsibility: make the move, then test
// IsCheckColor on the mover. No validation is performed here - passing a
// move that is not pseudo-legal in this exact position is undefined
// behaviour.
func (p *Position) MakeMove(m Move) {
	if assert.DEBUG {
		assert.Assert(m != MoveNone, "position: MakeMove with MoveNone")
		assert.Assert(p.stateSize < maxUndoDepth, "position: undo stack overflow")
	}

	p.states[p.stateSize] = undoRecord{
		zobristKey:      p.zobristKey,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		halfmoveClock:   p.halfmoveClock,
	}
	p.stateSize++

	t := m.MoveType()
	o, d := m.From(), m.To()
	op, tp, pr := m.FromPiece(), m.ToPiece(), m.PromotionType()
	oc := op.ColorOf()

	pawnMoved := op.TypeOf() == Pawn
	captured := tp != PieceNone

	if captured {
		capSq := d
		if t == EnPassant {
			if oc == White {
				capSq = d.To(South)
			} else {
				capSq = d.To(North)
			}
		}
		p.Remove(capSq)
		p.clearCastling(capSq)
	}

	p.Remove(o)
	if t == PawnPromotion {
		p.Put(MakePiece(oc, pr), d)
	} else {
		p.Put(op, d)
	}

	if t == Castling {
		rFrom, rTo, rc := castlingRookMove(d)
		p.Remove(rFrom)
		p.Put(MakePiece(rc, Rook), rTo)
	}

	p.clearCastling(o)

	p.SetEnPassantSquare(SqNone)
	if t == PawnDouble {
		if oc == White {
			p.SetEnPassantSquare(d.To(South))
		} else {
			p.SetEnPassantSquare(d.To(North))
		}
	}

	p.activeColor = p.activeColor.Opposite()
	p.zobristKey ^= zobristBase.activeColor

	if pawnMoved || captured {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	p.halfmoveNumber++
}

// UndoMove exactly reverses the most recent MakeMove(m). m must be the same
// move just passed to MakeMove - the core keeps no move history of its own,
// relying on the caller (the search driver) to replay moves in LIFO order.
func (p *Position) UndoMove(m Move) {
	if assert.DEBUG {
		assert.Assert(p.stateSize > 0, "position: UndoMove with empty undo stack")
	}

	p.halfmoveNumber--
	p.activeColor = p.activeColor.Opposite()

	t := m.MoveType()
	o, d := m.From(), m.To()
	op, tp := m.FromPiece(), m.ToPiece()
	oc := op.ColorOf()

	if t == Castling {
		rFrom, rTo, rc := castlingRookMove(d)
		p.Remove(rTo)
		p.Put(MakePiece(rc, Rook), rFrom)
	}

	p.Remove(d)
	p.Put(op, o)

	if tp != PieceNone {
		capSq := d
		if t == EnPassant {
			if oc == White {
				capSq = d.To(South)
			} else {
				capSq = d.To(North)
			}
		}
		p.Put(tp, capSq)
	}

	// The zobrist churn from the Remove/Put calls above is redundant and
	// is about to be discarded - the snapshot below is authoritative, per
	// 4.6.
	p.stateSize--
	rec := p.states[p.stateSize]
	p.zobristKey = rec.zobristKey
	p.castlingRights = rec.castlingRights
	p.enPassantSquare = rec.enPassantSquare
	p.halfmoveClock = rec.halfmoveClock
}

// //////////////////////////////////////////////////////
// // isAttacked - 4.7
// //////////////////////////////////////////////////////

// IsAttacked reports whether target is attacked by any piece of
// attackerColor, checking pawns, knights, kings, then sliders, returning
// true on the first hit.
func (p *Position) IsAttacked(target Square, attackerColor Color) bool {
	for _, d := range PawnAttackDirections(attackerColor) {
		if from := target.To(-d); from != SqNone && p.board[from] == MakePiece(attackerColor, Pawn) {
			return true
		}
	}
	for _, d := range KnightDirections {
		if from := target.To(d); from != SqNone && p.board[from] == MakePiece(attackerColor, Knight) {
			return true
		}
	}
	for _, d := range KingDirections {
		if from := target.To(d); from != SqNone && p.board[from] == MakePiece(attackerColor, King) {
			return true
		}
	}
	if p.slidingAttack(target, BishopDirections[:], attackerColor, Bishop) {
		return true
	}
	if p.slidingAttack(target, RookDirections[:], attackerColor, Rook) {
		return true
	}
	return false
}

// slidingAttack ray-scans from target in each of dirs until it runs off the
// board or meets a piece, hitting iff that piece is attackerColor's slider
// or queen.
func (p *Position) slidingAttack(target Square, dirs []Direction, attackerColor Color, slider PieceType) bool {
	for _, d := range dirs {
		for sq := target.To(d); sq != SqNone; sq = sq.To(d) {
			pc := p.board[sq]
			if pc == PieceNone {
				continue
			}
			if pc.ColorOf() == attackerColor && (pc.TypeOf() == slider || pc.TypeOf() == Queen) {
				return true
			}
			break
		}
	}
	return false
}

// //////////////////////////////////////////////////////
// // Debug rendering
// //////////////////////////////////////////////////////

// StringBoard renders an 8x8 ascii board, rank 8 at the top.
func (p *Position) StringBoard() string {
	var b strings.Builder
	b.WriteString("+---+---+---+---+---+---+---+---+\n")
	for r := Rank8; ; r-- {
		for f := FileA; f <= FileH; f++ {
			b.WriteString("| ")
			b.WriteString(p.board[SquareOf(f, r)].Char())
			b.WriteString(" ")
		}
		b.WriteString("|\n+---+---+---+---+---+---+---+---+\n")
		if r == Rank1 {
			break
		}
	}
	return b.String()
}

// String renders the board plus the scalar state, for logging and debug.
// FEN rendering itself lives in package notation.
func (p *Position) String() string {
	var b strings.Builder
	b.WriteString(p.StringBoard())
	b.WriteString(fmt.Sprintf("Active color   : %s\n", p.activeColor.String()))
	b.WriteString(fmt.Sprintf("Castling rights: %s\n", p.castlingRights.String()))
	b.WriteString(fmt.Sprintf("En passant     : %s\n", p.enPassantSquare.String()))
	b.WriteString(fmt.Sprintf("Halfmove clock : %d\n", p.halfmoveClock))
	b.WriteString(fmt.Sprintf("Halfmove number: %d\n", p.halfmoveNumber))
	b.WriteString(fmt.Sprintf("Material w/b   : %d/%d\n", p.material[White], p.material[Black]))
	return b.String()
}
