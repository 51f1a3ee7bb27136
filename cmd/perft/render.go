// render.go formats a Board as a colored terminal board, one rank per
// line, White pieces in one color and Black in another.
package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/kagamihex/chesscore"
)

var (
	whitePiece = color.New(color.FgWhite, color.Bold)
	blackPiece = color.New(color.FgCyan, color.Bold)
)

// renderBoard renders b's piece placement, active color, castling
// rights, and en passant target as a human-readable string.
func renderBoard(b *chesscore.Board) string {
	var sb strings.Builder

	for rank := chesscore.Rank8; ; rank-- {
		sb.WriteString(rank.String())
		sb.WriteString("  ")
		for file := chesscore.FileA; file <= chesscore.FileH; file++ {
			sq := chesscore.NewSquare(file, rank)
			piece, ok := b.PieceAt(sq)
			if !ok {
				sb.WriteString(".  ")
				continue
			}
			if piece.Color == chesscore.White {
				sb.WriteString(whitePiece.Sprint(piece.String()))
			} else {
				sb.WriteString(blackPiece.Sprint(piece.String()))
			}
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
		if rank == chesscore.Rank1 {
			break
		}
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	s := b.State()
	sb.WriteString("active color: ")
	sb.WriteString(s.SideToMove.String())
	sb.WriteString("\ncastling rights: ")
	sb.WriteString(s.Castle.String())
	sb.WriteString("\nen passant: ")
	sb.WriteString(s.EnPassant.String())
	sb.WriteByte('\n')

	return sb.String()
}
