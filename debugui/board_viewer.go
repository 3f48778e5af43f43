package debugui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

// BoardViewer shows the session as text: settled cells and the active piece
// by shape letter, the ghost as ':' and rows waiting to clear as '='.
type BoardViewer struct {
	snapshot func() game.Snapshot
}

func NewBoardViewer(snapshot func() game.Snapshot) *BoardViewer {
	return &BoardViewer{snapshot: snapshot}
}

func (bv *BoardViewer) Render() {
	if !imgui.BeginV("Board", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := bv.snapshot()
	imgui.Text(fmt.Sprintf("Mode: %s  Phase: %s", s.Mode, s.Phase))
	imgui.Text(fmt.Sprintf("Lines: %d  Pieces: %d  Next: %s", s.Lines, s.Pieces, s.Next))
	if s.Active != nil {
		imgui.Text(fmt.Sprintf("Active: %s %v (%s)", s.Active.Shape, s.Active.Cells, s.Active.Intent))
	}
	imgui.Separator()

	for _, line := range boardLines(s) {
		imgui.Text(line)
	}

	imgui.End()
}

func boardLines(s game.Snapshot) []string {
	lines := make([]string, 0, s.Board.Height)
	var sb strings.Builder
	for y := 0; y < s.Board.Height; y++ {
		sb.Reset()
		clearing := slices.Contains(s.Clearing, y)
		for x := 0; x < s.Board.Width; x++ {
			if clearing {
				sb.WriteByte('=')
				continue
			}
			tag, ghost := s.TagAt(x, y)
			switch {
			case tag == board.Empty:
				sb.WriteByte('.')
			case ghost:
				sb.WriteByte(':')
			default:
				sb.WriteString(piece.ShapeOf(tag).String())
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
