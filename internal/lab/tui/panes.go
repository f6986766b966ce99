package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/haukened/framelab/internal/lab/render"
)

// hexPane renders the hex dump with each segment's bytes in its palette
// color. The underlying text is exactly render.Hex(data); only color is
// added, so the displayed bytes always match the encoding.
func hexPane(th Theme, segs []render.Segment, data []byte) string {
	var parts []string
	for i, s := range segs {
		if s.Length == 0 {
			continue
		}
		chunk := render.Hex(data[s.Offset:s.End()])
		parts = append(parts, th.segmentStyle(i).Render(chunk))
	}
	return th.Pane.Render(strings.Join(parts, " "))
}

// binaryPane renders the bit dump, colored per segment and wrapped to
// whole bytes so a field never splits mid-octet.
func binaryPane(th Theme, segs []render.Segment, data []byte, width int) string {
	bytesPerLine := 4
	if width > 80 {
		bytesPerLine = 6
	}

	var lines []string
	var line []string
	count := 0
	for i, s := range segs {
		style := th.segmentStyle(i)
		for off := s.Offset; off < s.End(); off++ {
			line = append(line, style.Render(fmt.Sprintf("%08b", data[off])))
			count++
			if count%bytesPerLine == 0 {
				lines = append(lines, strings.Join(line, " "))
				line = nil
			}
		}
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return th.Pane.Render(strings.Join(lines, "\n"))
}

// legend lists each segment with its palette swatch, offset and length.
func legend(th Theme, segs []render.Segment) string {
	var lines []string
	for i, s := range segs {
		swatch := th.segmentStyle(i).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s  %s", swatch,
			th.Label.Render(fmt.Sprintf("[%2d:%2d]", s.Offset, s.End())), s.Label))
	}
	return strings.Join(lines, "\n")
}

// joinPanes stacks the standard output panes of a view.
func joinPanes(th Theme, segs []render.Segment, data []byte, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		th.Label.Render(fmt.Sprintf("bytes: %d", len(data))),
		hexPane(th, segs, data),
		binaryPane(th, segs, data, width),
		legend(th, segs),
	)
}
