package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haukened/framelab/internal/lab/common/utils"
	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/haukened/framelab/internal/lab/render"
	"github.com/haukened/framelab/internal/lab/repos/presets"
	"github.com/haukened/framelab/internal/lab/wire"
)

// tcpView edits the fields of a 20-byte TCP header.
type tcpView struct {
	form    form
	presets []presets.TCPPreset
	preset  int

	data []byte
	segs []render.Segment
}

func newTCPView(catalog []presets.TCPPreset) *tcpView {
	v := &tcpView{presets: catalog, preset: -1}
	fields := []field{
		newTextField("Source Port", "49152", 16),
		newTextField("Destination Port", "80", 16),
		newTextField("Sequence", "0", 16),
		newTextField("Acknowledgment", "0", 16),
		newTextField("Window", "65535", 16),
		newFlagField("NS", false),
	}
	for _, f := range domain.TCPFlags {
		fields = append(fields, newFlagField(f.String(), false))
	}
	v.form = newForm(fields...)
	v.segs = render.TCPHeaderSegments()
	v.recompute()
	return v
}

func (v *tcpView) title() string    { return "TCP" }
func (v *tcpView) protocol() string { return "tcp" }
func (v *tcpView) bytes() []byte    { return v.data }

func (v *tcpView) snapshotLabel() string {
	names := ""
	h := v.state()
	if h.NS {
		names += " NS"
	}
	for _, f := range domain.TCPFlags {
		if h.Flag(f) {
			names += " " + f.String()
		}
	}
	if names == "" {
		names = " (no flags)"
	}
	return "tcp" + names
}

func (v *tcpView) update(msg tea.KeyMsg) tea.Cmd {
	cmd := v.form.update(msg)
	v.recompute()
	return cmd
}

func (v *tcpView) cyclePreset() {
	if len(v.presets) == 0 {
		return
	}
	v.preset = (v.preset + 1) % len(v.presets)
	p := v.presets[v.preset]
	h := p.Header()

	v.form.setValue("Source Port", fmt.Sprintf("%d", h.SourcePort))
	v.form.setValue("Destination Port", fmt.Sprintf("%d", h.DestPort))
	v.form.setValue("Sequence", fmt.Sprintf("%d", h.Seq))
	v.form.setValue("Acknowledgment", fmt.Sprintf("%d", h.Ack))
	v.form.setValue("Window", fmt.Sprintf("%d", h.Window))
	v.form.setFlag("NS", h.NS)
	for _, f := range domain.TCPFlags {
		v.form.setFlag(f.String(), h.Flag(f))
	}

	v.recompute()
}

func (v *tcpView) presetName() string {
	if v.preset < 0 || v.preset >= len(v.presets) {
		return ""
	}
	return v.presets[v.preset].Name
}

// state assembles the header model from the current inputs. Oversized
// numbers are kept as typed; the encoder truncates them.
func (v *tcpView) state() domain.TCPHeader {
	h := domain.TCPHeader{
		SourcePort: utils.CoerceUint64(v.form.value("Source Port")),
		DestPort:   utils.CoerceUint64(v.form.value("Destination Port")),
		Seq:        utils.CoerceUint64(v.form.value("Sequence")),
		Ack:        utils.CoerceUint64(v.form.value("Acknowledgment")),
		Window:     utils.CoerceUint64(v.form.value("Window")),
		NS:         v.form.flag("NS"),
	}
	for _, f := range domain.TCPFlags {
		h.SetFlag(f, v.form.flag(f.String()))
	}
	return h
}

func (v *tcpView) recompute() {
	v.data = wire.EncodeTCPHeader(v.state())
}

func (v *tcpView) view(th Theme, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		th.Label.Render("data offset: 5 (20 bytes, no options); checksum and urgent pointer always zero"),
		v.form.view(th),
		joinPanes(th, v.segs, v.data, width),
	)
}
