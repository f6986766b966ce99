package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/haukened/framelab/internal/lab/render"
	"github.com/haukened/framelab/internal/lab/repos/presets"
	"github.com/haukened/framelab/internal/lab/wire"
)

// httpView edits an HTTP/1.1 request line, headers and body. The extra
// header line is inserted verbatim; nothing validates it.
type httpView struct {
	form    form
	presets []presets.HTTPPreset
	preset  int

	data []byte
	segs []render.Segment
}

func newHTTPView(catalog []presets.HTTPPreset) *httpView {
	v := &httpView{presets: catalog, preset: -1}
	v.form = newForm(
		newTextField("Method", "GET", 12),
		newTextField("Path", "/", 40),
		newTextField("Host", "example.com", 40),
		newTextField("Extra header", "", 48),
		newTextField("Body", "", 48),
	)
	v.recompute()
	return v
}

func (v *httpView) title() string    { return "HTTP" }
func (v *httpView) protocol() string { return "http" }
func (v *httpView) bytes() []byte    { return v.data }

func (v *httpView) snapshotLabel() string {
	return fmt.Sprintf("http %s %s", v.form.value("Method"), v.form.value("Path"))
}

func (v *httpView) update(msg tea.KeyMsg) tea.Cmd {
	cmd := v.form.update(msg)
	v.recompute()
	return cmd
}

func (v *httpView) cyclePreset() {
	if len(v.presets) == 0 {
		return
	}
	v.preset = (v.preset + 1) % len(v.presets)
	r := v.presets[v.preset].Request()

	v.form.setValue("Method", r.Method)
	v.form.setValue("Path", r.Path)
	v.form.setValue("Host", r.Host)
	v.form.setValue("Extra header", r.ExtraHeader)
	v.form.setValue("Body", r.Body)

	v.recompute()
}

func (v *httpView) presetName() string {
	if v.preset < 0 || v.preset >= len(v.presets) {
		return ""
	}
	return v.presets[v.preset].Name
}

func (v *httpView) state() domain.HTTPRequest {
	return domain.HTTPRequest{
		Method:      v.form.value("Method"),
		Path:        v.form.value("Path"),
		Host:        v.form.value("Host"),
		ExtraHeader: v.form.value("Extra header"),
		Body:        v.form.value("Body"),
	}
}

func (v *httpView) recompute() {
	r := v.state()
	v.data = wire.RequestBytes(r)
	v.segs = render.HTTPSegments(r)
}

func (v *httpView) view(th Theme, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		th.Label.Render(fmt.Sprintf("request text (%d bytes); token lengths measured in encoded bytes", len(v.data))),
		v.form.view(th),
		joinPanes(th, v.segs, v.data, width),
	)
}
