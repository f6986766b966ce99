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

// dnsView edits a DNS header plus question and shows the encoded
// message. The header is retained across edits so the unnamed FLAGS
// bits (Opcode, Z, RCODE) survive flag toggles bit-for-bit.
type dnsView struct {
	form    form
	header  domain.DNSHeader
	presets []presets.DNSPreset
	preset  int

	data   []byte
	segs   []render.Segment
	errMsg string
	hint   string
}

func newDNSView(catalog []presets.DNSPreset) *dnsView {
	v := &dnsView{presets: catalog, preset: -1}
	v.form = newForm(
		newTextField("ID", "0", 12),
		newTextField("QDCOUNT", "0", 12),
		newTextField("ANCOUNT", "0", 12),
		newTextField("NSCOUNT", "0", 12),
		newTextField("ARCOUNT", "0", 12),
		newFlagField("QR", false),
		newFlagField("AA", false),
		newFlagField("TC", false),
		newFlagField("RD", false),
		newFlagField("RA", false),
		newTextField("Domain", "www.example.com", 40),
		newTextField("QTYPE", "1", 12),
		newTextField("QCLASS", "1", 12),
	)
	v.recompute()
	return v
}

func (v *dnsView) title() string    { return "DNS" }
func (v *dnsView) protocol() string { return "dns" }
func (v *dnsView) bytes() []byte    { return v.data }

func (v *dnsView) snapshotLabel() string {
	return fmt.Sprintf("dns %s", v.form.value("Domain"))
}

func (v *dnsView) update(msg tea.KeyMsg) tea.Cmd {
	cmd := v.form.update(msg)
	v.recompute()
	return cmd
}

// cyclePreset loads the next preset into the inputs, replacing the
// retained header wholesale.
func (v *dnsView) cyclePreset() {
	if len(v.presets) == 0 {
		return
	}
	v.preset = (v.preset + 1) % len(v.presets)
	p := v.presets[v.preset]

	v.header = p.Header()
	v.form.setValue("ID", fmt.Sprintf("%d", v.header.Field(domain.FieldID)))
	v.form.setValue("QDCOUNT", fmt.Sprintf("%d", v.header.Field(domain.FieldQDCount)))
	v.form.setValue("ANCOUNT", fmt.Sprintf("%d", v.header.Field(domain.FieldANCount)))
	v.form.setValue("NSCOUNT", fmt.Sprintf("%d", v.header.Field(domain.FieldNSCount)))
	v.form.setValue("ARCOUNT", fmt.Sprintf("%d", v.header.Field(domain.FieldARCount)))
	for _, f := range domain.HeaderFlags {
		v.form.setFlag(f.String(), v.header.Flag(f))
	}
	q := p.Question()
	v.form.setValue("Domain", q.Name)
	v.form.setValue("QTYPE", fmt.Sprintf("%d", uint16(q.Type)))
	v.form.setValue("QCLASS", fmt.Sprintf("%d", uint16(q.Class)))

	v.recompute()
}

func (v *dnsView) presetName() string {
	if v.preset < 0 || v.preset >= len(v.presets) {
		return ""
	}
	return v.presets[v.preset].Name
}

// recompute re-encodes the message from the current inputs. It runs on
// every keystroke; identical inputs always yield identical bytes.
func (v *dnsView) recompute() {
	v.header.SetField(domain.FieldID, utils.CoerceInt(v.form.value("ID")))
	v.header.SetField(domain.FieldQDCount, utils.CoerceInt(v.form.value("QDCOUNT")))
	v.header.SetField(domain.FieldANCount, utils.CoerceInt(v.form.value("ANCOUNT")))
	v.header.SetField(domain.FieldNSCount, utils.CoerceInt(v.form.value("NSCOUNT")))
	v.header.SetField(domain.FieldARCount, utils.CoerceInt(v.form.value("ARCOUNT")))
	for _, f := range domain.HeaderFlags {
		v.header.SetFlag(f, v.form.flag(f.String()))
	}

	name := v.form.value("Domain")
	qtype := domain.RRType(utils.CoerceInt(v.form.value("QTYPE")))
	qclass := domain.RRClass(utils.CoerceInt(v.form.value("QCLASS")))

	segName := name
	question, err := wire.EncodeQuestion(name, qtype, qclass)
	if err != nil {
		// Recover locally: render the root fallback and keep going.
		v.errMsg = err.Error()
		question = wire.RootQuestion(qtype, qclass)
		segName = ""
	} else {
		v.errMsg = ""
	}

	v.hint = ""
	if !utils.IsASCII(name) {
		v.hint = "IDNA form: " + utils.ASCIIForm(name)
	}

	v.data = wire.EncodeMessage(wire.EncodeHeader(v.header), question)
	v.segs = render.MessageSegments(segName)
}

func (v *dnsView) view(th Theme, width int) string {
	sections := []string{
		th.Label.Render(fmt.Sprintf("question: %s %s %s",
			v.form.value("Domain"),
			domain.RRClass(utils.CoerceInt(v.form.value("QCLASS"))),
			domain.RRType(utils.CoerceInt(v.form.value("QTYPE"))))),
		v.form.view(th),
	}
	if v.errMsg != "" {
		sections = append(sections, th.Error.Render("! "+v.errMsg+" (showing root fallback)"))
	}
	if v.hint != "" {
		sections = append(sections, th.Hint.Render(v.hint))
	}
	sections = append(sections, joinPanes(th, v.segs, v.data, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
