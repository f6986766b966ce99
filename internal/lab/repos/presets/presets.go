// Package presets supplies named starting points for each view: classic
// packets like a SYN or an MX query that the user can load and then
// mutate. A TOML file can replace the built-in set wholesale; a missing
// or unreadable file degrades to the defaults and never blocks startup.
package presets

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/haukened/framelab/internal/lab/domain"
)

// File is the decoded preset catalog.
type File struct {
	DNS  []DNSPreset  `toml:"dns"`
	TCP  []TCPPreset  `toml:"tcp"`
	HTTP []HTTPPreset `toml:"http"`
}

// DNSPreset seeds the DNS view.
type DNSPreset struct {
	Name    string `toml:"name"`
	ID      int    `toml:"id"`
	RD      bool   `toml:"rd"`
	QDCount int    `toml:"qdcount"`
	Domain  string `toml:"domain"`
	QType   uint16 `toml:"qtype"`
	QClass  uint16 `toml:"qclass"`
}

// Header builds the preset's header state.
func (p DNSPreset) Header() domain.DNSHeader {
	var h domain.DNSHeader
	h.SetField(domain.FieldID, p.ID)
	h.SetField(domain.FieldQDCount, p.QDCount)
	h.SetFlag(domain.FlagRD, p.RD)
	return h
}

// Question builds the preset's question inputs.
func (p DNSPreset) Question() domain.Question {
	return domain.Question{
		Name:  p.Domain,
		Type:  domain.RRType(p.QType),
		Class: domain.RRClass(p.QClass),
	}
}

// TCPPreset seeds the TCP view. Flags holds flag names (NS, CWR, ECE,
// URG, ACK, PSH, RST, SYN, FIN); unknown names are ignored.
type TCPPreset struct {
	Name       string   `toml:"name"`
	SourcePort uint64   `toml:"source_port"`
	DestPort   uint64   `toml:"dest_port"`
	Seq        uint64   `toml:"seq"`
	Ack        uint64   `toml:"ack"`
	Window     uint64   `toml:"window"`
	Flags      []string `toml:"flags"`
}

// Header builds the preset's header state.
func (p TCPPreset) Header() domain.TCPHeader {
	h := domain.TCPHeader{
		SourcePort: p.SourcePort,
		DestPort:   p.DestPort,
		Seq:        p.Seq,
		Ack:        p.Ack,
		Window:     p.Window,
	}
	for _, name := range p.Flags {
		if name == "NS" {
			h.NS = true
			continue
		}
		for _, f := range domain.TCPFlags {
			if f.String() == name {
				h.SetFlag(f, true)
			}
		}
	}
	return h
}

// HTTPPreset seeds the HTTP view.
type HTTPPreset struct {
	Name        string `toml:"name"`
	Method      string `toml:"method"`
	Path        string `toml:"path"`
	Host        string `toml:"host"`
	ExtraHeader string `toml:"extra_header"`
	Body        string `toml:"body"`
}

// Request builds the preset's request inputs.
func (p HTTPPreset) Request() domain.HTTPRequest {
	return domain.HTTPRequest{
		Method:      p.Method,
		Path:        p.Path,
		Host:        p.Host,
		ExtraHeader: p.ExtraHeader,
		Body:        p.Body,
	}
}

// Defaults returns the built-in preset catalog.
func Defaults() File {
	return File{
		DNS: []DNSPreset{
			{Name: "A query", ID: 0x1A33, RD: true, QDCount: 1, Domain: "www.example.com", QType: uint16(domain.RRTypeA), QClass: uint16(domain.RRClassIN)},
			{Name: "MX query", ID: 0x0002, RD: true, QDCount: 1, Domain: "example.com", QType: uint16(domain.RRTypeMX), QClass: uint16(domain.RRClassIN)},
			{Name: "Root ANY", ID: 0x0003, QDCount: 1, Domain: "", QType: uint16(domain.RRTypeANY), QClass: uint16(domain.RRClassIN)},
		},
		TCP: []TCPPreset{
			{Name: "SYN", SourcePort: 49152, DestPort: 80, Seq: 1, Window: 65535, Flags: []string{"SYN"}},
			{Name: "SYN-ACK", SourcePort: 80, DestPort: 49152, Seq: 100, Ack: 2, Window: 65535, Flags: []string{"SYN", "ACK"}},
			{Name: "FIN-ACK", SourcePort: 49152, DestPort: 80, Seq: 2, Ack: 101, Window: 65535, Flags: []string{"FIN", "ACK"}},
		},
		HTTP: []HTTPPreset{
			{Name: "GET root", Method: "GET", Path: "/", Host: "example.com"},
			{Name: "POST form", Method: "POST", Path: "/submit", Host: "example.com", ExtraHeader: "Content-Type: application/x-www-form-urlencoded", Body: "a=1&b=2"},
		},
	}
}

// Load reads a preset catalog from path. An empty path returns the
// defaults. On any read or decode failure the defaults are returned
// together with the error so the caller can log and continue.
func Load(path string) (File, error) {
	if path == "" {
		return Defaults(), nil
	}
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Defaults(), fmt.Errorf("loading presets from %s: %w", path, err)
	}
	return f, nil
}
