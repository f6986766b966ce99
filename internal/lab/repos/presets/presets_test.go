package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/framelab/internal/lab/domain"
	"github.com/haukened/framelab/internal/lab/wire"
)

func TestDefaultsCoverAllProtocols(t *testing.T) {
	f := Defaults()
	assert.NotEmpty(t, f.DNS)
	assert.NotEmpty(t, f.TCP)
	assert.NotEmpty(t, f.HTTP)
}

func TestDefaultsEncodeCleanly(t *testing.T) {
	f := Defaults()
	for _, p := range f.DNS {
		q := p.Question()
		_, err := wire.EncodeQuestion(q.Name, q.Type, q.Class)
		assert.NoError(t, err, "preset %q", p.Name)
	}
	for _, p := range f.TCP {
		assert.Len(t, wire.EncodeTCPHeader(p.Header()), 20, "preset %q", p.Name)
	}
}

func TestDNSPresetHeader(t *testing.T) {
	p := Defaults().DNS[0]
	h := p.Header()
	assert.Equal(t, uint16(0x1A33), h.Field(domain.FieldID))
	assert.True(t, h.Flag(domain.FlagRD))
	assert.Equal(t, uint16(1), h.Field(domain.FieldQDCount))
}

func TestTCPPresetFlags(t *testing.T) {
	p := TCPPreset{Name: "odd", Flags: []string{"NS", "SYN", "BOGUS"}}
	h := p.Header()
	assert.True(t, h.NS)
	assert.True(t, h.SYN)
	assert.False(t, h.ACK)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), f)
}

func TestLoadMissingFileDegradesToDefaults(t *testing.T) {
	f, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.Equal(t, Defaults(), f)
}

func TestLoadTOMLFile(t *testing.T) {
	content := `
[[dns]]
name = "custom"
id = 7
rd = true
qdcount = 1
domain = "lab.test"
qtype = 16
qclass = 1

[[tcp]]
name = "RST"
source_port = 1234
dest_port = 80
flags = ["RST"]

[[http]]
name = "ping"
method = "GET"
path = "/ping"
host = "lab.test"
`
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.Len(t, f.DNS, 1)
	require.Len(t, f.TCP, 1)
	require.Len(t, f.HTTP, 1)

	assert.Equal(t, "custom", f.DNS[0].Name)
	assert.Equal(t, domain.RRTypeTXT, f.DNS[0].Question().Type)
	assert.True(t, f.TCP[0].Header().RST)
	assert.Equal(t, "/ping", f.HTTP[0].Request().Path)
}
