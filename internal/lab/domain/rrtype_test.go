package domain

import "testing"

func TestRRTypeStringAndParse(t *testing.T) {
	tests := []struct {
		rrtype RRType
		want   string
	}{
		{RRTypeA, "A"},
		{RRTypeNS, "NS"},
		{RRTypeCNAME, "CNAME"},
		{RRTypeSOA, "SOA"},
		{RRTypePTR, "PTR"},
		{RRTypeMX, "MX"},
		{RRTypeTXT, "TXT"},
		{RRTypeAAAA, "AAAA"},
		{RRTypeSRV, "SRV"},
		{RRTypeANY, "ANY"},
	}
	for _, tt := range tests {
		if got := tt.rrtype.String(); got != tt.want {
			t.Errorf("RRType(%d).String() = %q, want %q", tt.rrtype, got, tt.want)
		}
		if got := ParseRRType(tt.want); got != tt.rrtype {
			t.Errorf("ParseRRType(%q) = %d, want %d", tt.want, got, tt.rrtype)
		}
		if !tt.rrtype.IsValid() {
			t.Errorf("RRType(%d) should be valid", tt.rrtype)
		}
	}
}

func TestRRTypeUnknown(t *testing.T) {
	if got := RRType(9999).String(); got != "TYPE9999" {
		t.Errorf("unknown type string = %q, want TYPE9999", got)
	}
	if RRType(9999).IsValid() {
		t.Error("RRType(9999) should not be valid")
	}
	if got := ParseRRType("NOPE"); got != 0 {
		t.Errorf("ParseRRType(NOPE) = %d, want 0", got)
	}
}
