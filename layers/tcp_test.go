package layers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"bitbucket.org/zhengyuli/gshark/dissect"
	"bitbucket.org/zhengyuli/gshark/value"
)

// The TCP segment of ipPacket: a SYN-ACK from port 443 with 20 B of options.
var tcpSegment = []byte{
	1, 187, 252, 235, 74, 97, 130, 175, 50, 220, 74, 238, 0xa0, 18, 56, 144, 237, 13, 0, 0,
	2, 4, 5, 180, 4, 2, 8, 10, 15, 68, 221, 156, 29, 26, 35, 62, 1, 3, 3, 6,
}

func TestDissectTCP(t *testing.T) {
	seg, err := DissectTCP(tcpSegment)
	if err != nil {
		t.Fatalf("Dissect error: %s.", err)
	}

	unsignedField := func(name string, want uint64) {
		v, err := value.Get(seg, name)
		if err != nil {
			t.Fatalf("Get %s error: %s.", name, err)
		}
		if n, ok := value.AsUnsigned(v); !ok || n != want {
			t.Errorf("%s: got %s, want %d.", name, v, want)
		}
	}

	unsignedField("Source Port", 443)
	unsignedField("Destination Port", 64747)
	unsignedField("Sequence Number", 1247904431)
	unsignedField("Acknowledgement Number", 853297902)
	unsignedField("Offset", 10)
	unsignedField("Window", 14480)
	unsignedField("Urgent Pointer", 0)

	options, err := value.Get(seg, "Options")
	if err != nil {
		t.Fatalf("Get Options error: %s.", err)
	}
	if b, _ := value.AsBytes(options); !bytes.Equal(b, tcpSegment[20:40]) {
		t.Errorf("Options: got %s.", options)
	}

	raw, err := value.GetPath(seg, "Payload", "raw data")
	if err != nil {
		t.Fatalf("Get Payload raw data error: %s.", err)
	}
	if b, _ := value.AsBytes(raw); len(b) != 0 {
		t.Errorf("Payload after a full-header segment: got %s.", raw)
	}
}

func TestDissectTCPPortLookup(t *testing.T) {
	seg, err := DissectTCP(tcpSegment)
	if err != nil {
		t.Fatalf("Dissect error: %s.", err)
	}

	port, ok := value.Lookup(seg, "Destination Port")
	if !ok {
		t.Fatal("Lookup Destination Port should succeed.")
	}
	if n, _ := value.AsUnsigned(port); n != 64747 {
		t.Errorf("Destination Port: got %s.", port)
	}
}

func TestDissectTCPFlags(t *testing.T) {
	seg, err := DissectTCP(tcpSegment)
	if err != nil {
		t.Fatalf("Dissect error: %s.", err)
	}

	v, err := value.Get(seg, "Flags")
	if err != nil {
		t.Fatalf("Get Flags error: %s.", err)
	}
	flags, ok := value.AsFlags(v)
	if !ok {
		t.Fatalf("Flags: got %s.", v)
	}

	// Byte 14 of this segment is 0x38.
	for name, want := range map[string]bool{
		"CWR": false, "ECE": false, "URG": true, "ACK": true,
		"PSH": true, "RST": false, "SYN": false, "FIN": false,
	} {
		set, ok := flags.Named(name)
		if !ok {
			t.Fatalf("Flag %s should be assigned.", name)
		}
		if set != want {
			t.Errorf("Flag %s: got %t, want %t.", name, set, want)
		}
	}
}

func TestDissectTCPUnderflow(t *testing.T) {
	for length := 0; length < 20; length++ {
		_, err := DissectTCP(make([]byte, length))

		var underflow *dissect.Underflow
		if !errors.As(err, &underflow) {
			t.Fatalf("Length %d: expected Underflow, got %v.", length, err)
		}
		if underflow.Expected != 20 || underflow.Have != length {
			t.Errorf("Length %d: got expected=%d, have=%d.", length, underflow.Expected, underflow.Have)
		}
	}
}

func TestDissectTCPOffsetOverflow(t *testing.T) {
	data := make([]byte, 20)
	data[12] = 0xf0 // offset 15: 60 B header in a 20 B buffer

	_, err := DissectTCP(data)

	var underflow *dissect.Underflow
	if !errors.As(err, &underflow) {
		t.Fatalf("Expected Underflow, got: %v.", err)
	}
	if underflow.Expected != 60 || underflow.Have != 20 {
		t.Errorf("Got expected=%d, have=%d.", underflow.Expected, underflow.Have)
	}
}

func TestDissectTCPOffsetTooSmall(t *testing.T) {
	data := make([]byte, 20)
	data[12] = 0x40 // offset 4: below the 5 word minimum

	_, err := DissectTCP(data)

	var invalid dissect.InvalidData
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected InvalidData, got: %v.", err)
	}
	if !strings.Contains(err.Error(), "4 words") {
		t.Errorf("Offset error should name the offset: %q.", err.Error())
	}
}

func BenchmarkDissectTCP(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := DissectTCP(tcpSegment); err != nil {
			b.Fatalf("Dissect error: %s.", err)
		}
	}
}
