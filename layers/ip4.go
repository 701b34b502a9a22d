package layers

import (
	"fmt"
	"net"

	"bitbucket.org/zhengyuli/gshark/dissect"
	"bitbucket.org/zhengyuli/gshark/value"
)

// ipv4HeaderSize is the minimum IPv4 header size.
const ipv4HeaderSize = 20

// DissectIPv4 dissects data as an IPv4 packet (RFC 791).
//
// The header length derived from IHL is re-validated against the buffer
// before the options region is sliced. Identification is reported as the
// single byte at offset 8; the wire field is the 16 bits at [4:6).
func DissectIPv4(data []byte) (value.Val, error) {
	if len(data) < ipv4HeaderSize {
		return nil, &dissect.Underflow{
			Expected: ipv4HeaderSize,
			Have:     len(data),
			Message:  "an IPv4 packet must be at least 20 B",
		}
	}

	pkt := value.Object{
		{Name: "Version", Val: value.Unsigned(data[0] >> 4)},
	}

	ihl := data[0] & 0x0f
	pkt = append(pkt, value.NamedVal{Name: "IHL", Val: value.Unsigned(ihl)})

	headerLength := int(ihl) * 4
	if headerLength < ipv4HeaderSize {
		return nil, dissect.InvalidData(
			fmt.Sprintf("IPv4 header length %d B below the 20 B minimum", headerLength))
	}
	if headerLength > len(data) {
		return nil, &dissect.Underflow{
			Expected: headerLength,
			Have:     len(data),
			Message:  "IPv4 header length greater than available data",
		}
	}

	pkt = append(pkt,
		value.NamedVal{Name: "DSCP", Val: value.Unsigned(data[1] >> 2)},
		value.NamedVal{Name: "ECN", Val: value.Unsigned(data[1] & 0x03)})

	length, err := dissect.Unsigned(data[2:4], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	pkt = append(pkt,
		value.NamedVal{Name: "Length", Val: value.Unsigned(length)},
		value.NamedVal{Name: "Identification", Val: value.Unsigned(data[8])})

	protocol := data[9]
	pkt = append(pkt,
		value.NamedVal{Name: "Protocol", Val: value.Unsigned(protocol)},
		value.NamedVal{Name: "Checksum", Val: value.Bytes(data[10:12])})

	src := data[12:16]
	dst := data[16:20]
	pkt = append(pkt,
		value.NamedVal{Name: "Source", Val: value.Address{Bytes: src, Encoded: net.IP(src).String()}},
		value.NamedVal{Name: "Destination", Val: value.Address{Bytes: dst, Encoded: net.IP(dst).String()}})

	if headerLength > ipv4HeaderSize {
		pkt = append(pkt, value.NamedVal{Name: "Options", Val: value.Bytes(data[ipv4HeaderSize:headerLength])})
	}

	remainder := data[headerLength:]
	if next, ok := ipv4Protocols[IPv4Protocol(protocol)]; ok {
		pkt = append(pkt, value.NamedVal{Name: next.Name, Val: payload(next.Dissect(remainder))})
	} else {
		pkt = append(pkt, value.NamedVal{Name: "Unknown", Val: payload(dissect.Raw(remainder))})
	}

	return pkt, nil
}
