package layers

import (
	"fmt"

	"bitbucket.org/zhengyuli/gshark/dissect"
	"bitbucket.org/zhengyuli/gshark/value"
)

// tcpHeaderSize is the minimum TCP header size.
const tcpHeaderSize = 20

// tcpFlagNames names the control-flag bits in wire order, most significant
// bit first.
var tcpFlagNames = [8]string{"CWR", "ECE", "URG", "ACK", "PSH", "RST", "SYN", "FIN"}

// DissectTCP dissects data as a TCP segment (RFC 793). The header length
// derived from the data offset is re-validated against the buffer before
// the options region is sliced; whatever follows the header is attached
// through the raw fallback.
func DissectTCP(data []byte) (value.Val, error) {
	if len(data) < tcpHeaderSize {
		return nil, &dissect.Underflow{
			Expected: tcpHeaderSize,
			Have:     len(data),
			Message:  "a TCP segment must be at least 20 B",
		}
	}

	seg := value.Object{}

	srcPort, err := dissect.Unsigned(data[0:2], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	dstPort, err := dissect.Unsigned(data[2:4], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	seq, err := dissect.Unsigned(data[4:8], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	ack, err := dissect.Unsigned(data[8:12], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	seg = append(seg,
		value.NamedVal{Name: "Source Port", Val: value.Unsigned(srcPort)},
		value.NamedVal{Name: "Destination Port", Val: value.Unsigned(dstPort)},
		value.NamedVal{Name: "Sequence Number", Val: value.Unsigned(seq)},
		value.NamedVal{Name: "Acknowledgement Number", Val: value.Unsigned(ack)})

	offset := data[12] >> 4
	seg = append(seg, value.NamedVal{Name: "Offset", Val: value.Unsigned(offset)})

	headerLength := int(offset) * 4
	if headerLength < tcpHeaderSize {
		return nil, dissect.InvalidData(
			fmt.Sprintf("TCP data offset %d words below the 5 word minimum", offset))
	}
	if headerLength > len(data) {
		return nil, &dissect.Underflow{
			Expected: headerLength,
			Have:     len(data),
			Message:  "TCP data offset greater than available data",
		}
	}

	seg = append(seg, value.NamedVal{Name: "Flags", Val: value.Flags{Raw: data[14], Names: tcpFlagNames}})

	window, err := dissect.Unsigned(data[14:16], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	urgent, err := dissect.Unsigned(data[18:20], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	seg = append(seg,
		value.NamedVal{Name: "Window", Val: value.Unsigned(window)},
		value.NamedVal{Name: "Checksum", Val: value.Bytes(data[16:18])},
		value.NamedVal{Name: "Urgent Pointer", Val: value.Unsigned(urgent)})

	if headerLength > tcpHeaderSize {
		seg = append(seg, value.NamedVal{Name: "Options", Val: value.Bytes(data[tcpHeaderSize:headerLength])})
	}

	seg = append(seg, value.NamedVal{Name: "Payload", Val: payload(dissect.Raw(data[headerLength:]))})

	return seg, nil
}
