package layers

import (
	"fmt"
	"net"

	"bitbucket.org/zhengyuli/gshark/dissect"
	"bitbucket.org/zhengyuli/gshark/value"
)

const (
	// ethernetHeaderSize is the fixed Ethernet frame header size.
	ethernetHeaderSize = 14
	// maxEthernetLength is the highest type/length field value that still
	// denotes a payload length (IEEE 802.3).
	maxEthernetLength = 1500
)

// DissectEthernet dissects data as an Ethernet (IEEE 802.3) frame.
//
// A type/length field of at most 1500 marks a length frame whose remainder
// is kept raw. A recognized type code hands the remainder to the matching
// dissector; an unrecognized one becomes an "Unknown" child carrying an
// InvalidData outcome while the address fields stay intact.
func DissectEthernet(data []byte) (value.Val, error) {
	if len(data) < ethernetHeaderSize {
		return nil, &dissect.Underflow{
			Expected: ethernetHeaderSize,
			Have:     len(data),
			Message:  "an Ethernet frame must be at least 14 B",
		}
	}

	dst := data[0:6]
	src := data[6:12]
	tlen, err := dissect.Unsigned(data[12:14], dissect.BigEndian)
	if err != nil {
		return nil, err
	}
	remainder := data[ethernetHeaderSize:]

	frame := value.Object{
		{Name: "Destination", Val: value.Address{Bytes: dst, Encoded: net.HardwareAddr(dst).String()}},
		{Name: "Source", Val: value.Address{Bytes: src, Encoded: net.HardwareAddr(src).String()}},
	}

	if tlen <= maxEthernetLength {
		frame = append(frame,
			value.NamedVal{Name: "Length", Val: value.Unsigned(tlen)},
			value.NamedVal{Name: "Payload", Val: payload(dissect.Raw(remainder))})
		return frame, nil
	}

	if next, ok := ethernetTypes[EthernetType(tlen)]; ok {
		frame = append(frame, value.NamedVal{Name: next.Name, Val: payload(next.Dissect(remainder))})
	} else {
		frame = append(frame, value.NamedVal{
			Name: "Unknown",
			Val:  value.Payload{Err: dissect.InvalidData(fmt.Sprintf("unrecognized ethernet type 0x%04x", tlen))},
		})
	}

	return frame, nil
}
