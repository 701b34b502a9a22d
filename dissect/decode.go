package dissect

import (
	"encoding/binary"
	"fmt"
)

// Endianness selects the byte order for field decoding.
type Endianness int

const (
	// BigEndian is network byte order.
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) order() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Unsigned decodes buf as an unsigned integer widened to 64 bits. The
// window must be exactly 1, 2, 4 or 8 bytes; any other length is
// InvalidData. The caller slices the window, Unsigned never truncates.
func Unsigned(buf []byte, endianness Endianness) (uint64, error) {
	switch len(buf) {
	case 1:
		return uint64(buf[0]), nil

	case 2:
		return uint64(endianness.order().Uint16(buf)), nil

	case 4:
		return uint64(endianness.order().Uint32(buf)), nil

	case 8:
		return endianness.order().Uint64(buf), nil

	default:
		return 0, InvalidData(fmt.Sprintf("invalid integer size: %d B", len(buf)))
	}
}

// Signed decodes buf as a signed integer, sign-extended to 64 bits. The
// window rules match Unsigned.
func Signed(buf []byte, endianness Endianness) (int64, error) {
	switch len(buf) {
	case 1:
		return int64(int8(buf[0])), nil

	case 2:
		return int64(int16(endianness.order().Uint16(buf))), nil

	case 4:
		return int64(int32(endianness.order().Uint32(buf))), nil

	case 8:
		return int64(endianness.order().Uint64(buf)), nil

	default:
		return 0, InvalidData(fmt.Sprintf("invalid integer size: %d B", len(buf)))
	}
}
