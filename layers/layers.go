// Package layers implements protocol dissectors for Ethernet, IPv4 and TCP
// frames, chained through explicit dispatch tables.
//
// Every dissector validates each byte range against the remaining buffer
// length before reading it, so adversarial or truncated input surfaces as a
// typed error value instead of a crash. A failure inside a nested layer is
// embedded as that layer's payload outcome and never aborts the layers
// above it.
package layers

import (
	"bitbucket.org/zhengyuli/gshark/dissect"
	"bitbucket.org/zhengyuli/gshark/value"
)

// EthernetType is the Ethernet type/length field value.
type EthernetType uint16

const (
	EthernetTypeIPv4      EthernetType = 0x0800
	EthernetTypeARP       EthernetType = 0x0806
	EthernetTypeIPX       EthernetType = 0x8137
	EthernetTypeIPXNovell EthernetType = 0x8138
	EthernetTypeIPv6      EthernetType = 0x86DD
)

// IPv4Protocol is the IPv4 protocol number.
type IPv4Protocol uint8

const (
	IPv4ProtocolTCP IPv4Protocol = 0x06
)

// NextLayer pairs a display label with the dissector handling that layer.
type NextLayer struct {
	Name    string
	Dissect dissect.Dissector
}

// ethernetTypes maps an Ethernet type code to its next layer. Protocols
// without a dedicated layout fall back to the raw dissector. New protocols
// are added here, not inside DissectEthernet.
var ethernetTypes = map[EthernetType]NextLayer{
	EthernetTypeIPv4:      {Name: "IP", Dissect: DissectIPv4},
	EthernetTypeARP:       {Name: "ARP", Dissect: dissect.Raw},
	EthernetTypeIPX:       {Name: "IPX", Dissect: dissect.Raw},
	EthernetTypeIPXNovell: {Name: "IPX", Dissect: dissect.Raw},
	EthernetTypeIPv6:      {Name: "IPv6", Dissect: dissect.Raw},
}

// ipv4Protocols maps an IPv4 protocol number to its next layer.
var ipv4Protocols = map[IPv4Protocol]NextLayer{
	IPv4ProtocolTCP: {Name: "TCP", Dissect: DissectTCP},
}

// payload wraps a dissection outcome as a Payload node.
func payload(v value.Val, err error) value.Val {
	return value.Payload{Val: v, Err: err}
}
