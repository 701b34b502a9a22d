package main

import (
	"fmt"

	pcap "github.com/akrennmair/gopcap"
)

// Pcap configs
const (
	pcapMaxCaptureLength = 65535
	pcapCaptureTimeout   = 500
	pcapCaptureInPromisc = true
)

func openNetDev(p properties) (*pcap.Pcap, error) {
	var pcapDesc *pcap.Pcap
	var err error

	if p.Input.PcapFile != "" {
		pcapDesc, err = pcap.Openoffline(p.Input.PcapFile)
		if err != nil {
			return nil, fmt.Errorf("open capture file %s: %w", p.Input.PcapFile, err)
		}
	} else {
		pcapDesc, err = pcap.Openlive(p.Input.NetDev, pcapMaxCaptureLength,
			pcapCaptureInPromisc, pcapCaptureTimeout)
		if err != nil {
			return nil, fmt.Errorf("open device %s: %w", p.Input.NetDev, err)
		}
	}

	if p.Input.Filter != "" {
		if err = pcapDesc.Setfilter(p.Input.Filter); err != nil {
			pcapDesc.Close()
			return nil, fmt.Errorf("set filter %q: %w", p.Input.Filter, err)
		}
	}

	return pcapDesc, nil
}
