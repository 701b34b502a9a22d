package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type properties struct {
	Input struct {
		// Network device to sniff; ignored when PcapFile is set.
		NetDev string `toml:"netDev"`
		// Capture file to read instead of a live device.
		PcapFile string `toml:"pcapFile"`
		// BPF filter applied to the capture handle.
		Filter string `toml:"filter"`
	} `toml:"input"`

	Log struct {
		Dir   string `toml:"dir"`
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`

	Export struct {
		Enabled  bool   `toml:"enabled"`
		Endpoint string `toml:"endpoint"`
	} `toml:"export"`
}

var globalProperties properties

func defaultProperties() properties {
	var p properties

	p.Input.NetDev = "lo0"
	p.Input.Filter = "tcp"
	p.Log.Dir = "/var/log"
	p.Log.File = "gshark"
	p.Log.Level = "debug"
	p.Export.Endpoint = "tcp://localhost:5556"

	return p
}

func initProperties(configFile string) error {
	globalProperties = defaultProperties()

	if configFile == "" {
		return nil
	}

	if _, err := toml.DecodeFile(configFile, &globalProperties); err != nil {
		return fmt.Errorf("read config file %s: %w", configFile, err)
	}

	return nil
}

func (p properties) logLevel() log.Level {
	level, err := log.ParseLevel(p.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return level
}
