package main

import (
	"flag"
	"os"
	"os/signal"
	"path"
	"sync/atomic"
	"syscall"

	"bitbucket.org/zhengyuli/gshark/layers"
	"bitbucket.org/zhengyuli/gshark/value"
	pcap "github.com/akrennmair/gopcap"
	log "github.com/sirupsen/logrus"
)

type RunState uint32

func (rs *RunState) stop() {
	atomic.StoreUint32((*uint32)(rs), 1)
}

func (rs *RunState) stopped() bool {
	return atomic.LoadUint32((*uint32)(rs)) > 0
}

var runState RunState

func setupDefaultLogger(logDir string, logFile string, logLevel log.Level) (*os.File, error) {
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, err
	}

	if path.Ext(logFile) != ".log" {
		logFile = logFile + ".log"
	}
	logFilePath := path.Join(logDir, logFile)
	out, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(out)

	log.SetFormatter(
		&log.TextFormatter{
			FullTimestamp:  true,
			DisableColors:  true,
			DisableSorting: true})
	log.SetLevel(logLevel)

	return out, nil
}

func captureService(handle *pcap.Pcap, hub *zmqHub, state *RunState) {
	defer func() {
		err := recover()
		if err != nil {
			log.Errorf("CaptureService run with error: %s.", err)
			state.stop()
		} else {
			log.Info("CaptureService exit normally... .. .")
		}
	}()

	for !state.stopped() {
		pkt, result := handle.NextEx()
		if result < 0 {
			// End of an offline capture or a read error.
			state.stop()
			break
		}
		if result == 0 || pkt == nil {
			continue
		}

		// Filter out incomplete network packet
		if pkt.Caplen != pkt.Len {
			log.Warn("Incomplete packet.")
			continue
		}

		frame, err := layers.DissectEthernet(pkt.Data)
		if err != nil {
			log.Errorf("Dissect Ethernet frame error: %s.", err)
			continue
		}

		rendered := value.Pretty(frame, 0)
		log.Debugf("Packet at %s:%s", pkt.Time, rendered)

		if hub != nil {
			if err = hub.send([]byte(rendered)); err != nil {
				log.Errorf("Export dissection record error: %s.", err)
			}
		}
	}
}

func main() {
	configFile := flag.String("config", "", "config file path")
	flag.Parse()

	if err := initProperties(*configFile); err != nil {
		log.Fatalf("Init properties with error: %s.", err)
	}

	out, err := setupDefaultLogger(
		globalProperties.Log.Dir, globalProperties.Log.File, globalProperties.logLevel())
	if err != nil {
		log.Fatalf("Setup default logger with error: %s.", err)
	}
	defer out.Close()

	handle, err := openNetDev(globalProperties)
	if err != nil {
		log.Fatalf("Open capture handle with error: %s.", err)
	}
	defer handle.Close()

	var hub *zmqHub
	if globalProperties.Export.Enabled {
		hub, err = newZmqHub(globalProperties.Export.Endpoint)
		if err != nil {
			log.Fatalf("Init zmq hub with error: %s.", err)
		}
		defer hub.close()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		captureService(handle, hub, &runState)
		close(done)
	}()

	select {
	case <-sigChan:
		runState.stop()
		<-done

	case <-done:
	}

	if stats, err := handle.Getstats(); err == nil {
		log.Infof("Capture stats: %d received, %d dropped.",
			stats.PacketsReceived, stats.PacketsDropped)
	}
}
