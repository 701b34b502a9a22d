package main

import (
	zmq "github.com/alecthomas/gozmq"
)

// zmqHub ships rendered dissection records to an external reporting
// consumer over a PUSH socket.
type zmqHub struct {
	zmqCtxt  *zmq.Context
	sendSock *zmq.Socket
}

func newZmqHub(endpoint string) (*zmqHub, error) {
	zmqCtxt, err := zmq.NewContext()
	if err != nil {
		return nil, err
	}

	sendSock, err := zmqCtxt.NewSocket(zmq.PUSH)
	if err != nil {
		zmqCtxt.Close()
		return nil, err
	}

	if err = sendSock.Connect(endpoint); err != nil {
		sendSock.Close()
		zmqCtxt.Close()
		return nil, err
	}

	return &zmqHub{zmqCtxt: zmqCtxt, sendSock: sendSock}, nil
}

func (h *zmqHub) send(record []byte) error {
	return h.sendSock.Send(record, 0)
}

func (h *zmqHub) close() {
	h.sendSock.Close()
	h.zmqCtxt.Close()
}
