package hci

import (
	"fmt"
	"io"
	"time"

	"github.com/jacobsa/go-serial/serial"

	"github.com/rigado/aclmgr/linux/hci/h4"
	"github.com/rigado/aclmgr/linux/hci/socket"
)

type transportHci struct {
	id int
}

type transportH4Uart struct {
	path string
	baud uint
}

type transportH4Socket struct {
	addr    string
	timeout time.Duration
}

// Transport selects how the stack reaches the controller: a raw HCI
// device socket, an H4-framed UART, or an H4 stream over TCP.
type Transport struct {
	hci      *transportHci
	h4uart   *transportH4Uart
	h4socket *transportH4Socket
}

func TransportHci(id int) Transport {
	return Transport{hci: &transportHci{id: id}}
}

func TransportH4Uart(path string, baud uint) Transport {
	if baud == 0 {
		baud = 115200
	}
	return Transport{h4uart: &transportH4Uart{path: path, baud: baud}}
}

func TransportH4Socket(addr string, timeout time.Duration) Transport {
	return Transport{h4socket: &transportH4Socket{addr: addr, timeout: timeout}}
}

func OpenTransport(t Transport) (io.ReadWriteCloser, error) {
	switch {
	case t.hci != nil:
		return socket.NewSocket(t.hci.id)

	case t.h4uart != nil:
		so := serial.OpenOptions{
			PortName:        t.h4uart.path,
			BaudRate:        t.h4uart.baud,
			DataBits:        8,
			StopBits:        1,
			ParityMode:      serial.PARITY_NONE,
			MinimumReadSize: 0,
		}
		return h4.New(so)

	case t.h4socket != nil:
		return h4.NewSocket(t.h4socket.addr, t.h4socket.timeout)

	default:
		return nil, fmt.Errorf("no valid transport found")
	}
}
