package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
)

// maxDatagramSize is generous headroom over the largest Z/IP frame this
// library encodes or expects to decode.
const maxDatagramSize = 1500

// UDPConfig is the subset of the coordinator's configuration the default
// transport needs to open a socket.
type UDPConfig struct {
	GatewayIP   net.IP
	GatewayPort uint16
	LocalPort   uint16
}

// UDP is the default Transport: a UDP socket bound to LocalPort, sending
// to (GatewayIP, GatewayPort) and pumping inbound datagrams onto a channel
// from a single reader goroutine. Grounded on the teacher's
// net.Dial("udp", ...) + SetReadDeadline loop (pkgs/commandstation/z21.go),
// refactored from a blocking request/response call into a channel-fed
// background reader so the runner can multiplex sends/timeouts itself.
type UDP struct {
	conn      *net.UDPConn
	inbound   chan []byte
	closeOnce sync.Once
	closeErr  error
	done      chan struct{}
}

// Open binds a UDP socket on cfg.LocalPort and connects it to the
// gateway's (GatewayIP, GatewayPort), then starts the background reader.
func Open(cfg UDPConfig) (*UDP, error) {
	localAddr := &net.UDPAddr{Port: int(cfg.LocalPort)}
	remoteAddr := &net.UDPAddr{IP: cfg.GatewayIP, Port: int(cfg.GatewayPort)}

	conn, err := net.DialUDP("udp", localAddr, remoteAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: UDP dial error while connecting to Z/IP gateway: %w", err)
	}

	u := &UDP{
		conn:    conn,
		inbound: make(chan []byte, 32),
		done:    make(chan struct{}),
	}
	go u.readLoop()
	return u, nil
}

func (u *UDP) readLoop() {
	defer close(u.inbound)
	buf := make([]byte, maxDatagramSize)
	for {
		n, err := u.conn.Read(buf)
		if err != nil {
			select {
			case <-u.done:
				return
			default:
			}
			logrus.Debugf("transport: UDP read error: %s", err)
			u.closeErr = fmt.Errorf("transport: %w", err)
			return
		}
		datagram := make([]byte, n)
		copy(datagram, buf[:n])
		select {
		case u.inbound <- datagram:
		case <-u.done:
			return
		}
	}
}

func (u *UDP) Send(ctx context.Context, b []byte) error {
	logrus.Debugf("transport: send % X", b)
	if _, err := u.conn.Write(b); err != nil {
		return fmt.Errorf("transport: write error: %w", err)
	}
	return nil
}

func (u *UDP) Inbound() <-chan []byte { return u.inbound }

func (u *UDP) Err() error { return u.closeErr }

func (u *UDP) Close() error {
	var err error
	u.closeOnce.Do(func() {
		close(u.done)
		err = u.conn.Close()
	})
	return err
}
