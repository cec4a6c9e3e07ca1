package network

import (
	"errors"
	"net"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
)

// Tcp serves the line based client over raw tcp.
type Tcp struct {
	addr string
}

func NewTcpServer(addr string) Tcp {
	return Tcp{addr: addr}
}

func (t Tcp) Serve() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	log.Infof("Tcp server listening on %s\n", listener.Addr())
	return serve(listener)
}

// serve accepts players until listener is closed. Every connection runs in
// its own goroutine; a failed accept only drops that connection.
func serve(listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if errors.Is(err, net.ErrClosed) {
			return nil
		}
		if err != nil {
			log.Errorf("tcp accept: %v\n", err)
			continue
		}
		async.Async(func() {
			ip := conn.RemoteAddr().String()
			if err := handle(protocol.NewTcpReadWriteCloser(conn), ip); err != nil {
				log.Errorf("tcp player %s: %v\n", ip, err)
			}
		})
	}
}
