package network

import "net"

// AutoHttpsListener wraps the panel listener when TLS is configured so that
// plain-HTTP clients hitting the HTTPS port get a redirect instead of a
// handshake error.
type AutoHttpsListener struct {
	net.Listener
}

func NewAutoHttpsListener(listener net.Listener) net.Listener {
	return &AutoHttpsListener{
		Listener: listener,
	}
}

// Accept wraps each accepted connection with AutoHttpsConn, which sniffs the
// first bytes to tell HTTP from TLS.
func (l *AutoHttpsListener) Accept() (net.Conn, error) {
	conn, err := l.Listener.Accept()
	if err != nil {
		return nil, err
	}
	return NewAutoHttpsConn(conn), nil
}
