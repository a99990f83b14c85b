package server

import (
	"context"
	"fmt"
	"net"
)

func listen(addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: reuseAddr}

	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("unable to listen on %s: %w", addr, err)
	}

	return ln, nil
}
