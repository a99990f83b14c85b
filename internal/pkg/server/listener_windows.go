//go:build windows

package server

import "syscall"

// On Windows SO_REUSEADDR lets another socket steal a bound port, and a
// listening port can be rebound immediately without it.
func reuseAddr(_, _ string, _ syscall.RawConn) error {
	return nil
}
