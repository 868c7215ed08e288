//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package display

// ListMonitors is unsupported on this platform.
func ListMonitors() ([]Monitor, error) {
	return nil, ErrUnsupported
}
