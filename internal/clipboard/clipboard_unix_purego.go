//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
		}
	})
	return initErr
}

// ReadImage asks the CLIPBOARD owner for image/png over a plain X11
// connection and decodes the reply.
func ReadImage() (image.Image, error) {
	if err := ensureInit(); err != nil {
		return nil, err
	}
	data, err := readSelection("image/png")
	if err != nil {
		return nil, err
	}
	return decode(data)
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

func readSelection(targetName string) ([]byte, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	selection, err := internAtom(conn, "CLIPBOARD")
	if err != nil {
		return nil, err
	}
	target, err := internAtom(conn, targetName)
	if err != nil {
		return nil, err
	}
	property, err := internAtom(conn, "PHOTOVIEWER_CLIPBOARD")
	if err != nil {
		return nil, err
	}
	incr, err := internAtom(conn, "INCR")
	if err != nil {
		return nil, err
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, err
	}
	if err := xproto.CreateWindowChecked(conn, 0, window, screen.Root, 0, 0, 1, 1, 0,
		xproto.WindowClassInputOnly, 0, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check(); err != nil {
		return nil, err
	}
	defer xproto.DestroyWindow(conn, window)

	if err := xproto.ConvertSelectionChecked(conn, window, selection, target, property, xproto.TimeCurrentTime).Check(); err != nil {
		return nil, err
	}
	for {
		ev, xerr := conn.WaitForEvent()
		if xerr != nil {
			return nil, xerr
		}
		if ev == nil {
			return nil, errors.New("connection closed")
		}
		e, ok := ev.(xproto.SelectionNotifyEvent)
		if !ok {
			continue
		}
		if e.Property == xproto.AtomNone {
			return nil, ErrNoImage
		}
		reply, err := takeProperty(conn, window, property)
		if err != nil {
			return nil, err
		}
		if reply.Type != incr {
			return reply.Value, nil
		}
		// deleting the INCR property asks the owner for the first chunk
		return readChunks(func() ([]byte, error) {
			if err := waitNewValue(conn, window, property); err != nil {
				return nil, err
			}
			chunk, err := takeProperty(conn, window, property)
			if err != nil {
				return nil, err
			}
			return chunk.Value, nil
		})
	}
}

// takeProperty reads and deletes property on window.
func takeProperty(conn *xgb.Conn, window xproto.Window, property xproto.Atom) (*xproto.GetPropertyReply, error) {
	reply, err := xproto.GetProperty(conn, true, window, property, xproto.GetPropertyTypeAny, 0, (1<<31)-1).Reply()
	if err != nil {
		return nil, fmt.Errorf("read selection property: %w", err)
	}
	return reply, nil
}

// waitNewValue blocks until the selection owner writes the next chunk.
func waitNewValue(conn *xgb.Conn, window xproto.Window, property xproto.Atom) error {
	for {
		ev, err := conn.WaitForEvent()
		if err != nil {
			return err
		}
		if ev == nil {
			return errors.New("connection closed")
		}
		e, ok := ev.(xproto.PropertyNotifyEvent)
		if ok && e.Window == window && e.Atom == property && e.State == xproto.PropertyNewValue {
			return nil
		}
	}
}
