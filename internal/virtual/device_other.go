//go:build !linux

package virtual

import "errors"

func openDevice(path, name string) (device, error) {
	return nil, errors.New("uinput is only available on linux")
}
