//go:build !windows

package winput

import "errors"

func newSystemSink() (Sink, error) {
	return nil, errors.New("SendInput is only available on windows")
}
