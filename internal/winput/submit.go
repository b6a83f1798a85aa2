package winput

import (
	"fmt"

	"github.com/bnema/keysim/internal/inputerr"
	"github.com/bnema/keysim/internal/logger"
)

// Sink hands records to the OS input queue and returns how many it
// accepted, which may be fewer than offered. When not everything was
// accepted, err carries the reason the OS gave, if any.
type Sink interface {
	Submit(records []Record) (accepted int, err error)
}

// submitAll resubmits the unaccepted suffix until every record has been
// accepted. A call accepting nothing means another thread or process is
// blocking input, and fails at once instead of spinning.
func submitAll(sink Sink, records []Record) error {
	for len(records) > 0 {
		n, err := sink.Submit(records)
		if n == 0 {
			return inputerr.SubmissionBlocked(backendName, err)
		}
		if n < 0 || n > len(records) {
			return inputerr.Failed(backendName, "submit",
				fmt.Errorf("accepted %d of %d records", n, len(records)))
		}
		records = records[n:]
		if len(records) > 0 {
			logger.Debug("input partially accepted, resubmitting", "accepted", n, "remaining", len(records))
		}
	}
	return nil
}
