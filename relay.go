package chat

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Relay starts the goroutine that drains dec into a new Stream and returns the
// stream immediately.
//
// cancel must cancel the context dec was opened with; it is invoked when the
// consumer closes the stream and when the producer exits. log may be nil.
func Relay(dec Decoder, cancel context.CancelFunc, log logrus.FieldLogger) *Stream {
	if log == nil {
		log = discardLogger()
	}
	s := newStream(cancel)
	go s.run(dec, log)
	return s
}

func (s *Stream) run(dec Decoder, log logrus.FieldLogger) {
	defer close(s.done)

	count := 0
	for dec.Next() {
		if !s.push(dec.Fragment()) {
			break
		}
		count++
	}

	err := dec.Err()
	if closeErr := dec.Close(); closeErr != nil {
		log.WithError(closeErr).Debug("closing vendor stream")
	}

	entry := log.WithField("fragments", count)
	switch {
	case s.isDropped():
		entry.Debug("stream closed by consumer")
		err = nil
	case err == nil:
		entry.Debug("stream complete")
	case errors.Is(err, context.Canceled):
		entry.WithError(err).Info("stream cancelled")
	default:
		entry.WithError(err).Error("stream terminated early")
	}

	s.finish(err)
	if s.cancel != nil {
		s.cancel()
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
