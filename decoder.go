package chat

// Decoder turns a vendor's open streaming response into text fragments.
//
// Next advances to the next text fragment, skipping every event that carries
// no text. It returns false once the vendor stream ends or the transport
// fails, after which Err reports the failure (nil on a normal end). A Decoder
// is not restartable and is used by a single goroutine.
type Decoder interface {
	Next() bool
	Fragment() string
	Err() error
	Close() error
}
