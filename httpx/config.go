package httpx

import "time"

// MaxHttpBody bounds non-streaming body reads; bodies declaring a larger
// Content-Length are refused with ErrPayloadTooLarge unless the handler
// takes the streaming path (multipart, chunked consumer).
const MaxHttpBody = 16 * 1024

// StreamSendDelay is the pacing delay between successive chunk writes,
// giving the network stack a chance to drain (original_source's
// STREAM_SEND_DELAY_MS).
const StreamSendDelay = 20 * time.Millisecond
