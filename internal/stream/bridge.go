// Package stream adapts a pull-based server-streaming RPC into the
// push-based HTTP write path: a producer goroutine pulls one backend item
// at a time and hands JSON fragments to the response writer through a
// bounded channel. Memory use is bounded by the channel capacity plus one
// in-flight item, independent of stream length.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"io"
)

// BufferSize is the capacity of the producer/consumer handoff channel.
// A slow consumer fills it up and suspends the producer; the buffer never
// grows.
const BufferSize = 100

// Fragment is one chunk of a streamed response body. Err is terminal:
// after a fragment with a non-nil Err the channel is closed and the body
// is left truncated (no closing bracket), which any conforming JSON
// parser detects.
type Fragment struct {
	Data []byte
	Err  error
}

// Receiver pulls the next item from the backend stream. It must return
// io.EOF when the stream is exhausted, matching the gRPC Recv contract.
type Receiver[T any] func() (T, error)

// Marshal serializes one item into its JSON representation.
type Marshal[T any] func(T) ([]byte, error)

// JSONArray starts a producer goroutine that turns the received items
// into a JSON array, emitted incrementally:
//
//	[item0,item1,...]
//
// Zero items yield exactly "[]". Items are emitted strictly in arrival
// order; only one item is in flight at any time.
//
// A per-item marshal failure does not abort the stream: the item is
// replaced, in its ordinal position, by an {"error":"..."} marker object
// so the array stays parseable. A failure of the source itself ends the
// stream without the closing bracket.
//
// The producer stops as soon as ctx is done, both while pulling and while
// sending; it never blocks on a channel nobody drains. Callers are
// expected to open the backend stream with the same ctx so that a client
// disconnect also cancels the upstream RPC.
func JSONArray[T any](ctx context.Context, recv Receiver[T], marshal Marshal[T]) <-chan Fragment {
	out := make(chan Fragment, BufferSize)

	go func() {
		defer close(out)

		if !send(ctx, out, Fragment{Data: []byte("[")}) {
			return
		}
		first := true
		for {
			if ctx.Err() != nil {
				return
			}
			item, err := recv()
			if errors.Is(err, io.EOF) {
				send(ctx, out, Fragment{Data: []byte("]")})
				return
			}
			if err != nil {
				send(ctx, out, Fragment{Err: err})
				return
			}

			buf, merr := marshal(item)
			if merr != nil {
				buf = errorMarker(merr)
			}
			if !first {
				buf = append([]byte{','}, buf...)
			}
			first = false
			if !send(ctx, out, Fragment{Data: buf}) {
				return
			}
		}
	}()

	return out
}

// send delivers f unless ctx is done first.
func send(ctx context.Context, out chan<- Fragment, f Fragment) bool {
	select {
	case out <- f:
		return true
	case <-ctx.Done():
		return false
	}
}

func errorMarker(err error) []byte {
	buf, merr := json.Marshal(map[string]string{"error": err.Error()})
	if merr != nil {
		// map[string]string cannot fail to marshal
		return []byte(`{"error":"serialization failed"}`)
	}
	return buf
}
