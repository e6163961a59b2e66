package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// sliceReceiver returns a Receiver that replays items and then io.EOF,
// or fails with failErr after the items when it is non-nil.
func sliceReceiver(items []int, failErr error) Receiver[int] {
	i := 0
	return func() (int, error) {
		if i < len(items) {
			v := items[i]
			i++
			return v, nil
		}
		if failErr != nil {
			return 0, failErr
		}
		return 0, io.EOF
	}
}

func marshalInt(v int) ([]byte, error) {
	return json.Marshal(v)
}

// drain collects all fragments, returning the concatenated body and the
// terminal error, if any.
func drain(t *testing.T, ch <-chan Fragment) (string, error) {
	t.Helper()
	var sb strings.Builder
	for f := range ch {
		if f.Err != nil {
			return sb.String(), f.Err
		}
		sb.Write(f.Data)
	}
	return sb.String(), nil
}

func TestJSONArray_EmitsItemsInOrder(t *testing.T) {
	ch := JSONArray(context.Background(), sliceReceiver([]int{1, 2, 3}, nil), marshalInt)
	body, err := drain(t, ch)
	require.NoError(t, err)
	require.Equal(t, "[1,2,3]", body)
}

func TestJSONArray_EmptyStream(t *testing.T) {
	ch := JSONArray(context.Background(), sliceReceiver(nil, nil), marshalInt)
	body, err := drain(t, ch)
	require.NoError(t, err)
	require.Equal(t, "[]", body)
}

func TestJSONArray_ManyItemsExceedBuffer(t *testing.T) {
	items := make([]int, 3*BufferSize)
	for i := range items {
		items[i] = i
	}
	ch := JSONArray(context.Background(), sliceReceiver(items, nil), marshalInt)
	body, err := drain(t, ch)
	require.NoError(t, err)

	var got []int
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Equal(t, items, got)
}

func TestJSONArray_MarshalFailureBecomesMarker(t *testing.T) {
	marshal := func(v int) ([]byte, error) {
		if v == 2 {
			return nil, errors.New("item 2 is cursed")
		}
		return json.Marshal(v)
	}
	ch := JSONArray(context.Background(), sliceReceiver([]int{1, 2, 3}, nil), marshal)
	body, err := drain(t, ch)
	require.NoError(t, err)

	// The array stays parseable with the marker in ordinal position.
	var got []any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got, 3)
	require.Equal(t, float64(1), got[0])
	marker, ok := got[1].(map[string]any)
	require.True(t, ok, "expected marker object, got %T", got[1])
	require.Contains(t, marker["error"], "cursed")
	require.Equal(t, float64(3), got[2])
}

func TestJSONArray_SourceErrorTruncatesBody(t *testing.T) {
	srcErr := errors.New("stream broke")
	ch := JSONArray(context.Background(), sliceReceiver([]int{1, 2}, srcErr), marshalInt)
	body, err := drain(t, ch)
	require.ErrorIs(t, err, srcErr)

	// No closing bracket: any JSON parser flags the truncation.
	require.Equal(t, "[1,2", body)
	var got []int
	require.Error(t, json.Unmarshal([]byte(body), &got))
}

func TestJSONArray_BufferIsBounded(t *testing.T) {
	ch := JSONArray(context.Background(), sliceReceiver(nil, nil), marshalInt)
	require.Equal(t, BufferSize, cap(ch))
	drain(t, ch)
}

func TestJSONArray_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// An endless source; nobody drains the channel, so the producer
	// eventually blocks on send and must be released by cancellation.
	n := 0
	endless := func() (int, error) {
		n++
		return n, nil
	}
	ch := JSONArray(ctx, endless, marshalInt)

	// Let the producer fill the buffer, then cancel without draining.
	time.Sleep(20 * time.Millisecond)
	cancel()

	// The channel must be closed shortly after; range would hang forever
	// if the producer leaked.
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("producer did not stop after cancellation")
		}
	}
}

func TestJSONArray_BackpressureOneInFlight(t *testing.T) {
	// The receiver counts pulls; with a full buffer and no consumer the
	// producer must stop pulling after at most BufferSize+1 items.
	var pulls int
	recv := func() (int, error) {
		pulls++
		return pulls, nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	JSONArray(ctx, recv, marshalInt)
	time.Sleep(50 * time.Millisecond)

	if pulls > BufferSize+2 {
		t.Fatalf("producer pulled %d items with no consumer; buffer not bounded", pulls)
	}
}

func TestErrorMarker_IsValidJSON(t *testing.T) {
	buf := errorMarker(fmt.Errorf("quote \" and slash \\"))
	var m map[string]string
	require.NoError(t, json.Unmarshal(buf, &m))
	require.Contains(t, m["error"], "quote")
}
