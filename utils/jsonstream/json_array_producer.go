package jsonstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shpandrak/shpanzip/internal/util"
	"github.com/shpandrak/shpanzip/zip"
)

type jsonArrayProducer[T any] struct {
	readCloserProvider func(ctx context.Context) (io.ReadCloser, error)
	readCloser         io.ReadCloser
	jsonDecoder        *json.Decoder
	done               bool
}

// ReadJsonArray produces the elements of a JSON array one at a time, without loading the whole array.
func ReadJsonArray[T any](readCloserProvider func(ctx context.Context) (io.ReadCloser, error)) zip.Producer[T] {
	return &jsonArrayProducer[T]{
		readCloserProvider: readCloserProvider,
	}
}

func (j *jsonArrayProducer[T]) Open(ctx context.Context) error {
	rc, err := j.readCloserProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to open json array: %w", err)
	}
	j.readCloser = rc

	j.jsonDecoder = json.NewDecoder(j.readCloser)

	// Check that the first token is an array start
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return fmt.Errorf("failed to open JSON array producer: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '[' {
		return errors.New("input is not a JSON array")
	}

	return nil
}

func (j *jsonArrayProducer[T]) Close() {
	if j.readCloser != nil {
		_ = j.readCloser.Close()
		j.readCloser = nil
	}
	j.jsonDecoder = nil
}

func (j *jsonArrayProducer[T]) Emit(ctx context.Context) (T, error) {

	// Check if the ctx is done
	select {
	case <-ctx.Done():
		return util.DefaultValue[T](), ctx.Err()
	default:
	}

	if j.done {
		return util.DefaultValue[T](), io.EOF
	}
	if j.jsonDecoder == nil {
		return util.DefaultValue[T](), errNotOpened
	}

	if j.jsonDecoder.More() {
		var parsedElement T
		if err := j.jsonDecoder.Decode(&parsedElement); err != nil {

			// If there is a parsing error, it is helpful to read the buffered data so this can be debugged
			bufferMessage := ""
			buffText, bufErr := io.ReadAll(j.jsonDecoder.Buffered())
			if bufErr == nil {
				bufferMessage = fmt.Sprintf(". parser buffer %s", buffText)
			}

			return util.DefaultValue[T](), fmt.Errorf("error parsing array element%s: %w", bufferMessage, err)
		}
		return parsedElement, nil
	}

	// Read closing array token
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return util.DefaultValue[T](), fmt.Errorf("failed to read end of json array: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != ']' {
		return util.DefaultValue[T](), fmt.Errorf("expected end of json array, got %v", t)
	}
	j.done = true
	return util.DefaultValue[T](), io.EOF
}

func (j *jsonArrayProducer[T]) SizeHint() zip.SizeHint {
	if j.done {
		return zip.Exact(0)
	}
	return zip.UnknownSize()
}
