package jsonstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shpandrak/shpanzip/zip"
)

var errNotOpened = errors.New("json producer used before Open")

type jsonObjectProducer[T any] struct {
	readCloserProvider func(ctx context.Context) (io.ReadCloser, error)
	readCloser         io.ReadCloser
	jsonDecoder        *json.Decoder
	done               bool
}

// ReadJsonObject produces the fields of a JSON object, in document order, as (name, value) tuples.
func ReadJsonObject[T any](readCloserProvider func(ctx context.Context) (io.ReadCloser, error)) zip.Producer[zip.Tuple2[string, T]] {
	return &jsonObjectProducer[T]{
		readCloserProvider: readCloserProvider,
	}
}

func (j *jsonObjectProducer[T]) Open(ctx context.Context) error {
	rc, err := j.readCloserProvider(ctx)
	if err != nil {
		return fmt.Errorf("failed to open json object: %w", err)
	}
	j.readCloser = rc

	j.jsonDecoder = json.NewDecoder(j.readCloser)

	// Read opening brace
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return fmt.Errorf("failed to read opening token: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected start of object, got %v", t)
	}

	return nil
}

func (j *jsonObjectProducer[T]) Close() {
	if j.readCloser != nil {
		_ = j.readCloser.Close()
		j.readCloser = nil
	}
	j.jsonDecoder = nil
}

func (j *jsonObjectProducer[T]) Emit(ctx context.Context) (zip.Tuple2[string, T], error) {
	var field zip.Tuple2[string, T]

	// Check if the ctx is done
	select {
	case <-ctx.Done():
		return field, ctx.Err()
	default:
	}

	if j.done {
		return field, io.EOF
	}
	if j.jsonDecoder == nil {
		return field, errNotOpened
	}

	// Read key-value pairs one at a time
	if j.jsonDecoder.More() {

		// Read key using Token()
		tok, err := j.jsonDecoder.Token()
		if err != nil {
			return field, fmt.Errorf("error reading key token: %w", err)
		}

		fieldName, ok := tok.(string)
		if !ok {
			return field, fmt.Errorf("expected string key for json, got %T: %v", tok, tok)
		}
		field.V1 = fieldName
		if err := j.jsonDecoder.Decode(&field.V2); err != nil {
			return zip.Tuple2[string, T]{}, fmt.Errorf("error decoding value of %s: %w", fieldName, err)
		}
		return field, nil
	}

	// Read closing brace
	t, err := j.jsonDecoder.Token()
	if err != nil {
		return field, fmt.Errorf("failed to read closing token: %w", err)
	}
	if delim, ok := t.(json.Delim); !ok || delim != '}' {
		return field, fmt.Errorf("expected end of object, got %v", t)
	}
	j.done = true
	return field, io.EOF
}

func (j *jsonObjectProducer[T]) SizeHint() zip.SizeHint {
	if j.done {
		return zip.Exact(0)
	}
	return zip.UnknownSize()
}
