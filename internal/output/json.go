package output

import (
	"encoding/json"
	"io"
)

// jsonWriter buffers items and emits a single JSON document on Flush.
type jsonWriter struct {
	w      io.Writer
	pretty bool
	items  []any
}

func (w *jsonWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

func (w *jsonWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

func (w *jsonWriter) Flush() error {
	// A single item is emitted directly, not wrapped in an array
	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}

	var out []byte
	var err error
	if w.pretty {
		out, err = json.MarshalIndent(doc, "", "  ")
	} else {
		out, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w.w, "\n")
	return err
}

// jsonlWriter emits newline-delimited JSON as items arrive.
type jsonlWriter struct {
	w io.Writer
}

func (w *jsonlWriter) Write(data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(out); err != nil {
		return err
	}
	_, err = io.WriteString(w.w, "\n")
	return err
}

func (w *jsonlWriter) WriteAll(data []any) error {
	for _, item := range data {
		if err := w.Write(item); err != nil {
			return err
		}
	}
	return nil
}

func (w *jsonlWriter) Flush() error {
	return nil
}
