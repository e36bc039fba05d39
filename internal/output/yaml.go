package output

import (
	"io"

	"gopkg.in/yaml.v3"
)

// yamlWriter buffers items and emits a YAML document on Flush.
type yamlWriter struct {
	w     io.Writer
	items []any
}

func (w *yamlWriter) Write(data any) error {
	w.items = append(w.items, data)
	return nil
}

func (w *yamlWriter) WriteAll(data []any) error {
	w.items = append(w.items, data...)
	return nil
}

func (w *yamlWriter) Flush() error {
	enc := yaml.NewEncoder(w.w)
	enc.SetIndent(2)

	var doc any = w.items
	if len(w.items) == 1 {
		doc = w.items[0]
	}

	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
