package faq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// corpusFile is the on-disk layout of a corpus:
//
//	[[records]]
//	question = "🧑‍💻 Who are you?"
//	answer = "..."
//	keywords = ["who", "are", "you"]
type corpusFile struct {
	Records []Record `toml:"records"`
}

// LoadFile reads and validates a TOML corpus file.
func LoadFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a TOML corpus. Unknown fields are rejected.
func Load(r io.Reader) (*Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	var file corpusFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding corpus: %w", err)
	}
	return NewCorpus(file.Records)
}

// Encode writes c in the format Load reads.
func Encode(w io.Writer, c *Corpus) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(corpusFile{Records: c.Records()}); err != nil {
		return fmt.Errorf("encoding corpus: %w", err)
	}
	return nil
}
