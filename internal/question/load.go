package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadDeck reads, parses, and validates a deck file.
func LoadDeck(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("read deck: %w", err)
	}
	deck, err := ParseDeck(data, path)
	if err != nil {
		return Deck{}, err
	}
	return NormalizeDeck(deck)
}

// ParseDeck decodes deck bytes. JSON is chosen by a .json extension; anything else is YAML.
func ParseDeck(data []byte, path string) (Deck, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		return parseJSONDeck(data)
	}
	return parseYAMLDeck(data)
}

func parseJSONDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse json: %w", err)
	}
	return deck, nil
}

func parseYAMLDeck(data []byte) (Deck, error) {
	var deck Deck
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&deck); err != nil {
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Deck{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Deck{}, fmt.Errorf("parse yaml: %w", err)
	}
	return deck, nil
}
