package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"quizdeck/internal/question"
)

// WriteDeck writes groups as a versioned deck that question.LoadDeck reads back.
func WriteDeck(w io.Writer, groups []question.Group, format Format) error {
	deck := question.Deck{Version: question.DeckVersion, Groups: groups}
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(deck); err != nil {
			return fmt.Errorf("encode yaml deck: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(deck); err != nil {
			return fmt.Errorf("encode json deck: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("deck format %q not supported", format)
	}
}
