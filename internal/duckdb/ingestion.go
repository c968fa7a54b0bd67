package duckdb

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"quizdeck/internal/question"
)

// questionKey is the canonical payload fingerprinted into questions.question_key.
type questionKey struct {
	Prompt         string   `json:"prompt"`
	Choices        []string `json:"choices"`
	CorrectAnswers []int    `json:"correct_answers"`
}

// QuestionKey returns a stable fingerprint of a question's content.
func QuestionKey(q question.Question) (string, error) {
	data, err := json.Marshal(questionKey{
		Prompt:         q.Prompt,
		Choices:        nonNilStrings(q.Choices),
		CorrectAnswers: nonNilInts(q.CorrectAnswers),
	})
	if err != nil {
		return "", err
	}
	return fingerprintBytes(data), nil
}

// CanonicalList encodes a slice as JSON, writing [] for nil.
func CanonicalList[T any](values []T) (string, error) {
	if values == nil {
		values = []T{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fingerprintBytes(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilInts(values []int) []int {
	if values == nil {
		return []int{}
	}
	return values
}
