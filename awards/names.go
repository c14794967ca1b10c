package awards

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// missingValue matches a key separator immediately followed by closing
// punctuation, the signature of the export bug where an absent name was
// dropped instead of written as an explicit null.
var missingValue = regexp.MustCompile(`:(,|\}|\])`)

// NamesError reports a stored names value that could not be decoded even
// after repair.
type NamesError struct {
	Raw string
	Err error
}

func (e *NamesError) Error() string {
	return fmt.Sprintf("failed to parse names %q: %v", e.Raw, e.Err)
}

func (e *NamesError) Unwrap() error { return e.Err }

// RepairNames inserts explicit nulls where the export dropped a value,
// e.g. `[{"name":,"role":"Presenter"}]`. Adjacent defects are all
// repaired; well-formed input passes through unchanged.
func RepairNames(raw string) string {
	return missingValue.ReplaceAllString(raw, ":null$1")
}

// DecodeNames repairs and parses a stored names value. The importer keeps
// the value exactly as exported, so it is usually a JSON array wrapped
// inside a JSON string (double-encoded); a bare array is accepted too.
func DecodeNames(raw string) ([]Nominee, error) {
	text := raw
	var inner string
	if err := json.Unmarshal([]byte(raw), &inner); err == nil {
		text = inner
	}

	var names []Nominee
	if err := json.Unmarshal([]byte(RepairNames(text)), &names); err != nil {
		return nil, &NamesError{Raw: raw, Err: err}
	}
	if names == nil {
		names = []Nominee{}
	}
	return names, nil
}
