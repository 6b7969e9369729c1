package rules

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Decode reads list of rules from YAML document:
//
//	- matcher: Bxsh
//	  type: pattern
//	  styles:
//	    box-shadow: $0
//	  arguments:
//	    - n: none
func Decode(data []byte) ([]Rule, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var list []Rule
	if err := dec.Decode(&list); err != nil {
		if errors.Is(err, io.EOF) {
			// empty document
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode rules: %w", err)
	}
	for i, r := range list {
		if err := r.validate(); err != nil {
			return nil, fmt.Errorf("rule #%d: %w", i, err)
		}
	}
	return list, nil
}

// Load reads rules from YAML file.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read rules file: %w", err)
	}
	list, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("unable to load rules from '%s': %w", path, err)
	}
	return list, nil
}

// Encode writes rules as YAML document suitable for Decode.
func Encode(list []Rule) ([]byte, error) {
	data, err := yaml.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rules to yaml: %w", err)
	}
	return data, nil
}
