package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ripplebutton/pkg/errors"
)

// LoadVariant reads and validates a button file.
func LoadVariant(path string) (*Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.LoadVariant", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return ParseVariant(data)
}

// ParseVariant decodes and validates a button document.
func ParseVariant(data []byte) (*Variant, error) {
	var v Variant
	if err := decode(data, &v); err != nil {
		return nil, configError("config.ParseVariant", err)
	}
	if err := validatorInstance().Struct(&v); err != nil {
		return nil, convertValidationError(err)
	}
	return &v, nil
}

// LoadScript reads and validates an interaction script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.LoadScript", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a script document.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := decode(data, &s); err != nil {
		return nil, configError("config.ParseScript", err)
	}
	if err := validatorInstance().Struct(&s); err != nil {
		return nil, convertValidationError(err)
	}
	return &s, nil
}

// decode rejects unknown keys so typos in flag names are not silently
// ignored. An empty document decodes to the zero value.
func decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}
	return nil
}

func configError(op string, err error) *errors.Error {
	return &errors.Error{Op: op, Kind: errors.KindConfig, Err: err}
}
