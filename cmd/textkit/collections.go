package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	outputFormatText = "text"
	outputFormatJSON = "json"
	outputFormatYAML = "yaml"

	maxInputLineBytes = 1 << 20
)

// readCollection picks the command input: positional arguments first, then
// a YAML or JSON sequence file, then one value per line from standardInput.
func readCollection(arguments []string, inputPath string, standardInput io.Reader) ([]string, error) {
	if len(arguments) > 0 {
		values := make([]string, len(arguments))
		copy(values, arguments)
		return values, nil
	}
	if inputPath != "" {
		documentBytes, readError := os.ReadFile(inputPath)
		if readError != nil {
			return nil, fmt.Errorf("read %s: %w", inputPath, readError)
		}
		return decodeCollectionDocument(documentBytes)
	}
	return scanLines(standardInput)
}

func decodeCollectionDocument(documentBytes []byte) ([]string, error) {
	var values []string
	if unmarshalError := yaml.Unmarshal(documentBytes, &values); unmarshalError != nil {
		return nil, fmt.Errorf("decode input document: %w", unmarshalError)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}

func scanLines(standardInput io.Reader) ([]string, error) {
	values := []string{}
	if standardInput == nil {
		return values, nil
	}
	lineScanner := bufio.NewScanner(standardInput)
	lineScanner.Buffer(make([]byte, 0, 64*1024), maxInputLineBytes)
	for lineScanner.Scan() {
		values = append(values, lineScanner.Text())
	}
	if scanError := lineScanner.Err(); scanError != nil {
		return nil, fmt.Errorf("read standard input: %w", scanError)
	}
	return values, nil
}

func validateOutputFormat(formatName string) error {
	switch formatName {
	case outputFormatText, outputFormatJSON, outputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unknown output format %q: want %s, %s or %s", formatName, outputFormatText, outputFormatJSON, outputFormatYAML)
	}
}

func writeCollection(output io.Writer, values []string, formatName string) error {
	switch formatName {
	case outputFormatJSON:
		jsonEncoder := json.NewEncoder(output)
		jsonEncoder.SetIndent("", "  ")
		if encodeError := jsonEncoder.Encode(values); encodeError != nil {
			return fmt.Errorf("write json: %w", encodeError)
		}
		return nil
	case outputFormatYAML:
		yamlEncoder := yaml.NewEncoder(output)
		yamlEncoder.SetIndent(2)
		if encodeError := yamlEncoder.Encode(values); encodeError != nil {
			return fmt.Errorf("write yaml: %w", encodeError)
		}
		if closeError := yamlEncoder.Close(); closeError != nil {
			return fmt.Errorf("write yaml: %w", closeError)
		}
		return nil
	case outputFormatText:
		if len(values) == 0 {
			return nil
		}
		if _, writeError := io.WriteString(output, strings.Join(values, "\n")+"\n"); writeError != nil {
			return fmt.Errorf("write text: %w", writeError)
		}
		return nil
	default:
		return validateOutputFormat(formatName)
	}
}
