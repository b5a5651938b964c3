/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: json.go
Description: Order-preserving JSON decoding into the inference value model.
Standard map decoding loses document key order, so this decoder walks the token
stream and builds ordered objects, keeping the shape a sample was written in.
*/

package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON decodes a JSON document into the inference value model:
// objects become ordered *Object values with document key order preserved,
// arrays become []interface{}, numbers become json.Number.
func DecodeJSON(data []byte) (interface{}, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader decodes one JSON document from a reader
func DecodeJSONReader(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode JSON sample: %w", err)
	}
	return v, nil
}

// decodeValue decodes the next value from the token stream
func decodeValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or null
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}

// decodeObject decodes members until the closing brace, preserving order
func decodeObject(dec *json.Decoder) (*Object, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}

	// Consume the closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

// decodeArray decodes elements until the closing bracket
func decodeArray(dec *json.Decoder) ([]interface{}, error) {
	elems := make([]interface{}, 0)
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}

	// Consume the closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return elems, nil
}
