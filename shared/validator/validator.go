package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"salon/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Rule is a single field constraint expressed as a go-playground validator tag.
// Field is the dotted JSON path reported back to the client.
type Rule struct {
	Field string
	Tag   string
}

// Schema is an ordered list of rules; order decides which violation is reported first.
type Schema []Rule

// Values holds the decoded input keyed by the same dotted paths the schema uses.
// Absent optional fields are nil.
type Values map[string]any

// Validatable is implemented by request payloads checked against a schema.
type Validatable interface {
	Schema() Schema
	Values() Values
}

// Check evaluates the rules in order and returns the first violation as a
// validation failure naming the offending field.
func (s Schema) Check(values Values) error {
	return s.check(values, nil)
}

// check is Check with type mismatches found while decoding standing in for
// the rules of their fields.
func (s Schema) check(values Values, mismatched map[string]error) error {
	for _, rule := range s {
		if err, ok := mismatched[rule.Field]; ok {
			return err
		}

		if err := validate.Var(values[rule.Field], rule.Tag); err != nil {
			return failure.Validation(message(err, rule.Field), rule.Field) //nolint:wrapcheck
		}
	}

	return nil
}

// Fields returns the field paths covered by the schema, in rule order.
func (s Schema) Fields() []string {
	fields := make([]string, 0, len(s))
	for _, rule := range s {
		fields = append(fields, rule.Field)
	}

	return fields
}

// Validate reads a JSON object from r into data and checks it against the
// payload's schema. Type mismatches are reported in schema order alongside the
// other rules; a body that is not JSON at all is a bad request.
func Validate[T any, PT interface {
	*T
	Validatable
}](r io.Reader, data PT) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return failure.InvalidRequestBody
	}

	var fields map[string]json.RawMessage

	err = json.Unmarshal(body, &fields)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return failure.Validation("Expected object, received "+jsonKind(typeErr.Value), "") //nolint:wrapcheck
		}

		return failure.InvalidRequestBody
	}

	if fields == nil {
		return failure.Validation("Expected object, received null", "") //nolint:wrapcheck
	}

	schema := data.Schema()
	mismatched := make(map[string]error)

	for _, field := range schema.Fields() {
		raw, ok := fields[field]
		if !ok {
			continue
		}

		if err := checkType[T](field, raw); err != nil {
			mismatched[field] = err
		}
	}

	// Mismatched fields are left zero; everything else still decodes.
	decodeErr := json.Unmarshal(body, data)

	var typeErr *json.UnmarshalTypeError
	if decodeErr != nil && !errors.As(decodeErr, &typeErr) {
		return failure.InvalidRequestBody
	}

	if err := schema.check(data.Values(), mismatched); err != nil {
		return err
	}

	if typeErr != nil {
		return typeFailure(typeErr)
	}

	return nil
}

// checkType decodes a single field of the payload on its own.
func checkType[T any](field string, raw json.RawMessage) error {
	single, err := json.Marshal(map[string]json.RawMessage{field: raw})
	if err != nil {
		return failure.InvalidRequestBody
	}

	var target T

	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(single, &target); errors.As(err, &typeErr) {
		return typeFailure(typeErr)
	}

	return nil
}

func typeFailure(typeErr *json.UnmarshalTypeError) error {
	return failure.Validation(fmt.Sprintf("%s must be %s", typeErr.Field, typeName(typeErr.Type)), typeErr.Field) //nolint:wrapcheck
}
