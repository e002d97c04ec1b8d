package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const noteSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["id", "content", "rating"],
	"properties": {
		"id": {"type": "string"},
		"content": {"type": "string", "minLength": 1},
		"rating": {"type": "integer", "minimum": 1, "maximum": 5},
		"status": {"type": "string", "enum": ["sent", "delivered", "read"]}
	}
}`

func compileNote(t *testing.T) *Validator {
	t.Helper()
	v, err := Compile("note", []byte(noteSchema))
	require.NoError(t, err)
	return v
}

func TestValidate_MissingField(t *testing.T) {
	err := compileNote(t).Validate([]byte(`{"id": "n1", "rating": 3}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "error should be ValidationError type")
	require.Len(t, validationErr.Errors, 1)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "content")
}

func TestValidate_WrongTypeAndRange(t *testing.T) {
	err := compileNote(t).Validate([]byte(`{"id": 7, "content": "ok", "rating": 9, "status": "lost"}`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	fields := make([]string, 0, len(validationErr.Errors))
	for _, fe := range validationErr.Errors {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"id", "rating", "status"}, fields)
	assert.Contains(t, err.Error(), "note validation failed:")
}

func TestCompile_MalformedSchema(t *testing.T) {
	_, err := Compile("garbled", []byte(`{ invalid json }`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.NotNil(t, errors.Unwrap(loadErr))
}

func TestCompile(t *testing.T) {
	v := compileNote(t)

	assert.NoError(t, v.Validate([]byte(`{"id": "n1", "content": "ok", "rating": 1}`)))

	var validationErr *ValidationError
	assert.ErrorAs(t, v.Validate([]byte(`{"id": "n1", "content": "", "rating": 1}`)), &validationErr)

	err := v.Validate([]byte(`{ not json`))
	require.Error(t, err)
	assert.False(t, errors.As(err, &validationErr))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", []byte(`{"type": 12}`))
	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, err.Error(), "broken")
}
