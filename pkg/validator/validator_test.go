package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string `validate:"required,notblank"`
	Serves  int    `validate:"gte=0"`
	Outcome string `validate:"omitempty,oneof=win loss"`
}

func TestNotBlankAndMessages(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	err := v.Struct(sample{Name: "   ", Serves: -1, Outcome: "draw"})
	require.Error(t, err)

	fields := ParseError(err)
	require.Equal(t, "Name must not be blank", fields["Name"])
	require.Equal(t, "Serves must be at least 0", fields["Serves"])
	require.Equal(t, "Outcome must be one of [win loss]", fields["Outcome"])

	require.NoError(t, v.Struct(sample{Name: "ok"}))
}

func TestParseErrorNonValidator(t *testing.T) {
	fields := ParseError(errors.New("unexpected EOF"))
	require.Equal(t, "unexpected EOF", fields["error"])
	require.Empty(t, ParseError(nil))
}
