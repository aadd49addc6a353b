package colerrors

import (
	"errors"
	"testing"
)

func TestInvalidInputError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &InvalidInputError{
			Op:      "ToRoman",
			Value:   0,
			Message: "value must be between 1 and 3999",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "invalid input for ToRoman (value: 0): value must be between 1 and 3999: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &InvalidInputError{}
		if err.Error() != "invalid input" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with op only", func(t *testing.T) {
		err := &InvalidInputError{Op: "FromRoman"}
		if err.Error() != "invalid input for FromRoman" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &InvalidInputError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrInvalidInput", func(t *testing.T) {
		err := &InvalidInputError{Message: "test"}
		if !errors.Is(err, ErrInvalidInput) {
			t.Error("InvalidInputError should match ErrInvalidInput")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &InvalidInputError{Message: "test"}
		if errors.Is(err, ErrParse) {
			t.Error("InvalidInputError should not match ErrParse")
		}
		if errors.Is(err, ErrSchema) {
			t.Error("InvalidInputError should not match ErrSchema")
		}
	})
}

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Input:   "three hundred and blorp",
			Token:   "blorp",
			Message: "unrecognized number word",
			Cause:   cause,
		}

		msg := err.Error()
		want := `parse error in "three hundred and blorp" at token "blorp": unrecognized number word: underlying error`
		if msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with input only", func(t *testing.T) {
		err := &ParseError{Input: "forty two"}
		if err.Error() != `parse error in "forty two"` {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil when no cause", func(t *testing.T) {
		err := &ParseError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil when no cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match ErrInvalidInput", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if errors.Is(err, ErrInvalidInput) {
			t.Error("ParseError should not match ErrInvalidInput")
		}
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &SchemaError{
			Column:   "price",
			TypeName: "Decimal128",
			Message:  "unsupported column type",
		}

		msg := err.Error()
		if msg != `schema error for column price (type: "Decimal128"): unsupported column type` {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &SchemaError{}
		if err.Error() != "schema error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrSchema", func(t *testing.T) {
		err := &SchemaError{Message: "test"}
		if !errors.Is(err, ErrSchema) {
			t.Error("SchemaError should match ErrSchema")
		}
	})

	t.Run("Wrapped cause is reachable via errors.Is", func(t *testing.T) {
		cause := errors.New("bad document")
		err := &SchemaError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("errors.Is should reach the wrapped cause")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "ngram",
			Value:   0,
			Message: "must be at least 1",
		}

		msg := err.Error()
		if msg != "configuration error for ngram (value: 0): must be at least 1" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Message: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
	})
}

func TestErrorsAs(t *testing.T) {
	t.Run("errors.As extracts InvalidInputError", func(t *testing.T) {
		var target *InvalidInputError
		err := error(&InvalidInputError{Op: "ToRoman", Value: -5})
		if !errors.As(err, &target) {
			t.Fatal("errors.As should extract InvalidInputError")
		}
		if target.Op != "ToRoman" {
			t.Errorf("unexpected Op: %s", target.Op)
		}
	})

	t.Run("errors.As extracts ParseError through wrapping", func(t *testing.T) {
		inner := &ParseError{Token: "blorp"}
		wrapped := wrapf(inner)
		var target *ParseError
		if !errors.As(wrapped, &target) {
			t.Fatal("errors.As should extract wrapped ParseError")
		}
		if target.Token != "blorp" {
			t.Errorf("unexpected Token: %s", target.Token)
		}
	})
}

func wrapf(err error) error {
	return &ConfigError{Option: "outer", Cause: err}
}
