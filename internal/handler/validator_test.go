package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enumStruct struct {
	City     string `validate:"city"`
	Selector string `validate:"cityselector"`
	Server   string `validate:"server"`
	Side     string `validate:"side"`
	Location string `validate:"location"`
	Daily    string `validate:"daily"`
	Category string `validate:"category"`
}

func TestValidator_GameEnums(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name      string
		input     enumStruct
		wantField string
	}{
		{"all empty allowed", enumStruct{}, ""},
		{"valid values", enumStruct{
			City: "Fort Sterling", Selector: "auto", Server: "europe", Side: "sell",
			Location: "hideout", Daily: "gold", Category: "refining",
		}, ""},
		{"case and spacing insensitive", enumStruct{City: "fort-sterling", Selector: "BLACK MARKET", Category: "Gear"}, ""},
		{"unknown city", enumStruct{City: "Atlantis"}, "city"},
		{"unknown selector", enumStruct{Selector: "somewhere"}, "selector"},
		{"unknown server", enumStruct{Server: "moon"}, "server"},
		{"bad side", enumStruct{Side: "hold"}, "side"},
		{"bad location", enumStruct{Location: "castle"}, "location"},
		{"bad daily", enumStruct{Daily: "platinum"}, "daily"},
		{"bad category", enumStruct{Category: "fishing"}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non-validation error", func(t *testing.T) {
		fields := FormatValidationError(errors.New("boom"))
		assert.Equal(t, "Invalid request format", fields["error"])
	})

	t.Run("messages by tag", func(t *testing.T) {
		type limits struct {
			RecipeID string  `validate:"required"`
			Capacity float64 `validate:"gte=0"`
			Side     string  `validate:"side"`
		}
		err := GetValidator().ValidateStruct(limits{Capacity: -1, Side: "x"})
		require.Error(t, err)
		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["recipeid"])
		assert.Equal(t, "Must be at least 0", fields["capacity"])
		assert.Equal(t, "Must be buy or sell", fields["side"])
	})
}
