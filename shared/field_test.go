package shared

import (
	"strings"
	"testing"

	"github.com/peterldowns/testy/assert"
)

func TestFieldString(t *testing.T) {
	names := []string{"open", "high", "low", "close", "date", "volume", "symbol"}
	assert.Equal(t, len(names), len(Fields))
	for idx, f := range Fields {
		assert.Equal(t, names[idx], f.String())

		parsed, err := ParseField(names[idx])
		assert.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	assert.Equal(t, "unknown", Field(42).String())
	_, err := ParseField("adjclose")
	assert.Error(t, err)
}

func TestFieldConfigBind(t *testing.T) {
	var cfg FieldConfig
	for _, f := range Fields {
		assert.Equal(t, "", cfg.Column(f))
		cfg.Bind(f, "col-"+f.String())
	}

	for _, f := range Fields {
		assert.Equal(t, "col-"+f.String(), cfg.Column(f))
	}
	assert.Equal(t, "col-close", cfg.Close)
	assert.Equal(t, "", cfg.Column(Field(42)))
}

func TestFieldConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     FieldConfig
		wantErr []string
	}{
		{
			name: "fully bound",
			cfg: FieldConfig{
				Source: "prices",
				Open:   "o",
				High:   "h",
				Low:    "l",
				Close:  "c",
				Date:   "d",
				Volume: "v",
				Symbol: "s",
			},
		},
		{
			name: "missing source and symbol",
			cfg: FieldConfig{
				Open:   "o",
				High:   "h",
				Low:    "l",
				Close:  "c",
				Date:   "d",
				Volume: "v",
			},
			wantErr: []string{
				"source element cannot be an empty string",
				"no column bound to the symbol field",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if len(test.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			for _, want := range test.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("expected error to contain %q, got %v", want, err)
				}
			}
		})
	}
}
