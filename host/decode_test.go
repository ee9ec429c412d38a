package host

import (
	"errors"
	"testing"

	"github.com/dnldd/candleplugin/shared"
	"github.com/google/go-cmp/cmp"
	"github.com/peterldowns/testy/assert"
)

func TestDecodeConfig(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    shared.FieldConfig
		wantErr bool
	}{
		{
			name: "fully bound",
			payload: `{"source":"el-1","open":"el-1/o","high":"el-1/h","low":"el-1/l",` +
				`"close":"el-1/c","date":"el-1/d","volume":"el-1/v","symbol":"el-1/s"}`,
			want: shared.FieldConfig{
				Source: "el-1",
				Open:   "el-1/o",
				High:   "el-1/h",
				Low:    "el-1/l",
				Close:  "el-1/c",
				Date:   "el-1/d",
				Volume: "el-1/v",
				Symbol: "el-1/s",
			},
		},
		{
			name:    "partially bound",
			payload: `{"source":"el-1","open":"el-1/o","close":null,"title":"Prices","theme":{"dark":true}}`,
			want: shared.FieldConfig{
				Source: "el-1",
				Open:   "el-1/o",
			},
		},
		{
			name:    "column ids with path characters",
			payload: `{"date":"inode.abc|*?#"}`,
			want:    shared.FieldConfig{Date: "inode.abc|*?#"},
		},
		{
			name:    "empty object",
			payload: `{}`,
			want:    shared.FieldConfig{},
		},
		{
			name:    "multiple columns selected",
			payload: `{"source":"el-1","open":["el-1/o","el-1/x"]}`,
			wantErr: true,
		},
		{
			name:    "numeric binding",
			payload: `{"source":"el-1","date":7}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			payload: `["open"]`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			payload: `{"source":`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := DecodeConfig([]byte(test.payload))
			if test.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, shared.ErrInvalidPayload))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, test.want, cfg)
		})
	}
}

func TestDecodeElementData(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    shared.Store
		wantErr bool
	}{
		{
			name:    "columns of mixed values",
			payload: `{"o":[30,10.5,20],"d":[1704153600000,1706832000000,null],"s":["ABC","ABC","ABC"],"f":[true,false,true]}`,
			want: shared.Store{
				"o": shared.Column{30.0, 10.5, 20.0},
				"d": shared.Column{1704153600000.0, 1706832000000.0, nil},
				"s": shared.Column{"ABC", "ABC", "ABC"},
				"f": shared.Column{true, false, true},
			},
		},
		{
			name:    "empty columns",
			payload: `{"o":[],"inode.x":[]}`,
			want: shared.Store{
				"o":       shared.Column{},
				"inode.x": shared.Column{},
			},
		},
		{
			name:    "empty object",
			payload: `{}`,
			want:    shared.Store{},
		},
		{
			name:    "column is not an array",
			payload: `{"o":[1,2],"d":3}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			payload: `[1,2,3]`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			payload: `{"o":[1,2`,
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store, err := DecodeElementData([]byte(test.payload))
			if test.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, shared.ErrInvalidPayload))
				return
			}

			assert.NoError(t, err)
			if diff := cmp.Diff(test.want, store); diff != "" {
				t.Errorf("unexpected store (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPanelSchemaMultiple(t *testing.T) {
	entries := []PanelEntry{
		{Name: "source", Type: ElementKind},
		{Name: "dimensions", Type: ColumnKind, Source: "source", AllowMultiple: true},
	}

	schema, err := compileSchema(panelSchema(entries))
	assert.NoError(t, err)

	err = schema.Validate(map[string]interface{}{
		"source":     "el-1",
		"dimensions": []interface{}{"a", "b"},
	})
	assert.NoError(t, err)

	err = schema.Validate(map[string]interface{}{
		"dimensions": "a",
	})
	assert.Error(t, err)
}
