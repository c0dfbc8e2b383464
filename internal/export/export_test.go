package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/eepdump/internal/eepmap/ar9285/testimage"
	"github.com/retroenv/eepdump/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

type header struct {
	Length  uint16   `json:"length"`
	Version uint16   `json:"version"`
	Mac     [2]uint8 `json:"macAddr"`
}

func TestWrite(t *testing.T) {
	h := header{Length: 376, Version: 0xE003, Mac: [2]uint8{0x00, 0x03}}

	tests := []struct {
		format   string
		expected string
	}{
		{
			format:   options.FormatJSON,
			expected: "{\n  \"length\": 376,\n  \"version\": 57347,\n  \"macAddr\": [\n    0,\n    3\n  ]\n}\n",
		},
		{
			format:   options.FormatYAML,
			expected: "length: 376\nmacAddr:\n- 0\n- 3\nversion: 57347\n",
		},
		{
			format:   "YAML",
			expected: "length: 376\nmacAddr:\n- 0\n- 3\nversion: 57347\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, Write(&buf, tt.format, h))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, options.FormatText, header{})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Equal(t, 0, buf.Len())
}

func TestWrite_EEPROM(t *testing.T) {
	eep := testimage.Sample()

	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, options.FormatJSON, &eep))

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	base, ok := decoded["baseEepHeader"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, float64(376), base["length"])

	buf.Reset()
	assert.NoError(t, Write(&buf, options.FormatYAML, &eep))
	out := buf.String()
	assert.True(t, strings.Contains(out, "baseEepHeader:\n"))
	assert.True(t, strings.Contains(out, "  binBuildNumber: 235077888\n"))
	assert.True(t, strings.Contains(out, "modalHeader:\n"))
}
