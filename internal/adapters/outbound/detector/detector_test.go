package detector_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jisconv/jisconv/internal/adapters/outbound/detector"
	"github.com/jisconv/jisconv/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChardetDetector_UTF8WithBOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("package main\n")...)

	det, err := detector.New().Detect(data)
	require.NoError(t, err)

	assert.Equal(t, domain.EncodingOther, det.Encoding)
	require.NotNil(t, det.Confidence)
	assert.Equal(t, 1.0, *det.Confidence)
}

func TestChardetDetector_ShiftJIS(t *testing.T) {
	// "日本語のテキストです。" in Shift_JIS, repeated so the statistical
	// recognizers have enough signal.
	sentence := []byte{
		0x93, 0xFA, 0x96, 0x7B, 0x8C, 0xEA, 0x82, 0xCC,
		0x83, 0x65, 0x83, 0x4C, 0x83, 0x58, 0x83, 0x67,
		0x82, 0xC5, 0x82, 0xB7, 0x81, 0x42,
	}
	data := bytes.Repeat(sentence, 50)

	det, err := detector.New().Detect(data)
	require.NoError(t, err)

	assert.Equal(t, domain.EncodingShiftJIS, det.Encoding)
	require.NotNil(t, det.Confidence)
	assert.Greater(t, *det.Confidence, 0.0)
	assert.LessOrEqual(t, *det.Confidence, 1.0)
}

func TestChardetDetector_ConfidenceInRange(t *testing.T) {
	det, err := detector.New().Detect([]byte(strings.Repeat("plain ascii text. ", 40)))
	if err != nil {
		// chardet may refuse to guess on featureless input; that is the
		// fallback path, not a failure.
		return
	}
	require.NotNil(t, det.Confidence)
	assert.GreaterOrEqual(t, *det.Confidence, 0.0)
	assert.LessOrEqual(t, *det.Confidence, 1.0)
}
