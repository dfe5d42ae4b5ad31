// Package detector adapts the chardet statistical charset detector to the
// domain.CharsetDetector port.
package detector

import (
	"github.com/saintfish/chardet"

	"github.com/jisconv/jisconv/internal/domain"
)

// ChardetDetector implements domain.CharsetDetector using chardet's
// text-charset recognizers.
type ChardetDetector struct {
	det *chardet.Detector
}

func New() *ChardetDetector {
	return &ChardetDetector{det: chardet.NewTextDetector()}
}

// Detect returns chardet's best guess mapped to the internal enum. chardet
// reports confidence as an integer percentage; it is scaled to [0,1]. When
// chardet cannot classify the buffer at all, the error is returned so the
// caller can fall back to the byte classifier.
func (c *ChardetDetector) Detect(data []byte) (domain.Detection, error) {
	result, err := c.det.DetectBest(data)
	if err != nil {
		return domain.Detection{Encoding: domain.EncodingUnknown}, err
	}

	conf := float64(result.Confidence) / 100.0
	if conf < 0 {
		conf = 0
	}
	if conf > 1 {
		conf = 1
	}

	return domain.Detection{
		Encoding:   domain.EncodingFromName(result.Charset),
		Confidence: domain.Conf(conf),
	}, nil
}
