package application

import "github.com/jisconv/jisconv/internal/domain"

// DefaultMinConfidence is the threshold below which a statistical verdict is
// not trusted on its own and the byte classifier is consulted as well. The
// value is a tunable: 0.5 keeps chardet authoritative for clear cases while
// letting the heuristic rescue Shift_JIS files that chardet scores poorly.
// Override per project via min_confidence in .jisconv.yaml.
const DefaultMinConfidence = 0.5

// DetectService is the detection facade: it prefers the statistical detector
// when one is selected and falls back to the byte classifier when the
// detector is absent, fails, or reports low confidence.
type DetectService struct {
	stat          domain.CharsetDetector
	minConfidence float64
}

// NewDetectService builds the facade. stat may be nil, which selects the
// byte classifier for every file. The choice is made once at startup and
// never re-checked mid-run.
func NewDetectService(stat domain.CharsetDetector, minConfidence float64) *DetectService {
	return &DetectService{stat: stat, minConfidence: minConfidence}
}

// Detect classifies a byte buffer. Missing confidence from the statistical
// detector counts as 0.0, never as a fabricated score.
func (s *DetectService) Detect(data []byte) domain.Detection {
	if s.stat == nil {
		return domain.ClassifyBytes(data)
	}

	det, err := s.stat.Detect(data)
	if err != nil {
		return domain.ClassifyBytes(data)
	}

	if det.Encoding == domain.EncodingShiftJIS {
		return det
	}

	conf := 0.0
	if det.Confidence != nil {
		conf = *det.Confidence
	}
	if conf < s.minConfidence {
		// Low-confidence non-SJIS verdict: let the heuristic catch
		// Shift_JIS content the statistical model was unsure about.
		if h := domain.ClassifyBytes(data); h.Encoding == domain.EncodingShiftJIS {
			return h
		}
	}

	return det
}
