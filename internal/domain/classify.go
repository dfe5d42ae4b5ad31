package domain

// Shift_JIS double-byte sequences use a lead byte in 0x81–0x9F or 0xE0–0xFC
// followed by a trail byte in 0x40–0xFC excluding 0x7F. The classifier
// counts how much of the non-ASCII content forms such pairs.

// shiftJISRatioThreshold is the minimum fraction of non-ASCII bytes that
// must form valid double-byte sequences for a SHIFT_JIS verdict.
const shiftJISRatioThreshold = 0.9

func isLeadByte(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

func isTrailByte(b byte) bool {
	return b >= 0x40 && b <= 0xFC && b != 0x7F
}

// ClassifyBytes classifies a raw byte buffer without any external detector.
// Pure ASCII (and empty) buffers are OTHER with confidence 1.0: they need no
// conversion regardless of what encoding produced them. Buffers whose high
// bytes mostly pair up as Shift_JIS sequences are SHIFT_JIS with the pairing
// ratio as confidence. Anything else is UNKNOWN with no confidence.
func ClassifyBytes(data []byte) Detection {
	if len(data) == 0 {
		return Detection{Encoding: EncodingOther, Confidence: Conf(1.0)}
	}

	var pairBytes, highBytes int
	for i := 0; i < len(data); {
		b := data[i]
		if b < 0x80 {
			i++
			continue
		}
		if isLeadByte(b) && i+1 < len(data) && isTrailByte(data[i+1]) {
			pairBytes += 2
			highBytes += 2
			i += 2
			continue
		}
		highBytes++
		i++
	}

	if highBytes == 0 {
		return Detection{Encoding: EncodingOther, Confidence: Conf(1.0)}
	}

	ratio := float64(pairBytes) / float64(highBytes)
	if ratio >= shiftJISRatioThreshold {
		return Detection{Encoding: EncodingShiftJIS, Confidence: Conf(ratio)}
	}
	return Detection{Encoding: EncodingUnknown}
}

// ValidShiftJIS reports whether every byte of data belongs to a well-formed
// Shift_JIS sequence: ASCII, half-width katakana (0xA1–0xDF), or a complete
// lead/trail pair. Used as the strict pre-check before conversion, since the
// x/text decoder substitutes U+FFFD instead of failing on malformed input.
func ValidShiftJIS(data []byte) bool {
	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b < 0x80:
			i++
		case b >= 0xA1 && b <= 0xDF:
			i++
		case isLeadByte(b):
			if i+1 >= len(data) || !isTrailByte(data[i+1]) {
				return false
			}
			i += 2
		default:
			return false
		}
	}
	return true
}
