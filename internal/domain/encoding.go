package domain

import "strings"

// Encoding is the classification assigned to a file's byte content.
type Encoding string

const (
	EncodingShiftJIS Encoding = "SHIFT_JIS"
	EncodingOther    Encoding = "OTHER"
	EncodingUnknown  Encoding = "UNKNOWN"
)

// Detection is one detector's verdict on a byte buffer. Confidence is nil
// when the detector has no scoring mechanism for the result.
type Detection struct {
	Encoding   Encoding
	Confidence *float64
}

// Conf returns a pointer to v, for building Detection values inline.
func Conf(v float64) *float64 {
	return &v
}

// shiftJISAliases lists charset names that statistical detectors report for
// Shift_JIS content. Keys are lowercase with "-" and "_" stripped.
var shiftJISAliases = map[string]bool{
	"shiftjis":   true,
	"sjis":       true,
	"cp932":      true,
	"ms932":      true,
	"mskanji":    true,
	"windows31j": true,
	"xsjis":      true,
}

// EncodingFromName maps a detector-reported charset name to the internal
// enum. Any recognized Shift_JIS alias maps to SHIFT_JIS, an empty name maps
// to UNKNOWN, and everything else maps to OTHER.
func EncodingFromName(name string) Encoding {
	if name == "" {
		return EncodingUnknown
	}
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, "_", "")
	if shiftJISAliases[key] {
		return EncodingShiftJIS
	}
	return EncodingOther
}
