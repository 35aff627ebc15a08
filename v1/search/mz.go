package search

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Canonical m/z encoding shared by the indexing and the query path.
// Changing either value requires reindexing every annotation document.
const (
	MzWidth     = 10
	MzPrecision = 4

	// MaxMz is the exclusive upper bound of encodable m/z values,
	// 10^(MzWidth-MzPrecision-1).
	MaxMz = 1e5
)

// ErrMzOutOfRange is returned for m/z values the canonical encoding cannot
// represent in MzWidth characters.
var ErrMzOutOfRange = errors.New("m/z out of range")

// ValidMz returns ErrMzOutOfRange unless mz encodes to exactly MzWidth
// characters: a finite non-negative number that stays below MaxMz after
// rounding.
func ValidMz(mz float64) error {
	if math.IsNaN(mz) || math.IsInf(mz, 0) || math.Signbit(mz) {
		return fmt.Errorf("%w: %v must be in [0, %v)", ErrMzOutOfRange, mz, MaxMz)
	}
	if len(FormatMz(mz)) != MzWidth {
		return fmt.Errorf("%w: %v must be in [0, %v)", ErrMzOutOfRange, mz, MaxMz)
	}
	return nil
}

// FormatMz renders mz as a zero-padded decimal string of MzWidth characters
// with MzPrecision fractional digits, e.g. 100 -> "00100.0000".
// Values rejected by ValidMz do not keep the width.
func FormatMz(mz float64) string {
	return fmt.Sprintf("%0*.*f", MzWidth, MzPrecision, mz)
}

func parseMz(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid m/z %q: %w", s, err)
	}
	return v, nil
}

// Mz is an m/z value that is stored in the index in its canonical string form.
// It unmarshals from either the canonical string or a plain JSON number.
type Mz float64

// String returns the canonical encoding.
func (m Mz) String() string {
	return FormatMz(float64(m))
}

// MarshalJSON implements json.Marshaler. It fails for values rejected by
// ValidMz.
func (m Mz) MarshalJSON() ([]byte, error) {
	if err := ValidMz(float64(m)); err != nil {
		return nil, err
	}
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Mz) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v, err := parseMz(s)
		if err != nil {
			return err
		}
		*m = Mz(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("m/z must be a string or a number: %w", err)
	}
	*m = Mz(f)
	return nil
}
