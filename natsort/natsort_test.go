package natsort_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theoremus-urban-solutions/venuefinder/natsort"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "LT17", b: "LT17", want: 0},
		{name: "case folds", a: "lt17", b: "LT17", want: 0},
		{name: "numeric run by value", a: "LT2", b: "LT17", want: -1},
		{name: "numeric run by value reversed", a: "LT17", b: "lt2", want: 1},
		{name: "leading zeros ignored", a: "S11-0302", b: "S11-302", want: 0},
		{name: "punctuation only separates", a: "LT-1", b: "LT1", want: 0},
		{name: "letters before longer letters", a: "A", b: "AB", want: -1},
		{name: "prefix sorts first", a: "LT", b: "LT1", want: -1},
		{name: "digit run before letter run", a: "1A", b: "A1", want: -1},
		{name: "letter run after digit run", a: "LT A", b: "LT1", want: 1},
		{name: "very long numbers do not overflow", a: "X99999999999999999999998", b: "X99999999999999999999999", want: -1},
		{name: "empty strings", a: "", b: "", want: 0},
		{name: "empty before anything", a: "", b: "0", want: -1},
		{name: "only punctuation equals empty", a: "/-", b: "", want: 0},
		{name: "non ascii letters fold", a: "Über1", b: "über2", want: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, natsort.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, natsort.Compare(tt.b, tt.a), "comparison must be antisymmetric")
		})
	}
}

func TestLessAndEqual(t *testing.T) {
	assert.True(t, natsort.Less("A1", "a2"))
	assert.False(t, natsort.Less("a2", "A1"))
	assert.False(t, natsort.Less("LT1", "lt1"))
	assert.True(t, natsort.Equal("LT1", "lt1"))
	assert.False(t, natsort.Equal("LT1", "LT10"))
}

func TestCompare_SortsVenueCodes(t *testing.T) {
	ids := []string{"S11-0302", "lt2", "LT17", "CQT/SR0622", "LT1", "AS6-0333"}
	slices.SortStableFunc(ids, natsort.Compare)
	assert.Equal(t, []string{"AS6-0333", "CQT/SR0622", "LT1", "lt2", "LT17", "S11-0302"}, ids)

	mixed := []string{"a2", "A1", "b1", "B2"}
	slices.SortStableFunc(mixed, natsort.Compare)
	assert.Equal(t, []string{"A1", "a2", "b1", "B2"}, mixed)
}

func TestCompare_Transitive(t *testing.T) {
	ids := []string{"B2", "b10", "A1", "a01", "A-1", "LT", "LT1", "1", "10", "", "Z", "z9"}
	for _, a := range ids {
		for _, b := range ids {
			for _, c := range ids {
				if natsort.Compare(a, b) <= 0 && natsort.Compare(b, c) <= 0 {
					assert.LessOrEqual(t, natsort.Compare(a, c), 0, "%q <= %q <= %q", a, b, c)
				}
			}
		}
	}
}
