package entity

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var nameKeyPattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

func TestNormalizeNameKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing space", input: "Raka ", want: "raka"},
		{name: "punctuation", input: "Dr. Nadya!!", want: "dr_nadya"},
		{name: "whitespace only", input: "  ", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "symbols only", input: "!!!", want: ""},
		{name: "mixed runs", input: "--Budi & Sari--", want: "budi_sari"},
		{name: "digits", input: "Guest 42", want: "guest_42"},
		{name: "non ascii letters", input: "Zoë Ångström", want: "zo_ngstr_m"},
		{name: "tabs and newlines", input: "\tAyu\nLestari\t", want: "ayu_lestari"},
		{name: "already normalized", input: "dr_nadya", want: "dr_nadya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeNameKey(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.Regexp(t, nameKeyPattern, got)
			}
		})
	}
}

func TestNormalizeNameKey_Deterministic(t *testing.T) {
	inputs := []string{"Raka", "  Dr. Nadya!! ", "日本語", strings.Repeat("ab ", 100), "\x00\xff"}

	for _, input := range inputs {
		first := NormalizeNameKey(input)
		for range 5 {
			assert.Equal(t, first, NormalizeNameKey(input))
		}
		if first != "" {
			assert.Regexp(t, nameKeyPattern, first)
		}
	}
}

func TestWishRecordID(t *testing.T) {
	assert.Equal(t, "w1_dr_nadya", WishRecordID("w1", "dr_nadya"))
}

func TestWishDedupKey(t *testing.T) {
	assert.Equal(t, "nadya", (&Wish{Name: "Someone Else", NameKey: "nadya"}).DedupKey())
	assert.Equal(t, "dr_nadya", (&Wish{Name: "Dr. Nadya"}).DedupKey())
	assert.Empty(t, (&Wish{Name: "???"}).DedupKey())
}
