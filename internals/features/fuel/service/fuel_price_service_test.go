package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeFuelType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"jet_a", "JET_A"},
		{"JET-A", "JET_A"},
		{"jet a", "JET_A"},
		{"  Jet A  ", "JET_A"},
		{"JETA", "JET_A"},
		{"jet a-1", "JET_A"},
		{"JETA1", "JET_A"},
		{"100LL", "100LL"},
		{"avgas 100ll", "AVGAS_100LL"},
		{"SAF", "SAF"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeFuelType(tc.in), "input %q", tc.in)
	}
}
