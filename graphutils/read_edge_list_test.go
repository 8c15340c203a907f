package graphutils

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, input string) ([]Edge, error) {
	t.Helper()
	var got []Edge
	err := ReadEdgeList(strings.NewReader(input), func(u, v int32) {
		got = append(got, Edge{u, v})
	})
	return got, err
}

func TestReadEdgeList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Edge
	}{
		{"one pair per line", "0 1\n1 2\n", []Edge{{0, 1}, {1, 2}}},
		{"tabs and blank lines", "0\t1\n\n  2   3  \n", []Edge{{0, 1}, {2, 3}}},
		{"comments skipped", "# FromNodeId ToNodeId\n% mm header\n4 5\n", []Edge{{4, 5}}},
		{"negative ids passed through", "-1 2\n3 -4\n", []Edge{{-1, 2}, {3, -4}}},
		{"pair spans lines", "7\n8 9 10\n", []Edge{{7, 8}, {9, 10}}},
		{"no trailing newline", "1 2", []Edge{{1, 2}}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := collect(t, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadEdgeList_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"non numeric", "0 1\n1 x\n"},
		{"float", "0 1.5\n"},
		{"overflow", "0 99999999999\n"},
		{"unpaired", "0 1\n2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.input)
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestReadEdgeList_ReaderError(t *testing.T) {
	boom := errors.New("boom")
	err := ReadEdgeList(iotest.ErrReader(boom), func(u, v int32) {})

	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrMalformedInput)
}
