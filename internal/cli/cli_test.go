package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/endfed/internal/bands"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want Options
	}{
		{
			name: "single band",
			args: []string{"40"},
			want: Options{Bands: []bands.Band{40}, Output: DefaultOutput},
		},
		{
			name: "flags first",
			args: []string{"-f", "-m", "40", "20", "15", "10"},
			want: Options{Bands: []bands.Band{40, 20, 15, 10}, Fullwave: true, Metric: true, Output: DefaultOutput},
		},
		{
			name: "selection order kept",
			args: []string{"10", "160", "40"},
			want: Options{Bands: []bands.Band{10, 160, 40}, Output: DefaultOutput},
		},
		{
			name: "interleaved flags",
			args: []string{"40", "-f", "20", "-o", "out.svg", "15"},
			want: Options{Bands: []bands.Band{40, 20, 15}, Fullwave: true, Output: "out.svg"},
		},
		{
			name: "trailing flags",
			args: []string{"6", "-m", "-v", "-config", "render.jsonc"},
			want: Options{Bands: []bands.Band{6}, Metric: true, Verbose: true, ConfigPath: "render.jsonc", Output: DefaultOutput},
		},
		{
			name: "duplicates kept",
			args: []string{"40", "40"},
			want: Options{Bands: []bands.Band{40, 40}, Output: DefaultOutput},
		},
		{
			name: "version without bands",
			args: []string{"-version"},
			want: Options{ShowVersion: true, Output: DefaultOutput},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.args, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no args", nil, ErrEmptySelection},
		{"flags only", []string{"-f", "-m"}, ErrEmptySelection},
		{"unknown band", []string{"99"}, bands.ErrUnknownBand},
		{"unknown after valid", []string{"40", "41"}, bands.ErrUnknownBand},
		{"word", []string{"forty"}, ErrInvalidToken},
		{"float", []string{"40.0"}, ErrInvalidToken},
		{"empty token", []string{""}, ErrInvalidToken},
		{"help", []string{"-h"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestParse_UnknownFlag(t *testing.T) {
	_, err := Parse([]string{"-x", "40"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestParse_TokenInError(t *testing.T) {
	_, err := Parse([]string{"40", "abc"})
	require.Error(t, err)
	assert.Equal(t, `invalid band token: "abc"`, err.Error())
}

func TestUsage(t *testing.T) {
	var buf bytes.Buffer
	Usage(&buf, "endfed")

	want := "Usage: endfed [-f] [-m] band...\n" +
		"  -f, graph fullwave (halfwave default).\n" +
		"  -m, metric lengths.\n" +
		"  band, integer in 160,80,60,40,30,20,17,15,12,10,6 m\n" +
		"  E.g., endfed 40 20 15 10\n"
	assert.True(t, strings.HasPrefix(buf.String(), want), "usage:\n%s", buf.String())
	assert.Contains(t, buf.String(), "-o FILE")
	assert.Contains(t, buf.String(), "-version")
}
