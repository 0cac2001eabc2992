package remapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-Re2906/hardhat/remapping"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		line    string
		want    remapping.Raw
		wantErr bool
	}{
		{
			name: "prefix and target only",
			line: "foo/=bar/",
			want: remapping.Raw{Context: "", Prefix: "foo/", Target: "bar/"},
		},
		{
			name: "context prefix and target",
			line: "context/:prefix/=target/",
			want: remapping.Raw{Context: "context/", Prefix: "prefix/", Target: "target/"},
		},
		{
			name:    "missing equals",
			line:    "foo/bar",
			wantErr: true,
		},
		{
			name:    "empty prefix",
			line:    "=bar/",
			wantErr: true,
		},
		{
			name:    "empty target",
			line:    "foo/=",
			wantErr: true,
		},
		{
			name: "npm target missing trailing slash is still syntactically fine",
			line: "foo/=node_modules/foo",
			want: remapping.Raw{Context: "", Prefix: "foo/", Target: "node_modules/foo"},
		},
		{
			name: "colon after equals belongs to target, not context",
			line: "foo/=bar:baz/",
			want: remapping.Raw{Context: "", Prefix: "foo/", Target: "bar:baz/"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := remapping.Parse(tc.line)
			if tc.wantErr {
				require.Error(t, err)
				var syntaxErr *remapping.SyntaxError
				require.ErrorAs(t, err, &syntaxErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTrimLine(t *testing.T) {
	cases := []struct {
		raw     string
		wantLn  string
		wantOK  bool
	}{
		{raw: "  foo/=bar/  \t", wantLn: "foo/=bar/", wantOK: true},
		{raw: "", wantOK: false},
		{raw: "   \t", wantOK: false},
		{raw: "# a comment", wantOK: false},
		{raw: "  # indented comment", wantOK: false},
		{raw: "foo/=bar/", wantLn: "foo/=bar/", wantOK: true},
	}

	for _, tc := range cases {
		ln, ok := remapping.TrimLine(tc.raw)
		assert.Equal(t, tc.wantOK, ok, "raw=%q", tc.raw)
		if tc.wantOK {
			assert.Equal(t, tc.wantLn, ln)
		}
	}
}
