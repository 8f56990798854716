package relver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
	"github.com/databricks/databricks-jdbc/pkg/relver"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  bool
	}{
		"oss qualifier":       {input: "1.2.3-oss", want: true},
		"multi digit":         {input: "10.20.300-beta2", want: true},
		"zeros":               {input: "0.0.0-0", want: true},
		"upper qualifier":     {input: "2.0.0-RC1", want: true},
		"empty":               {input: "", want: false},
		"missing qualifier":   {input: "1.2.3", want: false},
		"empty qualifier":     {input: "1.2.3-", want: false},
		"two segments":        {input: "1.2-oss", want: false},
		"four segments":       {input: "1.2.3.4-oss", want: false},
		"non numeric":         {input: "1.x.3-oss", want: false},
		"v prefix":            {input: "v1.2.3-oss", want: false},
		"trailing chars":      {input: "1.2.3-oss ", want: false},
		"trailing newline":    {input: "1.2.3-oss\n", want: false},
		"dotted qualifier":    {input: "1.2.3-oss.1", want: false},
		"dashed qualifier":    {input: "1.2.3-oss-1", want: false},
		"build metadata":      {input: "1.2.3-oss+abc", want: false},
		"leading whitespace":  {input: " 1.2.3-oss", want: false},
		"non ascii qualifier": {input: "1.2.3-ößs", want: false},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, relver.Validate(tc.input))
		})
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	v, err := relver.Parse("1.12.3-oss")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, uint64(12), v.Minor())
	assert.Equal(t, uint64(3), v.Patch())
	assert.Equal(t, "oss", v.Qualifier())
	assert.Equal(t, "1.12.3-oss", v.String())

	_, err = relver.Parse("bad")
	require.ErrorIs(t, err, bumperrors.ErrInvalidVersion)

	_, err = relver.Parse("99999999999999999999.0.0-oss")
	require.ErrorIs(t, err, bumperrors.ErrInvalidVersion)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	require.NoError(t, relver.Check("1.2.3-oss"))
	require.NoError(t, relver.Check("18446744073709551616.0.0-oss"))

	err := relver.Check("1.2.3")
	require.ErrorIs(t, err, bumperrors.ErrInvalidVersion)
	assert.Contains(t, err.Error(), relver.FormatHint)
}

func TestCompare(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		a, b string
		want int
	}{
		"equal":           {a: "1.0.0-oss", b: "1.0.0-oss", want: 0},
		"patch":           {a: "1.0.1-oss", b: "1.0.0-oss", want: 1},
		"minor numeric":   {a: "1.9.0-oss", b: "1.10.0-oss", want: -1},
		"major":           {a: "2.0.0-oss", b: "1.99.99-oss", want: 1},
		"qualifier order": {a: "1.0.0-alpha", b: "1.0.0-beta", want: -1},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := relver.MustParse(tc.a)
			b := relver.MustParse(tc.b)
			assert.Equal(t, tc.want, a.Compare(b))
			assert.Equal(t, tc.want < 0, a.LessThan(b))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Parallel()

	env := func(vals map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vals[k]

			return v, ok
		}
	}

	v, err := relver.FromEnv(env(map[string]string{"VERSION": "1.0.0-oss"}))
	require.NoError(t, err)
	assert.Equal(t, "1.0.0-oss", v)

	v, err = relver.FromEnv(env(map[string]string{"VERSION": "bad"}))
	require.NoError(t, err)
	assert.Equal(t, "bad", v)

	_, err = relver.FromEnv(env(map[string]string{}))
	require.ErrorIs(t, err, bumperrors.ErrMissingVersion)

	_, err = relver.FromEnv(env(map[string]string{"VERSION": ""}))
	require.ErrorIs(t, err, bumperrors.ErrMissingVersion)
}
