package rewrite_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databricks/databricks-jdbc/pkg/rewrite"
)

const driverUtil = `package com.databricks.jdbc.common.util;

public class DriverUtil {
  private static final String VERSION = "1.2.3-oss";

  public static String getVersion() {
    return VERSION;
  }
}
`

const pom = `<project>
  <groupId>com.databricks</groupId>
  <artifactId>databricks-jdbc</artifactId>
  <!-- This value may be modified by a release script to reflect the current version of the driver. -->
  <version>1.0.0-oss</version>
  <dependencies>
    <dependency>
      <groupId>org.apache.arrow</groupId>
      <artifactId>arrow-vector</artifactId>
      <version>1.0.0-oss</version>
    </dependency>
  </dependencies>
</project>
`

func TestRuleApply(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		rule    *rewrite.Rule
		input   string
		version string
		want    string
		n       int
	}{
		"driver constant": {
			rule:    rewrite.DriverConstant(),
			input:   driverUtil,
			version: "9.9.9-beta",
			want: `package com.databricks.jdbc.common.util;

public class DriverUtil {
  private static final String VERSION = "9.9.9-beta";

  public static String getVersion() {
    return VERSION;
  }
}
`,
			n: 1,
		},
		"driver constant empty value": {
			rule:    rewrite.DriverConstant(),
			input:   `private static final String VERSION = "";`,
			version: "1.0.0-oss",
			want:    `private static final String VERSION = "1.0.0-oss";`,
			n:       1,
		},
		"driver constant missing": {
			rule:    rewrite.DriverConstant(),
			input:   `private static final String NAME = "x";`,
			version: "1.0.0-oss",
			want:    `private static final String NAME = "x";`,
			n:       0,
		},
		"build descriptor adjacent": {
			rule:    rewrite.BuildDescriptor(),
			input:   `<artifactId>databricks-jdbc</artifactId><version>1.0.0-oss</version><version>1.0.0-oss</version>`,
			version: "2.0.0-oss",
			want:    `<artifactId>databricks-jdbc</artifactId><version>2.0.0-oss</version><version>1.0.0-oss</version>`,
			n:       1,
		},
		"build descriptor with comment": {
			rule:    rewrite.BuildDescriptor(),
			input:   pom,
			version: "2.0.0-oss",
			want: `<project>
  <groupId>com.databricks</groupId>
  <artifactId>databricks-jdbc</artifactId>
  <!-- This value may be modified by a release script to reflect the current version of the driver. -->
  <version>2.0.0-oss</version>
  <dependencies>
    <dependency>
      <groupId>org.apache.arrow</groupId>
      <artifactId>arrow-vector</artifactId>
      <version>1.0.0-oss</version>
    </dependency>
  </dependencies>
</project>
`,
			n: 1,
		},
		"build descriptor first occurrence only": {
			rule: rewrite.BuildDescriptor(),
			input: `<artifactId>databricks-jdbc</artifactId>
<version>1.0.0-oss</version>
<artifactId>databricks-jdbc</artifactId>
<version>1.0.0-oss</version>`,
			version: "2.0.0-oss",
			want: `<artifactId>databricks-jdbc</artifactId>
<version>2.0.0-oss</version>
<artifactId>databricks-jdbc</artifactId>
<version>1.0.0-oss</version>`,
			n: 1,
		},
		"build descriptor other artifact": {
			rule:    rewrite.BuildDescriptor(),
			input:   `<artifactId>databricks-sdk</artifactId><version>1.0.0-oss</version>`,
			version: "2.0.0-oss",
			want:    `<artifactId>databricks-sdk</artifactId><version>1.0.0-oss</version>`,
			n:       0,
		},
		"user agent assertion": {
			rule:    rewrite.UserAgentAssertion(),
			input:   `    assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/1.0.0-oss"));` + "\n",
			version: "2.0.0-oss",
			want:    `    assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/2.0.0-oss"));` + "\n",
			n:       1,
		},
		"user agent assertion every occurrence": {
			rule: rewrite.UserAgentAssertion(),
			input: `assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/0.9.1-oss"));
assertTrue(userAgent.contains("Java/THttpClient"));
assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/0.0.0"));`,
			version: "2.0.0-oss",
			want: `assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/2.0.0-oss"));
assertTrue(userAgent.contains("Java/THttpClient"));
assertTrue(userAgent.contains("DatabricksJDBCDriverOSS/2.0.0-oss"));`,
			n: 2,
		},
		"metadata assertion with result": {
			rule:    rewrite.MetadataAssertion(),
			input:   `assertEquals("1.0.0-oss", result);`,
			version: "2.0.0-oss",
			want:    `assertEquals("2.0.0-oss", result);`,
			n:       1,
		},
		"metadata assertion bare": {
			rule:    rewrite.MetadataAssertion(),
			input:   `assertEquals("1.0.0-oss");`,
			version: "2.0.0-oss",
			want:    `assertEquals("2.0.0-oss");`,
			n:       1,
		},
		"metadata assertion other args": {
			rule:    rewrite.MetadataAssertion(),
			input:   `assertEquals("1.0.0-oss", other);`,
			version: "2.0.0-oss",
			want:    `assertEquals("1.0.0-oss", other);`,
			n:       0,
		},
		"dollar is literal": {
			rule:    rewrite.MetadataAssertion(),
			input:   `assertEquals("1.0.0-oss", result);`,
			version: "$1",
			want:    `assertEquals("$1", result);`,
			n:       1,
		},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, n := tc.rule.Apply([]byte(tc.input), tc.version)
			assert.Equal(t, tc.want, string(got))
			assert.Equal(t, tc.n, n)
		})
	}
}

func TestRuleFind(t *testing.T) {
	t.Parallel()

	v, ok := rewrite.DriverConstant().Find([]byte(driverUtil))
	require.True(t, ok)
	assert.Equal(t, "1.2.3-oss", v)

	v, ok = rewrite.BuildDescriptor().Find([]byte(pom))
	require.True(t, ok)
	assert.Equal(t, "1.0.0-oss", v)

	_, ok = rewrite.UserAgentAssertion().Find([]byte(pom))
	assert.False(t, ok)
}

func TestNewRule(t *testing.T) {
	t.Parallel()

	_, err := rewrite.NewRule("bad", `(`, 0)
	require.Error(t, err)

	_, err = rewrite.NewRule("one group", `(a)b`, 0)
	require.Error(t, err)

	r, err := rewrite.NewRule("custom", `(version=")[^"]*(")`, 0)
	require.NoError(t, err)

	got, n := r.Apply([]byte(`version="1" version="2"`), "3")
	assert.Equal(t, `version="3" version="3"`, string(got))
	assert.Equal(t, 2, n)
}

func TestRuleOptionalGroup(t *testing.T) {
	t.Parallel()

	r, err := rewrite.NewRule("optional", `(a)?b(c)`, 0)
	require.NoError(t, err)

	got, n := r.Apply([]byte("bc abc"), "X")
	assert.Equal(t, "bc aXc", string(got))
	assert.Equal(t, 1, n)

	got, n = r.Apply([]byte("bc"), "X")
	assert.Equal(t, "bc", string(got))
	assert.Zero(t, n)

	v, ok := r.Find([]byte("bc abc"))
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = r.Find([]byte("bc"))
	assert.False(t, ok)
}

func TestRules(t *testing.T) {
	t.Parallel()

	rules := rewrite.Rules()
	assert.Len(t, rules, 4)

	for name, r := range rules {
		assert.Equal(t, name, r.Name)
	}
}
