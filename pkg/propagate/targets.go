package propagate

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
	"github.com/databricks/databricks-jdbc/pkg/rewrite"
)

// Target names.
const (
	TargetDriverUtil     = "driver-util"
	TargetPOM            = "pom"
	TargetConnectionTest = "connection-test"
	TargetMetadataTest   = "metadata-test"
	TargetHTTPClientTest = "http-client-test"
)

// Target is a file and the rule that rewrites the version inside it.
type Target struct {
	Rule *rewrite.Rule
	Name string
	// Path is relative to the project root, unless absolute.
	Path string
}

// DefaultTargets returns the files of the JDBC driver project that carry the
// driver version, in the order they are rewritten.
func DefaultTargets() []Target {
	return []Target{
		{
			Name: TargetDriverUtil,
			Path: "src/main/java/com/databricks/jdbc/commons/util/DriverUtil.java",
			Rule: rewrite.DriverConstant(),
		},
		{
			Name: TargetPOM,
			Path: "pom.xml",
			Rule: rewrite.BuildDescriptor(),
		},
		{
			Name: TargetConnectionTest,
			Path: "src/test/java/com/databricks/jdbc/core/DatabricksConnectionTest.java",
			Rule: rewrite.UserAgentAssertion(),
		},
		{
			Name: TargetMetadataTest,
			Path: "src/test/java/com/databricks/jdbc/core/DatabricksDatabaseMetaDataTest.java",
			Rule: rewrite.MetadataAssertion(),
		},
		{
			Name: TargetHTTPClientTest,
			Path: "src/test/java/com/databricks/jdbc/client/http/DatabricksHttpClientTest.java",
			Rule: rewrite.UserAgentAssertion(),
		},
	}
}

// OverridePaths returns a copy of targets with the paths of the named targets
// replaced. Unknown names are an error.
func OverridePaths(targets []Target, overrides map[string]string) ([]Target, error) {
	out := slices.Clone(targets)

	for name, path := range overrides {
		i := slices.IndexFunc(out, func(t Target) bool { return t.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", bumperrors.ErrUnknownTarget, name)
		}

		out[i].Path = path
	}

	return out, nil
}

// TargetNames returns the names of targets in order.
func TargetNames(targets []Target) []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name)
	}

	return names
}

func (t Target) resolve(root string) string {
	if filepath.IsAbs(t.Path) {
		return t.Path
	}

	return filepath.Join(root, filepath.FromSlash(t.Path))
}
