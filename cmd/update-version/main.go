package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/databricks/databricks-jdbc/internal/cli"
)

const (
	cmdName = "update-version"

	shortDesc = "Propagate a release version across the JDBC driver sources."
	longDesc  = `Propagate a release version across the JDBC driver sources.

The version must have the form majorVersion.minorVersion.buildVersion-qualifier,
e.g. 1.2.3-oss. It is read from the VERSION environment variable unless given
as an argument, and written to:

  - the VERSION constant in DriverUtil.java
  - the databricks-jdbc <version> element in pom.xml
  - the user agent assertions in DatabricksConnectionTest.java and
    DatabricksHttpClientTest.java
  - the driver version assertion in DatabricksDatabaseMetaDataTest.java

Files are rewritten one at a time, in that order. The first error stops the
run; files already rewritten are not restored.
`
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)
	err := cmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
