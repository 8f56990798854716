package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/databricks/databricks-jdbc/internal/version"
	"github.com/databricks/databricks-jdbc/pkg/log"
	"github.com/databricks/databricks-jdbc/pkg/paths"
	"github.com/databricks/databricks-jdbc/pkg/propagate"
	"github.com/databricks/databricks-jdbc/pkg/relver"
)

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrLogHandlerFailed = errors.New("log handler failed")
)

// The project root assumed when it cannot be discovered, i.e. the tool is
// run from a directory one level below the project.
const fallbackRoot = ".."

const rootExample = `  # Update every file to the version in $VERSION
  VERSION=1.2.3-oss update-version

  # Same, passing the version as an argument
  update-version 1.2.3-oss

  # Show what would change without writing anything
  update-version 1.2.3-oss --dry-run

  # Fail if any file does not contain the expected version pattern
  update-version 1.2.3-oss --strict

  # Point a target at a different file
  update-version 1.2.3-oss --file pom=jdbc/pom.xml`

type rootArgs struct {
	logger *slog.Logger
}

// NewRootCmd returns the root command, which propagates the release version
// given as the only argument, or through the VERSION environment variable.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	args := &rootArgs{logger: slog.Default()}

	cmd := &cobra.Command{
		Use:           name + " [version]",
		Short:         shortDesc,
		Long:          longDesc,
		Example:       rootExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.String(),
	}

	cmd.PersistentFlags().String("log_level", "info", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")
	cmd.PersistentFlags().String("root", "", "Project root (default: closest directory containing pom.xml)")
	cmd.PersistentFlags().StringToString("file", nil, "Override a target path, as name=path (repeatable)")

	if err := cmd.MarkPersistentFlagDirname("root"); err != nil {
		panic(err)
	}

	cmd.Flags().Bool("dry-run", false, "Report changes without writing any file")
	cmd.Flags().Bool("strict", false, "Fail when a file does not contain the expected version pattern")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		args.logger = slog.New(h)

		return nil
	}

	cmd.RunE = func(cc *cobra.Command, posArgs []string) error {
		flags := cc.Flags()

		var merr error

		dryRun, err := flags.GetBool("dry-run")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		strict, err := flags.GetBool("strict")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
		}

		v, err := targetVersion(posArgs)
		if err != nil {
			return err
		}

		if err := relver.Check(v); err != nil {
			return err
		}

		root, targets, err := args.plan(cc)
		if err != nil {
			return err
		}

		args.logger.Debug("propagating version", slog.String("version", v), slog.String("root", root))

		p := propagate.New(root,
			propagate.WithLogger(args.logger),
			propagate.WithTargets(targets),
			propagate.WithDryRun(dryRun),
			propagate.WithStrict(strict),
		)

		report, runErr := p.Run(cc.Context(), v)

		out := cc.OutOrStdout()
		printSummary(out, report, useStyles(out))

		if runErr != nil {
			return runErr
		}

		if dryRun {
			fmt.Fprintf(out, "Version would be updated to %s\n", v)
		} else {
			fmt.Fprintf(out, "Version updated to %s\n", v)
		}

		return nil
	}

	cmd.AddCommand(NewCurrentCmd(args))
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// targetVersion returns the version argument, or the value of
// [relver.EnvVar] when no argument was given.
func targetVersion(posArgs []string) (string, error) {
	if len(posArgs) > 0 {
		return posArgs[0], nil
	}

	return relver.FromEnv(os.LookupEnv)
}

// plan resolves the project root and the targets to rewrite from the
// persistent flags.
func (a *rootArgs) plan(cc *cobra.Command) (string, []propagate.Target, error) {
	flags := cc.Flags()

	var merr error

	root, err := flags.GetString("root")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	files, err := flags.GetStringToString("file")
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidArgument, merr)
	}

	targets, err := propagate.OverridePaths(propagate.DefaultTargets(), files)
	if err != nil {
		return "", nil, fmt.Errorf("%w: --file: %w", ErrInvalidArgument, err)
	}

	if root != "" {
		return root, targets, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", nil, fmt.Errorf("get working directory: %w", err)
	}

	root, err = paths.FindProjectRoot(wd)
	if err != nil {
		a.logger.Debug("project root not found, using parent directory",
			slog.String("dir", wd),
			slog.Any("err", err),
		)

		return fallbackRoot, targets, nil
	}

	return root, targets, nil
}
