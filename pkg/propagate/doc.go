// Package propagate applies a release version to every file of the JDBC
// driver project that carries it.
//
// A [Propagator] walks an ordered list of [Target]s, each pairing a file
// path relative to the project root with a [rewrite.Rule]. Targets are
// applied one at a time; the first read or write failure stops the run and
// leaves earlier targets rewritten. A target whose rule matches nothing is
// reported as a warning, or as [bumperrors.ErrNoMatch] in strict mode.
package propagate
