// Package rewrite provides regular-expression based version rewrites of
// text files.
//
// A [Rule] locates a version literal between two captured groups and swaps
// it for a new version, leaving all surrounding text untouched. The rule
// constructors in this package cover the files of the JDBC driver project
// that carry the driver version.
package rewrite
