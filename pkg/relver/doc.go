// Package relver validates and parses release versions.
//
// A release version has the form MAJOR.MINOR.PATCH-QUALIFIER, where the
// first three segments are non-negative integers and the qualifier is a
// single alphanumeric token, e.g. "1.2.3-oss".
package relver
