// Package paths locates the project whose files carry the driver version.
package paths
