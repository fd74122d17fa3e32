// Package process manages the process groups of external converter commands.
package process
