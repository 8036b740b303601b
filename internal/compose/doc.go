// Package compose drives the external container-orchestration command for a
// single instance directory. The command is treated as an opaque process:
// "up -d" and "down" are appended to the configured command line and run
// with the instance directory as the working directory.
package compose
