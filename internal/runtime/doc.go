// Package runtime launches external command lines through the host shell.
// ShellRunner picks `sh -c` on POSIX systems and `cmd /C` on Windows, streams
// the child's output to the caller's writers, and reports the exit code.
package runtime
