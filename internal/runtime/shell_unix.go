//go:build !windows

package runtime

// shellCommand wraps a command line for the POSIX shell.
func shellCommand(commandLine string) (string, []string) {
	return "sh", []string{"-c", commandLine}
}
