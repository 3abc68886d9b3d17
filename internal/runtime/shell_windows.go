//go:build windows

package runtime

// shellCommand wraps a command line for cmd.exe.
func shellCommand(commandLine string) (string, []string) {
	return "cmd", []string{"/C", commandLine}
}
