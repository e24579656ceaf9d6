package shell

import "github.com/google/shlex"

// Fields splits a command's argument string the way a POSIX shell would,
// honouring quotes and backslash escapes.
func Fields(args string) ([]string, error) {
	return shlex.Split(args)
}
