// Package shellwrap holds the shell-side half of wt: a function sourced into
// the user's interactive shell. A subprocess cannot change its parent's
// working directory, so navigation works by the binary printing a target path
// on stdout and the wrapper cd-ing into it.
package shellwrap

import "os"

const envWrapper = "WT_SHELL_WRAPPER"

// Script is the function emitted by `wt activate`. It captures the binary's
// stdout (stderr and exit status stay attached to the terminal) and changes
// directory only when the output names an existing directory; anything else
// is treated as "no navigation requested". A failed cd returns status 1.
// `command cd` keeps user cd functions and aliases out of the way and,
// unlike `builtin`, is POSIX, so the same script works in bash, zsh, and
// plain sh.
const Script = `# wt shell integration
wt() {
  local _wt_target _wt_status
  _wt_target="$(WT_SHELL_WRAPPER=1 command wt "$@")"
  _wt_status=$?
  if [ -d "$_wt_target" ]; then
    command cd "$_wt_target" || return 1
  fi
  return $_wt_status
}
`

// Active reports whether the shell wrapper invoked this process.
func Active() bool {
	return os.Getenv(envWrapper) == "1"
}
