package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmDestructive asks the user to confirm a destructive action. Only an
// explicit "y"/"yes" counts as consent; everything else (including EOF)
// declines.
func ConfirmDestructive(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", message)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
