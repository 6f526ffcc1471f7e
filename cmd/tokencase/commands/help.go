package commands

import (
	"fmt"
	"io"
	"sync"

	"github.com/spf13/cobra"
)

var initHelpOnce sync.Once

// InitHelpCommands registers the help topics
func InitHelpCommands() {
	initHelpOnce.Do(func() {
		rootCmd.AddCommand(helpTokenFormat)
	})
}

// helpTokenFormat describes how lines and tokens are converted
var helpTokenFormat = &cobra.Command{
	Use:   "token-format",
	Short: "How tokencase converts lines and tokens",
	Long: `tokencase reads its embedded source block one line at a time.

LINES:
------
• Blank lines (after trimming whitespace) are dropped.
• Comment lines start with "//" and are printed unchanged, trimmed.
• Every other line is a data line: a comma-separated list of tokens.

TOKENS:
-------
Each comma-separated token is converted to Pascal case:
  1. surrounding whitespace is removed
  2. the token is lower-cased
  3. every "_" becomes a word break
  4. the first letter of each word is upper-cased and the words are joined

  TOKEN_EOF          ->  TokenEof
  TOKEN_BANG_EQUAL   ->  TokenBangEqual
  TOKEN_2ND          ->  Token2nd

Converted tokens are joined again with ", ".

TRAILING COMMAS:
----------------
A trailing comma leaves an empty last token, which converts to an empty
string. The output line therefore ends with ", ":

  "TOKEN_AND, TOKEN_CLASS,"  ->  "TokenAnd, TokenClass, "

The trailing ", " is part of the output.`,
}

// fprintf writes command output, ignoring errors the way fmt.Printf does
func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
