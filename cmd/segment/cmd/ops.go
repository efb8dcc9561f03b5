package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/commons/internal/profile"
	"github.com/msto63/commons/utils/stringx"
)

func newScanCmd(a *app) *cobra.Command {
	var needle, escape string

	cmd := &cobra.Command{
		Use:   "scan [text]",
		Short: "Offsets of unescaped occurrences",
		Long: `Prints the byte offset of every occurrence of the needle that is not
preceded by the escape token. Occurrences may overlap.

Examples:
  segment scan --needle , 'a,b\,c' --escape '\'
  echo 'aaaa' | segment scan --needle aa`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args, 0)
			if err != nil {
				return err
			}
			return a.execute(cmd, profile.Profile{
				Operation: string(profile.OpScan),
				Needle:    needle,
				Escape:    a.escape(cmd, escape, ""),
			}, text)
		},
	}

	cmd.Flags().StringVar(&needle, "needle", "", "text to search for")
	cmd.Flags().StringVar(&escape, "escape", "", "escape token")
	_ = cmd.MarkFlagRequired("needle")
	return cmd
}

func newExtractCmd(a *app) *cobra.Command {
	var start, end, escape string

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Contents of delimited spans",
		Long: `Prints the contents between unescaped start and end delimiters. The
end delimiter defaults to the start delimiter. Escaped delimiters inside
a span are unescaped. Unbalanced or overlapping delimiters are an error.

Examples:
  segment extract --start '"' '"a","b"'
  segment extract --start '(' --end ')' '(x) (y)'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args, 0)
			if err != nil {
				return err
			}
			return a.execute(cmd, profile.Profile{
				Operation: string(profile.OpExtract),
				Start:     start,
				End:       end,
				Escape:    a.escape(cmd, escape, ""),
			}, text)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start delimiter")
	cmd.Flags().StringVar(&end, "end", "", "end delimiter (default: start delimiter)")
	cmd.Flags().StringVar(&escape, "escape", "", "escape token")
	_ = cmd.MarkFlagRequired("start")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var delimiters []string
	var escape string

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split after each delimiter, keeping it",
		Long: `Splits the text after every unescaped delimiter. Each segment ends
with its delimiter, the last segment holds the remainder.

Examples:
  segment split --delim ';' 'a;b;c'
  segment split --delim , --delim ';' --escape '^' 'a^,b,c;d'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args, 0)
			if err != nil {
				return err
			}
			return a.execute(cmd, profile.Profile{
				Operation:  string(profile.OpSplit),
				Delimiters: delimiters,
				Escape:     a.escape(cmd, escape, stringx.DefaultEscape),
			}, text)
		},
	}

	cmd.Flags().StringArrayVarP(&delimiters, "delim", "d", nil, "delimiter, may be repeated")
	cmd.Flags().StringVar(&escape, "escape", stringx.DefaultEscape, "escape token")
	_ = cmd.MarkFlagRequired("delim")
	return cmd
}

func newRetainCmd(a *app) *cobra.Command {
	return newPatternCmd(a, profile.OpRetain, "retain [text]",
		"Split on a pattern, keeping the matches",
		`Splits the text on a regular expression. Gaps and matches alternate,
the first and last element are always gaps, possibly empty.

Examples:
  segment retain --pattern ',' 'a,,b'
  segment retain --pattern '\s+' 'a  b c'`)
}

func newChopCmd(a *app) *cobra.Command {
	return newPatternCmd(a, profile.OpChop, "chop [text]",
		"Alternate gaps and pattern matches",
		`Chops the text into alternating gaps and matches of a regular
expression. Joining the pieces yields the input.

Examples:
  segment chop --pattern '=' 'key=value'`)
}

func newPatternCmd(a *app, op profile.Operation, use, short, long string) *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args, 0)
			if err != nil {
				return err
			}
			return a.execute(cmd, profile.Profile{
				Operation: string(op),
				Pattern:   pattern,
			}, text)
		},
	}

	cmd.Flags().StringVarP(&pattern, "pattern", "p", "", "regular expression")
	_ = cmd.MarkFlagRequired("pattern")
	return cmd
}
