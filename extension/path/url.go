// url.go implements the "pathkit decode" and "pathkit fromurl" commands.

package path

import "github.com/spf13/cobra"

func (e *Extension) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <string>",
		Short: "Percent-decode a string",
		Long: `Decode %XX escapes. Malformed escapes are copied through unchanged.

  pathkit decode a%2c             # a,
  pathkit decode a2%%31           # a2%1
  pathkit decode a2%3z            # a2%3z`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("decode", args, decode)
		},
	}
}

func decode(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := buf.PercentDecode(in[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Extension) newFromURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fromurl <url>",
		Short: "Convert a local file:// URL to a path",
		Long: `Convert a file:// URL with an empty or "localhost" host to a local path.
The remainder is percent-decoded. Any other host is rejected.

  pathkit fromurl file:///tmp/a%20b.txt                        # /tmp/a b.txt
  pathkit --platform windows fromurl file:///c:/Temp/x.txt     # c:/Temp/x.txt
  pathkit fromurl file://server/share/x                        # error`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return e.runValue("fromurl", args, fromURL)
		},
	}
}

func fromURL(s settings, in []string) (string, error) {
	buf := s.buffer()
	if err := s.platform.FromURLTo(buf, in[0]); err != nil {
		return "", err
	}
	return buf.String(), nil
}
