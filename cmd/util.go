package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var utilCmd = &cobra.Command{
	Use:   "util",
	Short: "Small encoding helpers for camera onboarding",
}

var escapeRTSPCmd = &cobra.Command{
	Use:   "escape-rtsp <credential>",
	Short: "Percent-encode an RTSP username or password",
	Long: `Camera RTSP URLs reject most punctuation in the credential section.
Safe characters pass through; everything else becomes %XX.`,
	Example: `  fusus-cli util escape-rtsp 'p@ss:word'`,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(escapeRTSP(args[0]))
	},
}

var hexEscapeCmd = &cobra.Command{
	Use:   "hex-escape <text>",
	Short: "Escape all non-alphanumerics as %x",
	Long: `The stricter variant some camera firmwares want: every character
that is not a letter or digit is replaced with a percent sign and its
lowercase hex value.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(hexEscape(args[0]))
	},
}

// rtspSafe is the punctuation that survives unescaped in RTSP URLs.
const rtspSafe = "!$-_.+*'(),~"

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func escapeRTSP(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isAlnum(b) || strings.IndexByte(rtspSafe, b) >= 0 {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(&sb, "%%%02X", b)
	}
	return sb.String()
}

func hexEscape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		if isAlnum(b) {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(&sb, "%%%x", b)
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(utilCmd)
	utilCmd.AddCommand(escapeRTSPCmd)
	utilCmd.AddCommand(hexEscapeCmd)
}
