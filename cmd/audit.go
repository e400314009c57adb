package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seolint/seolint/internal/fetcher"
	"github.com/seolint/seolint/internal/report"
)

// newAuditCmd creates the 'audit' subcommand: fetch one page, run every
// check and render the console report. The blocked-site confirmation and
// the connectivity probe are interactive concerns that live here, never in
// the analyzers.
func newAuditCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "audit <url>",
		Short: "Fetch one page and run the on-page checks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			pageURL := args[0]

			if probe {
				runProbe(cmd, out)
			}

			if site, blocked := blockedSite(pageURL, appInstance.Config().Audit.BlockedSites); blocked {
				if !confirmContinue(cmd.InOrStdin(), out, site) {
					fmt.Fprintln(out, "aborted")
					return nil
				}
			}

			rep, err := appInstance.Audit(cmd.Context(), pageURL)
			if err != nil {
				kind := fetcher.Classify(err)
				fmt.Fprintf(out, "could not fetch %s: %v\n", pageURL, err)
				fmt.Fprintf(out, "hint: %s\n", fetcher.Advice(kind))
				return err
			}

			report.New(out).Render(rep)
			return nil
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "run a connectivity self-test before auditing")
	return cmd
}

func runProbe(cmd *cobra.Command, out io.Writer) {
	appInstance, err := resolveApp(cmd.Context())
	if err != nil {
		return
	}
	fmt.Fprintln(out, "connectivity self-test:")
	for _, res := range appInstance.Probe(cmd.Context()) {
		if res.Reachable {
			fmt.Fprintf(out, "  ok   %s (status %d)\n", res.URL, res.StatusCode)
			continue
		}
		fmt.Fprintf(out, "  fail %s (%v)\n", res.URL, res.Err)
	}
	fmt.Fprintln(out)
}

// blockedSite reports the first configured site fragment the URL matches.
func blockedSite(pageURL string, blocked []string) (string, bool) {
	lower := strings.ToLower(pageURL)
	for _, site := range blocked {
		if strings.Contains(lower, site) {
			return site, true
		}
	}
	return "", false
}

// confirmContinue asks the user whether to try a likely-unreachable site.
func confirmContinue(in io.Reader, out io.Writer, site string) bool {
	fmt.Fprintf(out, "%s may be unreachable from this network. continue? (y/n): ", site)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
