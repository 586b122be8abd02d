// Command pagecheck loads the portfolio in headless Chrome, sweeps it top to
// bottom and clicks through the navbar, checking the active-section
// highlight, the navbar chrome and the entrance animations.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajithkoli/portfolio/internal/pagecheck"
	"github.com/ajithkoli/portfolio/internal/sections"
)

var errCheckFailed = errors.New("page check failed")

var (
	pageURL   string
	remoteURL string
	step      float64
	width     int
	height    int
	asJSON    bool
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "pagecheck",
	Short: "Check scroll tracking and navigation on the rendered portfolio",
	Long: `pagecheck opens the page in a headless browser, scrolls through it in fixed
steps and then activates every navbar link. It reports the active section,
whether the navbar chrome is on and which sections have revealed, and exits
non-zero if a section is missing, never highlights, never reveals, or a link
does not land on its section.`,
	SilenceUsage: true,
	RunE:         runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&pageURL, "url", "http://localhost:8080", "page to check")
	rootCmd.Flags().StringVar(&remoteURL, "remote", "", "DevTools WebSocket URL of a running Chrome (default: launch one)")
	rootCmd.Flags().Float64Var(&step, "step", pagecheck.DefaultStep, "scroll increment in CSS pixels")
	rootCmd.Flags().IntVar(&width, "width", pagecheck.DefaultWidth, "viewport width")
	rootCmd.Flags().IntVar(&height, "height", pagecheck.DefaultHeight, "viewport height")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCheckFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	page, err := pagecheck.OpenBrowser(ctx, pageURL, pagecheck.BrowserConfig{
		RemoteURL: remoteURL,
		Width:     width,
		Height:    height,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	defer page.Close()

	rep, err := pagecheck.Run(ctx, page, sections.Default(), pagecheck.Options{
		Step:   step,
		Width:  width,
		Height: height,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return err
		}
	} else {
		printReport(out, rep)
	}

	if !rep.OK() {
		return errCheckFailed
	}
	return nil
}

func printReport(w io.Writer, rep pagecheck.Report) {
	mode := "desktop"
	if rep.Mobile {
		mode = "mobile"
	}
	fmt.Fprintf(w, "%s %dx%d (%s)\n\n", pageURL, rep.Width, rep.Height, mode)

	fmt.Fprintf(w, "%8s  %-6s  %-12s  %s\n", "scrollY", "chrome", "active", "revealed")
	for _, s := range rep.Steps {
		active := s.Active
		if active == "" {
			active = "-"
		}
		fmt.Fprintf(w, "%8.0f  %-6t  %-12s  %s\n", s.ScrollY, s.Scrolled, active, strings.Join(s.Visible, ","))
	}

	fmt.Fprintln(w)
	for _, j := range rep.Jumps {
		status := "ok"
		if !j.OK() {
			status = "FAIL"
		}
		line := fmt.Sprintf("%-4s  #%-12s -> %s", status, j.Target, j.Active)
		if j.Err != "" {
			line += "  (" + j.Err + ")"
		}
		fmt.Fprintln(w, line)
	}

	if len(rep.Missing) > 0 {
		fmt.Fprintf(w, "\nmissing anchors: %s\n", strings.Join(rep.Missing, ", "))
	}
	if len(rep.NeverActive) > 0 {
		fmt.Fprintf(w, "never active: %s\n", strings.Join(rep.NeverActive, ", "))
	}
	if len(rep.Unrevealed) > 0 {
		fmt.Fprintf(w, "never revealed: %s\n", strings.Join(rep.Unrevealed, ", "))
	}
}
