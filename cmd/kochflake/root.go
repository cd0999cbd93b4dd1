package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"honnef.co/go/koch"
	"honnef.co/go/koch/internal/tui"
	"honnef.co/go/koch/render"
)

// maxRenderLevel bounds --level; the default seed has 3·4¹⁰ ≈ 3.1M segments
// at level 10.
const maxRenderLevel = 10

type app struct {
	v      *viper.Viper
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "kochflake",
		Short:         "Render and explore Koch snowflakes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().Bool("verbose", false, "log debug output")
	root.PersistentFlags().Int("width", 600, "image width")
	root.PersistentFlags().Int("height", 600, "image height")
	root.PersistentFlags().Float64("line-width", render.DefaultLineWidth, "stroke width in pixels")
	root.PersistentFlags().String("output", "koch.png", "output file")

	root.AddCommand(a.renderCmd(), a.viewCmd(), a.pointsCmd())
	return root
}

// init loads configuration and installs the logger. Flags take precedence
// over KOCH_* environment variables, which take precedence over the config
// file.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("KOCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	koch.SetLogger(a.logger)
	return nil
}

func (a *app) level() (int, error) {
	n := a.v.GetInt("level")
	if n < 0 || n > maxRenderLevel {
		return 0, fmt.Errorf("level %d out of range [0, %d]", n, maxRenderLevel)
	}
	return n, nil
}

func (a *app) renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the snowflake at a given level to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.level()
			if err != nil {
				return err
			}
			c, err := koch.New()
			if err != nil {
				return err
			}
			c.AdvanceN(n)

			var opts []render.CanvasOption
			opts = append(opts, render.WithLineWidth(a.v.GetFloat64("line-width")), render.WithLogger(a.logger))
			if !a.v.GetBool("instructions") {
				opts = append(opts, render.WithInstructions())
			}
			cv, err := render.NewCanvas(a.v.GetInt("width"), a.v.GetInt("height"), opts...)
			if err != nil {
				return err
			}
			defer cv.Close()
			if err := cv.Render(c); err != nil {
				return err
			}
			return cv.SavePNG(a.v.GetString("output"))
		},
	}
	cmd.Flags().Int("level", 4, "refinement level")
	cmd.Flags().Bool("instructions", false, "draw the key help and status text")
	return cmd
}

func (a *app) viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the snowflake interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := koch.New(koch.WithLogger(a.logger))
			if err != nil {
				return err
			}
			m := tui.New(c, tui.Config{
				MaxLevel:    a.v.GetInt("max-level"),
				Output:      a.v.GetString("output"),
				ImageWidth:  a.v.GetInt("width"),
				ImageHeight: a.v.GetInt("height"),
				LineWidth:   a.v.GetFloat64("line-width"),
				Logger:      a.logger,
			})
			p := tea.NewProgram(m, tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}
	cmd.Flags().Int("max-level", tui.DefaultMaxLevel, "highest level reachable with advance")
	return cmd
}

func (a *app) pointsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Print the snowflake outline as one \"x y\" pair per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.level()
			if err != nil {
				return err
			}
			c, err := koch.New()
			if err != nil {
				return err
			}
			c.AdvanceN(n)
			return writePoints(cmd.OutOrStdout(), c.Points())
		},
	}
	cmd.Flags().Int("level", 1, "refinement level")
	return cmd
}

func writePoints(w io.Writer, pts []koch.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%g %g\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
