package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appcfg "github.com/kapu/boardpix/internal/config"
	"github.com/kapu/boardpix/internal/imgcache"
	"github.com/kapu/boardpix/internal/obslog"
	"github.com/kapu/boardpix/internal/render"
	"github.com/kapu/boardpix/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	root := &cobra.Command{
		Use:           "boardpix",
		Short:         "boardpix renders chess positions as PNG images",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(renderCmd(), serveCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func renderCmd() *cobra.Command {
	var (
		fen       string
		grid      string
		out       string
		size      int
		padding   int
		theme     string
		style     string
		flipped   bool
		coords    bool
		highlight string
		arrow     string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a position to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fen == "" && grid == "" {
				return fmt.Errorf("either --fen or --grid is required")
			}

			th, err := render.ThemeByName(theme)
			if err != nil {
				return err
			}
			r := render.New(render.Config{
				Size:        size,
				Padding:     render.Padding{Top: padding, Right: padding, Bottom: padding, Left: padding},
				Light:       th.Light,
				Dark:        th.Dark,
				Highlight:   th.Highlight,
				Style:       style,
				Flipped:     flipped,
				Coordinates: coords,
			})

			if grid != "" {
				r.LoadGrid(parseGrid(grid))
			} else if err := r.LoadFEN(fen); err != nil {
				return err
			}

			if highlight != "" {
				squares, err := render.ParseSquareList(highlight)
				if err != nil {
					return err
				}
				r.SetHighlights(squares...)
			}
			if arrow != "" {
				arrows, err := render.ParseArrowList(arrow)
				if err != nil {
					return err
				}
				r.SetArrows(arrows...)
			}

			if err := r.RenderToFile(cmd.Context(), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&fen, "fen", "", "position in FEN notation")
	cmd.Flags().StringVar(&grid, "grid", "", "raw position grid: rows rank 8 first separated by ';', cells by ',' (uppercase = white)")
	cmd.Flags().StringVarP(&out, "out", "o", "board.png", "output file path")
	cmd.Flags().IntVar(&size, "size", render.DefaultSize, "board edge length in pixels, padding excluded")
	cmd.Flags().IntVar(&padding, "padding", 0, "padding in pixels on every side")
	cmd.Flags().StringVar(&theme, "theme", render.DefaultTheme, "color theme: "+strings.Join(render.ThemeNames(), ", "))
	cmd.Flags().StringVar(&style, "style", render.DefaultStyle, "piece sprite style: "+strings.Join(render.Styles(), ", "))
	cmd.Flags().BoolVar(&flipped, "flipped", false, "rotate the board 180 degrees")
	cmd.Flags().BoolVar(&coords, "coords", false, "draw file/rank labels in the padding")
	cmd.Flags().StringVar(&highlight, "highlight", "", "squares to highlight, e.g. e2,e4")
	cmd.Flags().StringVar(&arrow, "arrow", "", "arrows to draw, e.g. e2e4,g1f3:#ff000080")

	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve board renders over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := obslog.InitFromEnv(); err != nil {
				return err
			}
			log := obslog.L()
			defer func() { _ = log.Sync() }()

			cfg, err := appcfg.Load()
			if err != nil {
				return err
			}

			var cache imgcache.Cache
			if cfg.RedisURL != "" {
				rc, err := imgcache.NewRedis(cfg.RedisURL, time.Duration(cfg.CacheTTLSec)*time.Second)
				if err != nil {
					return err
				}
				defer rc.Close()
				cache = rc
				log.Info("render cache: redis", zap.Int("ttl_sec", cfg.CacheTTLSec))
			} else {
				cache = imgcache.NewMemory()
				log.Info("render cache: in-memory")
			}

			app := server.New(cfg, cache, log).App()

			errCh := make(chan error, 1)
			go func() { errCh <- app.Listen(cfg.Listen) }()
			log.Info("listening", zap.String("addr", cfg.Listen))

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
				log.Info("shutting down")
				return app.Shutdown()
			}
		},
	}
}

// parseGrid splits "K,,,;..." into the rank-8-first cell grid the
// position loader expects.
func parseGrid(raw string) [][]string {
	rows := strings.Split(raw, ";")
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = strings.Split(row, ",")
	}
	return grid
}
