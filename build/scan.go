package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"acss/state"
)

// Scan reports class names found in sources without producing stylesheet.
func Scan(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("scan")

	w, err := prepare(ctx, cmd, log)
	if err != nil {
		return err
	}
	if err := w.walkAll(ctx, cmd.Args().Slice()); err != nil {
		return err
	}

	out, err := w.agg.Finish(env.Cfg.Output.Name)
	if err != nil {
		return fmt.Errorf("unable to resolve class names: %w", err)
	}
	if out == nil {
		log.Warn("Nothing to process, no class names found")
		return nil
	}

	problems := make(map[string][]string)
	for _, warn := range out.Result.Warnings {
		problems[warn.ClassName] = append(problems[warn.ClassName], warn.Message())
	}

	counts := w.agg.Counts()
	names := out.ClassNames
	if cmd.Bool("by-count") {
		names = slices.Clone(names)
		slices.SortStableFunc(names, func(a, b string) int { return counts[b] - counts[a] })
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Class", "Count", "Problem"})
	total := 0
	for _, name := range names {
		tbl.AppendRow(table.Row{name, counts[name], strings.Join(problems[name], "; ")})
		total += counts[name]
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d sources", w.agg.Sources()), total, fmt.Sprintf("%d problems", len(out.Result.Warnings))})

	if _, err := fmt.Fprintln(writerOf(cmd), tbl.Render()); err != nil {
		return fmt.Errorf("unable to write scan results: %w", err)
	}
	log.Info("Scan completed", zap.Int("sources", w.agg.Sources()), zap.Int("classes", len(names)), zap.Int("rules", out.Result.Rules))
	return nil
}

func writerOf(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}
