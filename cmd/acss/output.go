package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"acss/build"
	"acss/config"
	"acss/rules"
	"acss/state"
)

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()

	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Info("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func outputRules(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("rules")

	a, err := build.NewAtomizer(env, cmd.String("rules"), log)
	if err != nil {
		return err
	}

	list := a.Rules()
	if matchers := cmd.Args().Slice(); len(matchers) > 0 {
		list = slices.DeleteFunc(list, func(r rules.Rule) bool {
			return !slices.Contains(matchers, r.Matcher)
		})
		if len(list) == 0 {
			log.Warn("No rules found", zap.Strings("matchers", matchers))
			return nil
		}
	}

	if cmd.Bool("yaml") {
		data, err := rules.Encode(list)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Matcher", "Type", "Name", "Styles", "Companions"})
	for _, r := range list {
		decls := make([]string, 0, len(r.Styles))
		for _, d := range r.Styles {
			decls = append(decls, d.Property+": "+d.Value)
		}
		tbl.AppendRow(table.Row{r.Matcher, r.Type, r.Name, strings.Join(decls, "\n"), len(r.Rules)})
	}
	tbl.AppendFooter(table.Row{fmt.Sprintf("%d rules", len(list))})

	_, err = fmt.Fprintln(os.Stdout, tbl.Render())
	return err
}
