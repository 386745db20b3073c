package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/delaneyj/jumpgate/gate"
	"github.com/delaneyj/jumpgate/jumpgate"
	"github.com/delaneyj/jumpgate/vdom"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

type demoProvider struct {
	key, class string
}

type demoStep struct {
	name      string
	providers []demoProvider
}

var demoSteps = []demoStep{
	{"empty", nil},
	{"mount", []demoProvider{{"a", "jump"}}},
	{"update", []demoProvider{{"a", "jump-update"}}},
	{"duplicate", []demoProvider{{"a", "jump-update"}, {"b", "second"}}},
	{"drop first", []demoProvider{{"b", "second"}}},
	{"unmount", nil},
}

func demo(ctx context.Context, cmd *cli.Command) error {
	var warnings []string
	opts := []gate.Option{gate.WithWarn(func(msg string) { warnings = append(warnings, msg) })}

	jg := jumpgate.New(opts...)
	if cmd.Bool(classicKey) {
		jg = jumpgate.NewClassic(opts...)
	}
	fallback := vdom.Text(cmd.String(fallbackKey))

	log.Printf("Running %d steps, classic=%v", len(demoSteps), cmd.Bool(classicKey))

	root := vdom.NewRoot()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"step", "providers", "snapshot", "digest", "warnings"})

	for _, step := range demoSteps {
		providers := make([]vdom.Node, 0, len(step.providers))
		labels := make([]string, 0, len(step.providers))
		for _, p := range step.providers {
			providers = append(providers, vdom.WithKey(jg.Provider(vdom.H("div", p.class)), p.key))
			labels = append(labels, p.key+"="+p.class)
		}
		tree := vdom.H("div", "root",
			jg.Anchor(
				vdom.H("div", "consumer", jg.Consumer(fallback)),
				vdom.H("div", "provider", providers...),
			),
		)

		warnings = warnings[:0]
		if err := root.Render(tree); err != nil {
			return fmt.Errorf("step %q: %w", step.name, err)
		}
		table.Append([]string{
			step.name,
			strings.Join(labels, ","),
			root.Snapshot(),
			fmt.Sprintf("%016x", root.Digest()),
			strings.Join(warnings, "\n"),
		})
	}
	root.Unmount()

	table.Render()
	return nil
}
