package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/creachadair/mds/value"
	"github.com/delaneyj/jumpgate/gate"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

func bench(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Int(itersKey))
	maxConsumers := int(cmd.Int(consumersKey))
	providers := int(cmd.Int(providersKey))
	if iters <= 0 || providers <= 0 {
		return fmt.Errorf("iters and providers must be positive")
	}

	log.Printf("warming up")
	benchOnce(1, providers, iters)

	tbl := table.NewWriter()
	tbl.SetTitle("Jumpgate propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"consumers", "updates", "avg", "min", "p75", "p99", "max"})

	for consumers := 1; consumers <= maxConsumers; consumers *= 10 {
		if err := ctx.Err(); err != nil {
			return err
		}
		calc := benchOnce(consumers, providers, iters)
		tbl.AppendRow(table.Row{
			humanize.Comma(int64(consumers)),
			humanize.Comma(int64(iters)),
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		})
	}
	tbl.Render()
	return nil
}

// benchOnce times Provider updates on an Anchor with the given number of
// subscribed Consumers, each of which renders on every broadcast.
func benchOnce(consumers, providers, iters int) *tachymeter.Metrics {
	g := gate.New[string](gate.WithWarn(func(string) {}))
	a := g.NewAnchor()

	var rendered int
	for i := 0; i < consumers; i++ {
		c, err := g.NewConsumer(a, "")
		if err != nil {
			log.Panic(err)
		}
		a.Subscribe(func(value.Maybe[string]) {
			if _, ok := c.Render(); ok {
				rendered++
			}
		})
	}

	ps := make([]*gate.Provider[string], providers)
	for i := range ps {
		p, err := g.NewProvider(a)
		if err != nil {
			log.Panic(err)
		}
		if err := p.OnAttach("p" + strconv.Itoa(i)); err != nil {
			log.Panic(err)
		}
		ps[i] = p
	}

	last := ps[len(ps)-1]
	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		start := time.Now()
		if err := last.OnUpdate(strconv.Itoa(i)); err != nil {
			log.Panic(err)
		}
		tach.AddTime(time.Since(start))
	}

	for _, p := range ps {
		if err := p.OnDetach(); err != nil {
			log.Panic(err)
		}
	}
	if rendered < consumers*iters {
		log.Panicf("consumers rendered %d times, want at least %d", rendered, consumers*iters)
	}
	return tach.Calc()
}
