package main

import (
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "jumpgate",
		Usage: "Render a subtree somewhere else in the tree",
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "Mount, update and unmount a Provider and trace what the Consumer renders",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  classicKey,
						Usage: "Use the stateful component adapter instead of hooks",
					},
					&cli.StringFlag{
						Name:  fallbackKey,
						Usage: "Text the Consumer renders while the gate is empty",
						Value: "nothing here",
					},
				},
				Action: demo,
			},
			{
				Name:  "bench",
				Usage: "Measure how long a Provider update takes to reach its Consumers",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  itersKey,
						Usage: "Updates per configuration",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  consumersKey,
						Usage: "Largest number of Consumers to try",
						Value: 1000,
					},
					&cli.IntFlag{
						Name:  providersKey,
						Usage: "Providers attached to the Anchor while measuring",
						Value: 1,
					},
				},
				Action: bench,
			},
		},
	}
}
