package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bricktsre/Airline-graph/bfs"
	"github.com/bricktsre/Airline-graph/budget"
	"github.com/bricktsre/Airline-graph/config"
	"github.com/bricktsre/Airline-graph/core"
	"github.com/bricktsre/Airline-graph/dijkstra"
	"github.com/bricktsre/Airline-graph/network"
	"github.com/bricktsre/Airline-graph/prim_kruskal"
)

// app is the per-invocation state shared by every subcommand.
type app struct {
	configPath string
	dataFile   string
	logLevel   string
	color      string

	cfg config.Config
	log *slog.Logger
	net *network.Network
	out *printer
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "routenet",
		Short:         "Query and edit an airline route network",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "routenet.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&a.dataFile, "data", "", "route file (overrides data_file)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides log.level)")
	rootCmd.PersistentFlags().StringVar(&a.color, "color", "", "auto, always or never (overrides output.color)")

	rootCmd.AddCommand(
		a.routesCmd(),
		a.mstCmd(),
		a.pathCmd(),
		a.budgetCmd(),
		a.addCmd(),
		a.removeCmd(),
		a.configCmd(),
	)

	return rootCmd
}

// setup loads configuration, applies flag overrides, builds the logger and loads the network.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.setupConfig(cmd); err != nil {
		return err
	}

	var err error
	a.net, err = network.LoadFile(a.cfg.DataFile)
	if err != nil {
		return fmt.Errorf("failed to load route file: %w", err)
	}
	a.log.Debug("network loaded",
		"file", a.cfg.DataFile,
		"cities", len(a.net.Cities()),
		"routes", a.net.Graph().EdgeCount())

	return nil
}

// setupConfig resolves the effective configuration and builds the logger and printer.
func (a *app) setupConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dataFile != "" {
		cfg.DataFile = a.dataFile
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.color != "" {
		cfg.Output.Color = a.color
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	a.out = newPrinter(cmd.OutOrStdout(), cfg.Output.Color)

	return nil
}

// commit saves next and makes it the current network. On failure a.net is unchanged.
func (a *app) commit(next *network.Network) error {
	if err := next.SaveFile(a.cfg.DataFile); err != nil {
		return fmt.Errorf("failed to save route file: %w", err)
	}
	a.net = next
	a.log.Debug("network saved", "file", a.cfg.DataFile)

	return nil
}

func (a *app) routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List every direct route",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := a.net.Routes()
			a.out.title("%d routes", len(routes))
			for _, r := range routes {
				a.out.route(r)
			}

			return nil
		},
	}
}

func (a *app) mstCmd() *cobra.Command {
	var method string
	var root string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree (forest) by distance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method)}
			if root != "" {
				v, err := a.net.Index(root)
				if err != nil {
					return err
				}
				opts = append(opts, prim_kruskal.WithRoot(v))
			}
			edges, total, err := prim_kruskal.Compute(a.net.Graph(), opts...)
			if err != nil {
				return err
			}
			a.log.Debug("spanning tree computed", "method", method, "edges", len(edges), "total", total)

			a.out.title("Minimum spanning tree by distance")
			for _, e := range edges {
				a.out.route(a.net.Describe(e))
			}
			a.out.muted("total: %s", miles(total))

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "kruskal or prim")
	cmd.Flags().StringVar(&root, "root", "", "start city for prim")

	return cmd
}

func (a *app) pathCmd() *cobra.Command {
	var by string
	var maxHops int
	cmd := &cobra.Command{
		Use:   "path <from> <to>",
		Short: "Shortest path by distance, price or hops",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.net.Index(args[0])
			if err != nil {
				return err
			}
			to, err := a.net.Index(args[1])
			if err != nil {
				return err
			}

			var p *core.Path
			if by == "hops" {
				p, err = bfs.HopPath(a.net.Graph(), from, to, bfs.WithMaxDepth(maxHops))
			} else {
				var m core.Metric
				if m, err = core.ParseMetric(by); err != nil {
					return err
				}
				p, err = dijkstra.ShortestPath(a.net.Graph(), from, to, dijkstra.WithMetric(m))
			}
			if err != nil {
				return err
			}
			a.log.Debug("path found", "by", by, "from", args[0], "to", args[1], "hops", p.Hops())

			a.out.title("Best path by %s", by)
			a.out.path(a.net, p)

			return nil
		},
	}
	cmd.Flags().StringVar(&by, "by", core.MetricDistance.String(), "distance, price or hops")
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "hop limit for --by hops (0 = none)")

	return cmd
}

func (a *app) budgetCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "budget <max-price>",
		Short: "List itineraries priced at or under max-price",
		Long: `List, for every origin (or only --from), the depth-first tree path to each
other city whose total price is at or under max-price.

Each pair gets one candidate itinerary, not necessarily the cheapest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			maxPrice, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("%w: %q", budget.ErrBadMaxPrice, args[0])
			}

			var paths []*core.Path
			if from != "" {
				v, err := a.net.Index(from)
				if err != nil {
					return err
				}
				paths, err = budget.PathsFrom(a.net.Graph(), v, maxPrice)
				if err != nil {
					return err
				}
			} else if paths, err = budget.Paths(a.net.Graph(), maxPrice); err != nil {
				return err
			}

			a.out.title("Itineraries at or under %s", dollars(maxPrice))
			for _, p := range paths {
				a.out.path(a.net, p)
			}
			if len(paths) == 0 {
				a.out.muted("none")
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "only list itineraries starting at this city")

	return cmd
}

func (a *app) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <from> <to> <distance> <price>",
		Short: "Add a route and save the route file",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			distance, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("%w: distance %q", core.ErrInvalidEdge, args[2])
			}
			price, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("%w: price %q", core.ErrInvalidEdge, args[3])
			}

			next := a.net.Clone()
			e, err := next.AddRoute(args[0], args[1], distance, price)
			if err != nil {
				return err
			}
			if err = a.commit(next); err != nil {
				return err
			}
			a.log.Debug("route added", "id", e.ID(), "from", args[0], "to", args[1])

			r := a.net.Describe(e)
			fmt.Fprintf(a.out.w, "Added route of %s from %s to %s for %s\n",
				miles(r.Distance), a.out.city(r.From), a.out.city(r.To), dollars(r.Price))

			return nil
		},
	}
}

func (a *app) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <from> <to>",
		Short: "Remove the first route between two cities and save the route file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			next := a.net.Clone()
			e, err := next.RemoveRoute(args[0], args[1])
			if err != nil {
				return err
			}
			if err = a.commit(next); err != nil {
				return err
			}
			a.log.Debug("route removed", "id", e.ID(), "from", args[0], "to", args[1])

			fmt.Fprintf(a.out.w, "Removed route of %s from %s to %s for %s\n",
				miles(e.Distance()), a.out.city(args[0]), a.out.city(args[1]), dollars(e.Price()))

			return nil
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the routenet config file",
		// Replaces the root hook: config commands do not need the route file.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupConfig(cmd)
		},
	}
	cmd.AddCommand(a.configInitCmd())

	return cmd
}

func (a *app) configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective configuration (defaults plus flags) to --config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := config.Save(a.configPath, a.cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			a.log.Debug("config written", "file", a.configPath)
			fmt.Fprintf(a.out.w, "Wrote %s\n", a.configPath)

			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}
