package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andaru/scl"
	"github.com/andaru/scl/report"
	"github.com/andaru/scl/tree"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	format     string
	maxDepth   int
	maxNodes   int
	mark       bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "sclview",
		Short:         "Display the data model of SCL/ICD files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its flags from the standard flag set
			return flag.CommandLine.Parse(nil)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configFile, "config", "", "YAML config file")
	pf.StringVarP(&opts.format, "format", "f", string(report.FormatText), fmt.Sprintf("output format %v", report.Formats))
	pf.IntVar(&opts.maxDepth, "max-depth", tree.DefaultMaxDepth, "maximum data object/attribute nesting")
	pf.IntVar(&opts.maxNodes, "max-nodes", tree.DefaultMaxNodes, "maximum data objects/attributes expanded per view")
	pf.BoolVar(&opts.mark, "mark-truncated", false, "suffix truncated nodes with (truncated)")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newViewCmd("devices", "Show IEDs, logical devices and logical nodes", opts, func(m *scl.Model, o []tree.Option) []tree.Node {
			return m.DeviceTree(o...)
		}),
		newViewCmd("types", "Show the LNodeType catalogue", opts, func(m *scl.Model, o []tree.Option) []tree.Node {
			return m.Catalogue(o...)
		}),
		newViewCmd("all", "Show devices followed by the LNodeType catalogue", opts, func(m *scl.Model, o []tree.Option) []tree.Node {
			return append(m.DeviceTree(o...), m.Catalogue(o...)...)
		}),
		newDiagCmd(opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the sclview version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "sclview version", version)
		},
	}
}

type projectFn func(*scl.Model, []tree.Option) []tree.Node

func newViewCmd(use, short string, opts *options, project projectFn) *cobra.Command {
	return &cobra.Command{
		Use:   use + " FILE",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			w, err := cfg.writer()
			if err != nil {
				return err
			}
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}
			return w.Tree(cmd.OutOrStdout(), project(m, cfg.projection()))
		},
	}
}

func newDiagCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "diag FILE",
		Short: "List unresolved references and other load diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			w, err := cfg.writer()
			if err != nil {
				return err
			}
			m, err := loadModel(args[0])
			if err != nil {
				return err
			}
			return w.Diagnostics(cmd.OutOrStdout(), m.Diagnostics())
		},
	}
}

// resolve merges the config file with flags set on the command line.
func (o *options) resolve(cmd *cobra.Command) (Config, error) {
	cfg, err := loadConfig(o.configFile)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.format
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = o.maxDepth
	}
	if flags.Changed("max-nodes") {
		cfg.MaxNodes = o.maxNodes
	}
	if flags.Changed("mark-truncated") {
		cfg.MarkTruncated = o.mark
	}
	return cfg, nil
}

// loadModel loads the named file, or standard input for "-".
func loadModel(name string) (*scl.Model, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	glog.V(1).Infof("read %d bytes from %s", len(b), name)
	return scl.Load(string(b))
}
