package cli

import (
	"context"
	"flag"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/igolaizola/raagam/pkg/cmd/analyze"
	"github.com/igolaizola/raagam/pkg/cmd/icons"
	"github.com/igolaizola/raagam/pkg/cmd/samples"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/peterbourgon/ff/v3/ffyaml"
)

func New(version, commit, date string) *ffcli.Command {
	fs := flag.NewFlagSet("raagam", flag.ExitOnError)

	return &ffcli.Command{
		ShortUsage: "raagam [flags] <subcommand>",
		FlagSet:    fs,
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
		Subcommands: []*ffcli.Command{
			newVersionCommand(version, commit, date),
			newIconsCommand(),
			newSamplesCommand(),
			newAnalyzeCommand(),
		},
	}
}

func newVersionCommand(version, commit, date string) *ffcli.Command {
	return &ffcli.Command{
		Name:       "version",
		ShortUsage: "raagam version",
		ShortHelp:  "print version",
		Exec: func(ctx context.Context, args []string) error {
			v := version
			if v == "" {
				if buildInfo, ok := debug.ReadBuildInfo(); ok {
					v = buildInfo.Main.Version
				}
			}
			if v == "" {
				v = "dev"
			}
			versionFields := []string{v}
			if commit != "" {
				versionFields = append(versionFields, commit)
			}
			if date != "" {
				versionFields = append(versionFields, date)
			}
			fmt.Println(strings.Join(versionFields, " "))
			return nil
		},
	}
}

func newIconsCommand() *ffcli.Command {
	cmd := "icons"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &icons.Config{}
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	fs.StringVar(&cfg.Output, "output", "docs", "output folder")
	fsListVar(fs, &cfg.Fonts, "fonts", nil, "comma separated font files to try in order (default system fonts)")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("raagam %s [flags]", cmd),
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("RAAGAM"),
		},
		ShortHelp: fmt.Sprintf("raagam %s command", cmd),
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			return icons.Run(ctx, cfg)
		},
	}
}

func newSamplesCommand() *ffcli.Command {
	cmd := "samples"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &samples.Config{}
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	fs.StringVar(&cfg.Input, "input", "", "csv or json with tracks (fields: name,artist,album,frequency,duration)")
	fs.StringVar(&cfg.Output, "output", "music", "music library folder")
	fs.StringVar(&cfg.Genre, "genre", "", "genre tag for the generated tracks")
	fs.BoolVar(&cfg.Plot, "plot", false, "write a waveform plot next to each track")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("raagam %s [flags]", cmd),
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("RAAGAM"),
		},
		ShortHelp: fmt.Sprintf("raagam %s command", cmd),
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			return samples.Run(ctx, cfg)
		},
	}
}

func newAnalyzeCommand() *ffcli.Command {
	cmd := "analyze"
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	_ = fs.String("config", "", "config file (optional)")

	cfg := &analyze.Config{}
	fs.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	fs.StringVar(&cfg.Input, "input", "", "input wav or mp3 file")
	fs.StringVar(&cfg.Output, "output", "", "output folder for plots (optional)")

	return &ffcli.Command{
		Name:       cmd,
		ShortUsage: fmt.Sprintf("raagam %s [flags]", cmd),
		Options: []ff.Option{
			ff.WithConfigFileFlag("config"),
			ff.WithConfigFileParser(ffyaml.Parser),
			ff.WithEnvVarPrefix("RAAGAM"),
		},
		ShortHelp: fmt.Sprintf("raagam %s command", cmd),
		FlagSet:   fs,
		Exec: func(ctx context.Context, args []string) error {
			return analyze.Run(ctx, cfg)
		},
	}
}

type listValue struct {
	v *[]string
}

func (l *listValue) String() string {
	if l.v == nil {
		return ""
	}
	return strings.Join(*l.v, ",")
}

func (l *listValue) Set(value string) error {
	*l.v = nil
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l.v = append(*l.v, s)
		}
	}
	return nil
}

func fsListVar(fs *flag.FlagSet, p *[]string, name string, value []string, usage string) {
	*p = value
	fs.Var(&listValue{p}, name, usage)
}
