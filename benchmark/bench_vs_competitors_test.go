package benchmark_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/getoptions"
	"github.com/mattn/go-getopt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/urfave/cli/v2"

	"github.com/dzonerzy/go-miniopt/miniopt"
)

// Every benchmark parses the same command line: a flag, a short option with
// a separate argument, a long option with an inline argument and a file.
// Tables are built once where the library allows it.

var competitorArgs = []string{"bench", "-v", "-p", "9000", "--host=0.0.0.0", "input.txt"}

// go-getopt only knows short options
var getoptArgs = []string{"bench", "-v", "-p", "9000", "-H", "0.0.0.0", "input.txt"}

// useArgs points os.Args at args for parsers that read it directly.
func useArgs(b *testing.B, args []string) {
	b.Helper()
	saved := os.Args
	os.Args = args
	b.Cleanup(func() { os.Args = saved })
}

func BenchmarkCompetitors_MiniOpt(b *testing.B) {
	table := []miniopt.Option{
		{Short: 'v', Long: "verbose", Description: "Verbose output"},
		{Short: 'p', Long: "port", ArgHint: "<n>", Description: "Server port"},
		{Long: "host", ArgHint: "<addr>", Description: "Server host"},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		results, err := miniopt.Parse(competitorArgs, table)
		if err != nil || len(results) != 4 {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompetitors_MiniOptSession(b *testing.B) {
	table := []miniopt.Option{
		{Short: 'v', Long: "verbose", Description: "Verbose output"},
		{Short: 'p', Long: "port", ArgHint: "<n>", Description: "Server port"},
		{Long: "host", ArgHint: "<addr>", Description: "Server host"},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		s, err := miniopt.NewSession(competitorArgs, table)
		if err != nil {
			b.Fatal(err)
		}
		for s.Next() == miniopt.StatusPass {
		}
		if s.Err() != nil {
			b.Fatal(s.Err())
		}
	}
}

func BenchmarkCompetitors_Pflag(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
		fs.BoolP("verbose", "v", false, "Verbose output")
		fs.IntP("port", "p", 8080, "Server port")
		fs.String("host", "localhost", "Server host")
		if err := fs.Parse(competitorArgs[1:]); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompetitors_Cobra(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		rootCmd := &cobra.Command{
			Use:  "bench",
			Args: cobra.ArbitraryArgs,
			Run:  func(_ *cobra.Command, _ []string) {},
		}
		rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
		rootCmd.Flags().IntP("port", "p", 8080, "Server port")
		rootCmd.Flags().String("host", "localhost", "Server host")
		rootCmd.SetArgs(competitorArgs[1:])
		if err := rootCmd.Execute(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompetitors_Urfave(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		app := &cli.App{
			Name: "bench",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbose output"},
				&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8080, Usage: "Server port"},
				&cli.StringFlag{Name: "host", Value: "localhost", Usage: "Server host"},
			},
			Action: func(_ *cli.Context) error { return nil },
		}
		if err := app.Run(competitorArgs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompetitors_Getopt(b *testing.B) {
	useArgs(b, getoptArgs)
	getopt.OptErr = 0
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		getopt.OptInd = 1
		n := 0
		for c := getopt.Getopt("vp:H:"); c != getopt.EOF; c = getopt.Getopt("vp:H:") {
			if c == '?' {
				b.Fatal("unexpected option")
			}
			n++
		}
		if n != 3 {
			b.Fatalf("expected 3 options, got %d", n)
		}
	}
}

func BenchmarkCompetitors_GetOptions(b *testing.B) {
	useArgs(b, competitorArgs)
	flags := []getoptions.Option{
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "port", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "host", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'H'},
	}
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, options, arguments, err := getoptions.GetOS(flags)
		if err != nil {
			b.Fatal(err)
		}
		if len(options["port"]) != 1 || len(arguments) != 1 {
			b.Fatalf("unexpected result %v %v", options, arguments)
		}
	}
}
