package miniopt_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/dzonerzy/go-miniopt/miniopt"
)

func ExampleSession() {
	table := []miniopt.Option{
		{Short: 'o', Long: "out", ArgHint: "<file>", Description: "output file"},
		{Short: 'v', Long: "verbose", Description: "verbose output"},
		{Short: 'q', Long: "quiet", Description: "quiet output"},
	}
	args := []string{"prog", "-vq", "--out=report.txt", "input.txt", "--", "-v"}

	s, err := miniopt.NewSession(args, table)
	if err != nil {
		fmt.Println(err)
		return
	}
	for s.Next() == miniopt.StatusPass {
		arg, _ := s.Arg()
		if s.IsPositional() {
			fmt.Printf("argument %q\n", arg)
			continue
		}
		opt, _ := s.Option()
		fmt.Printf("option %s %q\n", opt.Long, arg)
	}
	if err := s.Err(); err != nil {
		fmt.Println(err)
	}
	// Output:
	// option verbose ""
	// option quiet ""
	// option out "report.txt"
	// argument "input.txt"
	// argument "-v"
}

func ExampleParseError() {
	table := []miniopt.Option{
		{Short: 'v', Long: "verbose", Description: "verbose output"},
	}
	_, err := miniopt.Parse([]string{"prog", "--verbsoe"}, table)

	var parseErr *miniopt.ParseError
	if errors.As(err, &parseErr) {
		fmt.Println(parseErr.Message)
		fmt.Println("did you mean", parseErr.Suggestion)
	}
	fmt.Println(errors.Is(err, miniopt.ErrUnknownOption))
	// Output:
	// option --verbsoe is unknown.
	// did you mean --verbose
	// true
}

func ExampleWriteOptions() {
	table := []miniopt.Option{
		{Short: 'o', Long: "out", ArgHint: "<file>", Description: "output file"},
		{Short: 'h', Long: "help", Description: "show help"},
	}
	_ = miniopt.WriteOptions(os.Stdout, table, 2)
	// Output:
	//   -o, --out <file>  output file
	//   -h, --help        show help
}
