// Package miniopt is a small getopt-style command-line tokenizer.
//
// The caller declares a table of options and walks the argument vector with
// a Session. Each call to Next yields one option (with or without its
// argument) or one positional argument, identified by its index in the
// table; positional arguments report len(table).
//
//	table := []miniopt.Option{
//		{Short: 'o', Long: "out", ArgHint: "<file>", Description: "output file"},
//		{Short: 'v', Long: "verbose", Description: "verbose output"},
//	}
//	s, err := miniopt.NewSession(os.Args, table)
//	if err != nil {
//		return err
//	}
//	for s.Next() == miniopt.StatusPass {
//		switch s.Index() {
//		case 0:
//			out, _ := s.Arg()
//		case 1:
//			verbose = true
//		default:
//			arg, _ := s.Arg()
//			inputs = append(inputs, arg)
//		}
//	}
//	if err := s.Err(); err != nil {
//		return err
//	}
//
// Accepted forms:
//
//	-a -b -c, -abc      short options without argument, clustered or not
//	-xarg, -x=arg       short option with an inline argument
//	-x arg              short option with the next argument
//	--key=value         long option with an inline argument
//	--key value         long option with the next argument
//	--                  every following argument is positional
//
// Long options match exactly; there is no prefix matching. Empty arguments
// are skipped. The first error ends the session.
package miniopt
