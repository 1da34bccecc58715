package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	// Load environment from a local .env file if present.
	_ = godotenv.Load(".env")

	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfigFromEnv()
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}

	a := &app{
		in:      stdin,
		out:     stdout,
		log:     zerolog.New(stderr).With().Timestamp().Logger().Level(cfg.LogLevel),
		printer: newPrinter(cfg.Locale),
	}

	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	code := 0
	cmd := newRootCmd(a, &code)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return code
}

func newRootCmd(a *app, code *int) *cobra.Command {
	return &cobra.Command{
		Use:   "filestats [file]",
		Short: "Print count, mean and standard deviation of a file of numbers",
		Long: `Reads one number per line from the given file and prints how many there
are, their mean and their population standard deviation. Without a file
argument the file name is read from standard input.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			*code = a.run(args)
			return nil
		},
	}
}
