package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lottogen/internal/config"
	"lottogen/internal/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(newApp(storage.NewStore))
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "lottoctl",
		Short: "Generate and keep lottery number combinations",
		Long: `lottoctl draws lottery combinations, steering away from patterns many
players pick (sequences, birthdays, range and parity skew), and keeps every
generated combination in a local archive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./lotto.yaml if present)")
	flags.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite|redis")
	flags.String("db-path", "lotto.db", "sqlite database path")
	flags.String("redis-addr", "localhost:6379", "redis address")
	flags.String("locale", "de-DE", "locale used to render timestamps")
	flags.String("log-level", "warn", "log level: debug|info|warn|error")
	bindFlags(a.viper, root, map[string]string{
		"store.kind":        "store",
		"store.sqlite_path": "db-path",
		"store.redis.addr":  "redis-addr",
		"display.locale":    "locale",
		"logging.level":     "log-level",
	})

	root.AddCommand(
		newGenerateCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newClearCmd(a),
		newCheckCmd(a),
	)
	return root
}

func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) {
	for key, name := range keys {
		_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(name))
	}
}

// app carries what every subcommand needs to build a generator.
type app struct {
	viper      *viper.Viper
	configFile string
	openStore  func(storage.Options) (storage.Store, error)
}

func newApp(openStore func(storage.Options) (storage.Store, error)) *app {
	return &app{
		viper:     config.New(),
		openStore: openStore,
	}
}
