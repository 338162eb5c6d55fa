// Command seed writes a synthetic seed file for the catalog API, for
// exercising the service with a larger catalog than the built-in one.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"bookcatalog/internal/platform/logger"
	"bookcatalog/internal/seed"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "seed",
		Usage: "generate a YAML seed file for bookcatalog-api --seed-file",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "count", Value: 10000, Usage: "number of books"},
			&cli.IntFlag{Name: "users", Value: 2, Usage: "number of user accounts"},
			&cli.IntFlag{Name: "rand-seed", Value: 1, Usage: "random seed, same value gives the same catalog"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output file (stdout when empty)"},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	log := logger.New("info", true)

	count, users := int(cmd.Int("count")), int(cmd.Int("users"))
	if count < 0 || users < 0 {
		return fmt.Errorf("count and users must not be negative")
	}

	s := uint64(cmd.Int("rand-seed"))
	data := seed.Generate(count, users, rand.New(rand.NewPCG(s, s)))

	raw, err := seed.Marshal(data)
	if err != nil {
		return err
	}

	out := cmd.String("output")
	if out == "" {
		_, err = os.Stdout.Write(raw)
		return err
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		return err
	}
	log.Info().Str("file", out).Int("books", count).Int("users", users).Msg("seed written")
	return nil
}
