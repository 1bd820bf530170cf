package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"herohud/internal/config"
	"herohud/internal/game"
	"herohud/internal/logging"
)

const menu = `Commands:
  heal               +20 health, -10 mana
  damage             -15 health
  item <name>        add an item to the inventory
  award <name>       grant an award
  score [amount]     add score (default 50)
  xp [amount]        add experience (default 25)
  spell              use 20 mana
  gold [amount]      add gold (default 30)
  stats              show current stats
  reset              start over
  help               show this menu
  quit               exit
`

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to load .env")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.NewWithWriter(os.Stderr, cfg.Env, cfg.LogLevel)

	sess := game.NewSession(game.ProgressionRules{ChainLevelUps: cfg.Game.ChainLevelUps})
	if err := run(sess, os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("console failed")
	}
}

// run reads one command per line from in and writes the outcome to out.
func run(sess *game.Session, in io.Reader, out io.Writer, logger zerolog.Logger) error {
	fmt.Fprint(out, menu)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(out, menu)
			continue
		}

		cmd, err := game.ParseCommand(line)
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		update, err := sess.Apply(cmd)
		if err != nil {
			logger.Debug().Err(err).Str("command", string(cmd.Kind)).Msg("command rejected")
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		for _, ev := range update.Events {
			fmt.Fprintln(out, ev.Message())
		}
		if cmd.Kind == game.CmdShowStats {
			fmt.Fprint(out, update.Snapshot.Stats())
			continue
		}
		snap := update.Snapshot
		fmt.Fprintf(out, "Health %d/%d  Mana %d/%d  Level %d  Score %d  Gold %d  [%s]\n",
			snap.Health.Current, snap.Health.Max, snap.Mana.Current, snap.Mana.Max,
			snap.Level, snap.Score, snap.Gold, snap.Status)
	}
}
