package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/thankful-ai/autodns/internal/amazon"
	"github.com/thankful-ai/autodns/internal/autodns"
)

func main() {
	if err := run(); err != nil {
		switch {
		case errors.Is(err, emptyArgError("")):
			usage()
		default:
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", autodns.ServerConfigName,
		"config filepath")
	flag.Parse()

	arg, tail := parseArg(flag.Args())
	switch arg {
	case "sync":
		return sync(tail, *configPath)
	case "version":
		fmt.Println("v0.1.0")
		return nil
	case "", "help":
		return emptyArgError("")
	default:
		return badArgError(arg)
	}
}

func sync(args []string, configPath string) error {
	if len(args) != 1 {
		return emptyArgError("sync <instance-id>")
	}
	instanceID := args[0]

	conf, err := parseConfig(configPath)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	log, err := autodns.NewLogger(conf.Log)
	if err != nil {
		return fmt.Errorf("new logger: %w", err)
	}

	ctx := context.Background()
	clients, err := amazon.NewClients(ctx, conf.ZoneID, conf.Region)
	if err != nil {
		return fmt.Errorf("new clients: %w", err)
	}
	s := autodns.NewSynchronizer(log, conf, clients.EC2, clients.Route53)
	outcome, err := s.Sync(ctx, instanceID)
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	fmt.Println(outcome)
	return nil
}

// parseConfig prefers the config file and falls back to the environment,
// which is how the deployed handler is configured.
func parseConfig(configPath string) (autodns.Config, error) {
	_ = godotenv.Load()

	conf, err := autodns.ParseConfig(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return autodns.ConfigFromEnv()
	}
	return conf, err
}

func parseArg(args []string) (string, []string) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return args[0], args[1:]
	}
}

type emptyArgError string

func (e emptyArgError) Error() string {
	return fmt.Sprintf("usage: autodns %s", string(e))
}

func (e emptyArgError) Is(target error) bool {
	_, ok := target.(emptyArgError)
	return ok
}

type badArgError string

func (e badArgError) Error() string {
	return fmt.Sprintf("unknown argument: %s", string(e))
}

func usage() {
	fmt.Println(`usage: autodns [sync|version] ...`)
}
