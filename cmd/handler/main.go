package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/thankful-ai/autodns/internal/autodns"
	"github.com/thankful-ai/autodns/internal/handler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	conf, err := autodns.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config from env: %w", err)
	}
	log, err := autodns.NewLogger(conf.Log)
	if err != nil {
		return fmt.Errorf("new logger: %w", err)
	}

	lambda.Start(handler.New(log, conf).Handle)
	return nil
}
