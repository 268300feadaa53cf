package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/workcounter/internal/cli"
	"github.com/alexanderramin/workcounter/internal/config"
	"github.com/alexanderramin/workcounter/internal/db"
	"github.com/alexanderramin/workcounter/internal/domain"
	"github.com/alexanderramin/workcounter/internal/repository"
	"github.com/alexanderramin/workcounter/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Config:  cfg,
		Connect: connect,
	}
	defer app.Close()

	// Detect interactive terminal for the dashboard default.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// connect opens the database named by the parsed flags and wires services.
func connect(_ context.Context, app *cli.App) (io.Closer, error) {
	database, err := db.OpenDB(app.Config.DBPath)
	if err != nil {
		return nil, err
	}

	var observers []service.UseCaseObserver
	if app.Config.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	ledger := repository.NewLedgerStore(repository.NewSQLiteKVRepo(database))
	uow := db.NewSQLiteUnitOfWork(database)

	app.Clock = service.NewClockService(ledger, uow, domain.RealClock{}, observers...)
	app.Transfer = service.NewTransferService(ledger, uow, observers...)
	return database, nil
}
