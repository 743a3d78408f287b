/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "clinicalc",
		Usage: "Clinicalc - Clinical Calculators",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdCalc,
			cmd.CmdTUI,
			cmd.CmdMigrate,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
