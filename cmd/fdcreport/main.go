package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"fdcreport/internal/config"
	"fdcreport/internal/fdc"
	"fdcreport/internal/pipeline"
	"fdcreport/internal/report"
	"fdcreport/internal/storage"
)

func main() {
	cfg, err := config.Load()
	must(err)
	logger := config.NewLogger(cfg)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	cmd := os.Args[1]
	switch cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", cfg.InputPath, "id file, one fdcId per line")
		output := fs.String("output", cfg.OutputPath, "output csv path")
		_ = fs.Parse(os.Args[2:])

		runner := pipeline.NewRunner(cfg, db, fdc.NewClient(cfg), logger)
		res, err := runner.Run(context.Background(), *input, *output)
		must(err)
		fmt.Printf("run complete: runId=%d foods=%d output=%s\n", res.RunID, res.Foods, res.OutputPath)
	case "runs:list":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		limit := fs.Int("limit", 20, "max runs to list")
		_ = fs.Parse(os.Args[2:])

		runs, err := db.ListRuns(*limit)
		must(err)
		for _, run := range runs {
			fmt.Printf("%d\t%s\t%s\tfoods=%d\t%s\n", run.ID, run.CreatedAt, run.TraceID, run.FoodCount, run.OutputPath)
		}
	case "export:xlsx":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		runID := fs.Int("runId", 0, "archived run id")
		out := fs.String("out", "", "output xlsx path")
		_ = fs.Parse(os.Args[2:])
		if *runID == 0 || strings.TrimSpace(*out) == "" {
			must(fmt.Errorf("--runId and --out are required"))
		}

		rows, err := db.GetReportRows(*runID)
		must(err)
		if len(rows) == 0 {
			must(fmt.Errorf("no report rows for runId=%d", *runID))
		}
		must(report.ExportRowsToXLSX(rows, *out))
		fmt.Printf("exported %d rows to %s\n", len(rows), *out)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: fdcreport <command>")
	fmt.Println("commands:")
	fmt.Println("  run [--input=./data/fdc_ids.txt] [--output=./out/report.csv]")
	fmt.Println("  runs:list [--limit=20]")
	fmt.Println("  export:xlsx --runId=1 --out=./out/report.xlsx")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
