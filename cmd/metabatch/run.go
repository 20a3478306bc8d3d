package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"golang.org/x/term"

	"metabatch/internal/anvl"
	"metabatch/internal/config"
	"metabatch/internal/diagnostic"
	"metabatch/internal/ezid"
	"metabatch/internal/interp"
	"metabatch/internal/mapping"
	"metabatch/internal/output"
	"metabatch/internal/record"
	"metabatch/internal/rowio"
)

type operation int

const (
	opMint operation = iota
	opCreate
	opUpdate
)

// run executes one batch operation end to end: load configuration and
// rules, resolve output columns, then process rows one at a time in
// input order, flushing each result row before reading the next.
func run(op operation, mappingsPath, inputPath string) error {
	cfgPath := cfgFile
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	server := firstNonEmpty(serverFlag, cfg.Server)
	credentials := firstNonEmpty(credentialsFlag, cfg.Credentials)
	shoulder := firstNonEmpty(shoulderFlag, cfg.Shoulder)
	columnsSpec := firstNonEmpty(outputColumnsFlag, cfg.OutputColumns, output.DefaultSpec)

	if op == opMint && shoulder == "" {
		return diagnostic.New(diagnostic.KindConfig, "mint requires a shoulder (-s)")
	}

	if !previewFlag && credentials == "" {
		return diagnostic.New(diagnostic.KindConfig, "operation requires credentials (-c)")
	}

	rules, err := mapping.LoadFile(mappingsPath)
	if err != nil {
		return err
	}

	if op != opMint {
		if err := mapping.RequireID(rules); err != nil {
			return err
		}
	}

	selectors, err := output.Resolve(columnsSpec, rules)
	if err != nil {
		return err
	}

	var client *ezid.Client

	if !previewFlag {
		creds := ezid.ParseCredentials(credentials)

		if creds.NeedsPassword() {
			creds.Password, err = promptPassword(creds.Username)
			if err != nil {
				return err
			}
		}

		client = ezid.New(server, creds)
	}

	transformer := &record.Transformer{Rules: rules, Funcs: interp.Builtins()}
	if op == opMint {
		transformer.Shoulder = shoulder
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer in.Close()

	logger.Info("processing", "mappings", mappingsPath, "input", inputPath, "rules", len(rules))

	reader := rowio.NewReader(in, tabFlag)
	writer := rowio.NewWriter(os.Stdout)
	ctx := context.Background()
	recordNum := 0
	widthChecked := false

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}

		recordNum++

		if !widthChecked && err == nil {
			if err := output.CheckWidth(selectors, len(row)); err != nil {
				return err
			}

			widthChecked = true
		}

		if errors.Is(err, rowio.ErrWidth) {
			// Width mismatches are per-record failures, not run aborts.
			logger.Warn("skipping record", "record", recordNum, "error", err)

			out := output.FormRow(selectors, row, nil, recordNum, "", "error: "+err.Error())
			if err := writer.Write(out); err != nil {
				return err
			}

			continue
		}

		if err != nil {
			return diagnostic.Annotate(err, "record %d", recordNum)
		}

		rec, err := transformer.Transform(row)
		if err != nil {
			return diagnostic.Annotate(err, "record %d", recordNum)
		}

		if previewFlag {
			fmt.Println()
			fmt.Print(anvl.Encode(rec))

			continue
		}

		var id, errMsg string

		switch op {
		case opMint:
			if removeIDFlag {
				delete(rec, record.IDKey)
			}

			id, errMsg = client.Mint(ctx, shoulder, rec)
		case opCreate:
			prior := rec[record.IDKey]
			delete(rec, record.IDKey)
			id, errMsg = client.Create(ctx, prior, rec)
		case opUpdate:
			prior := rec[record.IDKey]
			delete(rec, record.IDKey)
			id, errMsg = client.Update(ctx, prior, rec)
		}

		if errMsg != "" {
			logger.Warn("registration failed", "record", recordNum, "error", errMsg)
		}

		if err := writer.Write(output.FormRow(selectors, row, rec, recordNum, id, errMsg)); err != nil {
			return err
		}
	}
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(username string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", username)

	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", err
	}

	return string(password), nil
}

// firstNonEmpty returns the first non-empty value, letting flags
// override config file entries.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
