package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"fitcore/internal/verification/models"
	verifyservice "fitcore/internal/verification/service"
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var delay time.Duration

	cmd := &cobra.Command{
		Use:   "verify [CODE...]",
		Short: "Check whether product codes are genuine",
		Long: `Looks up each CODE in the reference table. Without arguments, codes are
read from standard input one per line. An unknown code is reported as invalid
and does not change the exit status.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := root.codes()
			if err != nil {
				return err
			}
			svc := verifyservice.New(table,
				verifyservice.WithDelay(delay),
				verifyservice.WithLogger(root.logger(cmd)),
			)
			in := verifyservice.NewInteraction(svc)
			out := cmd.OutOrStdout()

			if len(args) > 0 {
				for _, code := range args {
					if err := submit(cmd.Context(), in, code, out, cmd.ErrOrStderr(), root.jsonOutput); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := submit(cmd.Context(), in, scanner.Text(), out, cmd.ErrOrStderr(), root.jsonOutput); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read codes: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&delay, "delay", 0, "pause before each result is shown")
	return cmd
}

// submit reports blank input on errOut and keeps going; only write failures
// stop the command.
func submit(ctx context.Context, in *verifyservice.Interaction, code string, out, errOut io.Writer, asJSON bool) error {
	result, err := in.Submit(ctx, code)
	if errors.Is(err, verifyservice.ErrEmptyCode) {
		_, werr := fmt.Fprintln(errOut, "Please enter a verification code")
		return werr
	}
	if err != nil {
		return err
	}
	if asJSON {
		return writeJSON(out, result)
	}
	return printResult(out, result)
}

func printResult(w io.Writer, r models.Result) error {
	status := "INVALID"
	if r.Valid {
		status = "VALID"
	}
	_, err := fmt.Fprintf(w, "%-8s %s\t%s\t%s\n", status, r.Code, r.Product, r.Message)
	return err
}

func newSamplesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "samples",
		Short: "List codes that verify as genuine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := root.codes()
			if err != nil {
				return err
			}
			samples := verifyservice.New(table, verifyservice.WithWaiter(verifyservice.NoDelay{})).Samples()
			out := cmd.OutOrStdout()
			if root.jsonOutput {
				return writeJSON(out, samples)
			}
			for _, rec := range samples {
				if _, err := fmt.Fprintf(out, "%s\t%s\n", rec.Code, rec.Product); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
