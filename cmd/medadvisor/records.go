package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/medadvisor/medadvisor/internal/config"
	"github.com/medadvisor/medadvisor/internal/domain/encounter"
)

const recordTimestampLayout = "2006-01-02 15:04:05"

// withRecords loads config, opens the pool, and hands a ready service to fn.
func withRecords(cmd *cobra.Command, fn func(svc *encounter.Service) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	ctx := cmd.Context()

	pool, err := openPool(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(encounter.NewService(encounter.NewRepo(pool), cfg.MaxSavedDiagnoses))
}

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Inspect and manage saved encounters",
	}

	listCmd := &cobra.Command{
		Use:   "list <student-id>",
		Short: "List saved encounters for a student",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *encounter.Service) error {
				summaries, err := svc.History(cmd.Context(), args[0])
				if errors.Is(err, encounter.ErrNoRecords) {
					fmt.Println("No saved records for this student.")
					return nil
				}
				if err != nil {
					return err
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.SetHeader([]string{"Date", "Vaccination", "Covid Warning", "Symptoms", "Top Diagnosis"})
				for _, s := range summaries {
					table.Append([]string{
						s.RecordedAt.Format(recordTimestampLayout),
						s.VaccinationStatus,
						s.CovidWarning,
						s.SymptomsText,
						s.TopDiagnosis,
					})
				}
				table.Render()
				return nil
			})
		},
	}
	cmd.AddCommand(listCmd)

	diagnosesCmd := &cobra.Command{
		Use:   "diagnoses <student-id> <timestamp>",
		Short: "Show the full ranked diagnosis list for one encounter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordedAt, err := time.ParseInLocation(recordTimestampLayout, args[1], time.Local)
			if err != nil {
				return fmt.Errorf("timestamp must match %q: %w", recordTimestampLayout, err)
			}
			return withRecords(cmd, func(svc *encounter.Service) error {
				diagnoses, err := svc.DiagnosesForDate(cmd.Context(), args[0], recordedAt)
				if errors.Is(err, encounter.ErrNoRecords) {
					fmt.Println("No diagnoses found for that encounter.")
					return nil
				}
				if err != nil {
					return err
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.SetHeader([]string{"Rank", "Diagnosis"})
				for i, d := range diagnoses {
					table.Append([]string{strconv.Itoa(i + 1), d})
				}
				table.Render()
				return nil
			})
		},
	}
	cmd.AddCommand(diagnosesCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <student-id> <timestamp>",
		Short: "Delete one saved encounter",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recordedAt, err := time.ParseInLocation(recordTimestampLayout, args[1], time.Local)
			if err != nil {
				return fmt.Errorf("timestamp must match %q: %w", recordTimestampLayout, err)
			}
			return withRecords(cmd, func(svc *encounter.Service) error {
				if err := svc.DeleteOne(cmd.Context(), args[0], recordedAt); err != nil {
					return err
				}
				fmt.Println("Record deleted.")
				return nil
			})
		},
	}
	cmd.AddCommand(deleteCmd)

	purgeCmd := &cobra.Command{
		Use:   "purge <student-id>",
		Short: "Delete every saved encounter for a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *encounter.Service) error {
				if err := svc.DeleteAll(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Println("All records deleted.")
				return nil
			})
		},
		Args: cobra.ExactArgs(1),
	}
	cmd.AddCommand(purgeCmd)

	return cmd
}
