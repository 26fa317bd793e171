package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kittclouds/jay/internal/store"
)

func (a *app) newKBCmd() *cobra.Command {
	kbCmd := &cobra.Command{
		Use:   "kb",
		Short: "Manage the knowledge base",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty knowledge base",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.StoreOptions()
			if err != nil {
				return err
			}
			if err := store.Init(opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s knowledge base at %s\n", opts.Backend, opts.Path)
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print every question and answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			kb, err := st.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, e := range kb.Entries() {
				fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, e.Question, e.Answer)
			}
			fmt.Fprintf(out, "%d entries\n", kb.Len())
			return nil
		},
	}

	var to, dest string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Copy the knowledge base into a new file, possibly with another backend",
		Long: `Copies every entry of the configured knowledge base into a new store.

Example:
  jay kb migrate --to sqlite --dest knowledge_base.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, err := store.ParseBackend(to)
			if err != nil {
				return err
			}

			src, err := a.openStore()
			if err != nil {
				return err
			}
			defer src.Close()

			dstOpts := store.Options{Backend: backend, Path: dest}
			if err := store.Init(dstOpts); err != nil {
				return err
			}
			dst, err := store.Open(dstOpts)
			if err != nil {
				return err
			}
			defer dst.Close()

			n, err := store.Copy(dst, src)
			if err != nil {
				return err
			}
			a.logger.Info("knowledge base migrated",
				zap.String("dest", dest),
				zap.String("backend", string(backend)),
				zap.Int("entries", n))
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d entries to %s\n", n, dest)
			return nil
		},
	}
	migrateCmd.Flags().StringVar(&to, "to", "", "Destination backend: json or sqlite (required)")
	migrateCmd.Flags().StringVar(&dest, "dest", "", "Destination file (required)")
	_ = migrateCmd.MarkFlagRequired("to")
	_ = migrateCmd.MarkFlagRequired("dest")

	kbCmd.AddCommand(initCmd, listCmd, migrateCmd)
	return kbCmd
}
