package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamshu/librarium/gemini"
	"github.com/jamshu/librarium/generate"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the Gemini API connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := gemini.New(cfg)
		if err != nil {
			return err
		}
		pipeline := generate.New(client, logger)

		if err := pipeline.TestConnection(cmd.Context()); err != nil {
			return fmt.Errorf("connection failed: %w", err)
		}
		fmt.Println("Connection successful!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
