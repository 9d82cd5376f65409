package main

import (
	"github.com/philipparndt/boxedit/internal/app"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [box.yaml]",
	Short: "Open the interactive editor for a box file",
	Long: `Open a window showing the box. Drag a face with the left mouse button
to move the box (move mode) or to move that face (resize mode). Tab switches
modes, S saves the box back to the file. Changes to the file made by other
programs are reloaded automatically.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(cfg, args[0], logger)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
