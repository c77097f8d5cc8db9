package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourorg/shoplist/internal/repository"
	"github.com/yourorg/shoplist/internal/service"
	"github.com/yourorg/shoplist/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage the list from an interactive terminal session",
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
	shellCmd.Flags().Bool("no-color", false, "Disable colored output")
	_ = viper.BindPFlag("NO_COLOR", shellCmd.Flags().Lookup("no-color"))
}

func runShell(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	productStore := service.NewProductStore(repository.NewProductRepository(), nil)

	noColor := viper.GetBool("NO_COLOR") || color.NoColor
	sh := shell.New(productStore, os.Stdin, cmd.OutOrStdout(), noColor)

	return sh.Run(ctx)
}
