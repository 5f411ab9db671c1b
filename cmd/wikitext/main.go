package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"wikitext/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "wikitext",
	Short: "Wiki markup parser and tree inspector",
	Long:  `wikitext parses wiki markup into a normalized element tree and renders it in several formats`,
	// Ошибка RunE здесь — обычно синтаксис входного файла, а не misuse CLI
	SilenceUsage: true,
}

// main initializes the CLI by setting the command version, registering subcommands and persistent flags, and then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-width", 80, "maximum display width for diagnostic context lines")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
