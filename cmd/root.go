package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thoughtscan",
	Short: "thoughtscan - Análise heurística de segurança com árvore de raciocínio",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
