package cmd

import (
	"os"

	"github.com/clipseek/clipseek/auth"
	"github.com/clipseek/clipseek/color"
	"github.com/clipseek/clipseek/config"
	"github.com/clipseek/clipseek/style"
	"github.com/clipseek/clipseek/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envNames lists every environment variable clipseek reads, sorted.
func envNames() []string {
	names := lo.Map(lo.Filter(lo.Values(config.Default), func(f config.Field, _ int) bool {
		return lo.Contains(config.EnvExposed, f.Key)
	}), func(f config.Field, _ int) string {
		return f.Env()
	})

	names = append(names, where.EnvConfigPath, auth.EnvToken)
	slices.Sort(names)
	return names
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables clipseek reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		for _, env := range envNames() {
			value, present := os.LookupEnv(env)
			present = present && value != ""

			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case env == auth.EnvToken:
				cmd.Println(style.Fg(color.Green)("<hidden>"))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}
