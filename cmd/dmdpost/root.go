/*
 * root.go, part of dmdpost.
 *
 * Copyright 2026 The dmdpost authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"strings"

	"github.com/grieder/test-DMD/params"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//vp holds the flags and environment of the run. Input files merged into it
//have less priority than both.
var vp = viper.New()

var rootCmd = &cobra.Command{
	Use:   "dmdpost",
	Short: "Post-process T1 and electron-phonon linewidth runs.",
	Long: `dmdpost reads the output files of spin relaxation (T1) and phonon linewidth
runs from a directory, computes derived quantities, writes them as numeric tables
and draws the corresponding figures.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

//rootFlags are bound to keys of the same name.
var rootFlags = []string{"dir", "no-plot", "plot-format"}

//initConfig sets vp to read the environment and the flags of all the commands.
//It runs before each execution of a command, so vp can be replaced between runs.
func initConfig() {
	vp.SetEnvPrefix(params.EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vp.AutomaticEnv()
	for _, f := range rootFlags {
		_ = vp.BindPFlag(f, rootCmd.PersistentFlags().Lookup(f))
	}
	for _, f := range acFlags {
		_ = vp.BindPFlag(f.key, sigmaacCmd.Flags().Lookup(f.flag))
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("dir", ".", "directory with the input files; outputs are written there too")
	rootCmd.PersistentFlags().Bool("no-plot", false, "don't draw figures, only write tables")
	rootCmd.PersistentFlags().String("plot-format", "", "figure format: pdf, png, svg or eps (default pdf for t1, png for sigmaac)")

	rootCmd.AddCommand(t1Cmd)
	rootCmd.AddCommand(sigmaacCmd)
}

//plotFormat returns the requested figure format, or def if none was requested.
func plotFormat(def string) string {
	f := strings.TrimPrefix(strings.ToLower(vp.GetString("plot-format")), ".")
	if f == "" {
		return def
	}
	return f
}
