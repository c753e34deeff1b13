// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/protocolbuffers/textpb/protobind"
)

var opts checkOptions

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:   "textpbcheck --descriptor_set FILE --message NAME [FILE|GLOB...]",
	Short: "Validate text-format protobuf files",
	Run: func(cmd *cobra.Command, args []string) {
		if opts.verbose {
			l, err := zap.NewDevelopment()
			checkErr(err)
			logger = l
			protobind.SetLogger(l)
			defer func() { _ = l.Sync() }()
		}
		failed, err := check(opts, args, cmd.InOrStdin(), cmd.OutOrStdout())
		checkErr(err)
		if failed > 0 {
			bailf("%d inputs failed", failed)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func bailf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func checkErr(err error) {
	if err != nil {
		bailf("error: %v", err)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&opts.descriptorSet, "descriptor_set", "d", "", "binary FileDescriptorSet describing the schema")
	rootCmd.Flags().StringVarP(&opts.message, "message", "m", "", "full name of the message type to decode")
	rootCmd.Flags().BoolVarP(&opts.json, "json", "", false, "report results as JSON lines")
	rootCmd.Flags().BoolVarP(&opts.print, "print", "p", false, "print each decoded message")
	rootCmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "number of inputs decoded concurrently (default GOMAXPROCS)")
	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("descriptor_set")
	_ = rootCmd.MarkFlagRequired("message")
}
