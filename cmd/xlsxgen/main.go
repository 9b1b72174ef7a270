// Command xlsxgen writes .xlsx workbooks from YAML layouts.
package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/adnsv/xlsxgen/xl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	buildOutput string
	demoOutput  string
	dumpDir     string
	store       bool
	verbose     bool
)

var log = logrus.New()

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxgen",
		Short: "Generate Excel workbooks",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	buildCmd := &cobra.Command{
		Use:   "build [layout.yaml]",
		Short: "Build a workbook from a YAML layout",
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "out.xlsx", "Output file path")
	buildCmd.Flags().BoolVar(&store, "store", false, "Store zip entries without compression")
	buildCmd.Flags().StringVar(&dumpDir, "dir", "", "Write the package parts to this directory instead of a zip file")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a sample workbook",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	demoCmd.Flags().StringVarP(&demoOutput, "output", "o", "demo.xlsx", "Output file path")

	rootCmd.AddCommand(buildCmd, demoCmd)

	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	layout, err := loadLayout(args[0])
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"layout": args[0],
		"sheets": len(layout.Sheets),
	}).Debug("loaded layout")

	opts, err := layout.saveOptions()
	if err != nil {
		return err
	}
	if store {
		opts.Compression = xl.NoCompression
	}

	wb, err := layout.Build()
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	if dumpDir != "" {
		err = wb.SaveDir(dumpDir, opts)
		if err != nil {
			return err
		}
		log.WithField("dir", dumpDir).Info("wrote package parts")
		return nil
	}
	return writeWorkbook(wb, buildOutput, opts)
}

func runDemo(cmd *cobra.Command, args []string) error {
	wb, err := demoWorkbook(time.Now())
	if err != nil {
		return err
	}
	return writeWorkbook(wb, demoOutput, xl.DefaultSaveOptions())
}

func writeWorkbook(wb *xl.Workbook, fn string, opts xl.SaveOptions) error {
	for _, sheet := range wb.Sheets() {
		log.WithFields(logrus.Fields{
			"sheet": sheet.Name(),
			"cells": sheet.Cells.Len(),
		}).Debug("sheet")
	}

	bb := bytes.Buffer{}
	err := xl.Save(wb, &bb, opts)
	if err != nil {
		return err
	}
	err = os.WriteFile(fn, bb.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.WithFields(logrus.Fields{
		"output": fn,
		"bytes":  bb.Len(),
	}).Info("workbook saved")
	return nil
}
