package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"mediascrub/internal/config"
	"mediascrub/pkg/cleaner"
	"mediascrub/pkg/filehandler"
	"mediascrub/pkg/heuristic"
	"mediascrub/pkg/logger"
	"mediascrub/pkg/models"
	"mediascrub/pkg/video"
)

var (
	// Color printers
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	alertColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

func printAlert(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", alertColor("[!!!]"), fmt.Sprintf(format, args...))
}

const logFileName = "mediascrub.log"

func main() {
	var (
		filePath    = flag.String("file", "", "Path to a single file to clean or analyze")
		dirPath     = flag.String("dir", "", "Path to a directory of media files")
		configPath  = flag.String("config", "config.yaml", "Configuration file path")
		analyzeOnly = flag.Bool("analyze-only", false, "Only analyze for hidden data, don't clean")
		noBackup    = flag.Bool("no-backup", false, "Skip backup creation")
		rename      = flag.Bool("rename", false, "Rename files to anonymized names")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
	)

	flag.Parse()

	fmt.Println("mediascrub v1.0.0")
	fmt.Println("Media metadata scrubbing and hidden-data analysis")
	fmt.Println("---------------------------------")

	if *filePath == "" && *dirPath == "" {
		fmt.Println("Usage:")
		fmt.Println("  mediascrub -file <filepath>")
		fmt.Println("  mediascrub -dir <directory>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		printWarning("Config error: %v. Using defaults.", err)
	}
	if *noBackup {
		cfg.BackupOriginals = false
	}
	if *rename {
		cfg.RenameFiles = true
	}

	minLevel := logger.ParseLevel(cfg.LogLevel)
	if *verbose {
		minLevel = logger.VERBOSE
	}

	var logSink io.Writer
	if logFile, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		printWarning("Cannot open log file %s: %v", logFileName, err)
	} else {
		defer logFile.Close()
		logSink = logFile
	}
	logs := logger.New(minLevel, logSink)

	analyzer := heuristic.NewAnalyzer(nil, logs.GetLogger("Analyzer"))

	if *analyzeOnly {
		runAnalysis(analyzer, *filePath, *dirPath, *verbose)
		return
	}

	transcoder := video.New(video.Config{
		FfmpegBinPath:  cfg.FfmpegBinaryPath,
		FfprobeBinPath: cfg.FfprobeBinaryPath,
	}, logs.GetLogger("FFmpeg"))

	clean := cleaner.New(cfg, analyzer, transcoder, logs.GetLogger("Cleaner"))
	ctx := context.Background()

	if *filePath != "" {
		printInfo("Cleaning file: %s", *filePath)
		result := clean.CleanFile(ctx, *filePath)
		displayCleaningResult(result, *verbose)
	}

	if *dirPath != "" {
		printInfo("Cleaning directory: %s", *dirPath)
		summary, err := clean.CleanDirectory(ctx, *dirPath)
		if err != nil {
			printError("Directory processing failed: %v", err)
			return
		}
		printSummary(summary)
	}
}

func runAnalysis(analyzer *heuristic.Analyzer, filePath, dirPath string, verbose bool) {
	analyzeOne := func(path string) {
		report, err := analyzer.Analyze(path)
		if err != nil {
			printError("Analysis failed for %s: %v", path, err)
		}
		displayAnalysisReport(report, verbose)
	}

	if filePath != "" {
		printInfo("Analyzing file: %s", filePath)
		analyzeOne(filePath)
	}

	if dirPath != "" {
		printInfo("Analyzing directory: %s", dirPath)
		files, err := filehandler.FilesInDirectory(dirPath)
		if err != nil {
			printError("Failed to read directory: %v", err)
			os.Exit(1)
		}
		printInfo("Found %d files to analyze", len(files))
		for _, path := range files {
			analyzeOne(path)
		}
	}
}

func displayAnalysisReport(report *models.AnalysisReport, verbose bool) {
	fmt.Println("\n--- Analysis Results ---")
	fmt.Printf("File: %s\n", report.Path)
	fmt.Printf("Size: %d bytes\n", report.ByteSize)
	fmt.Printf("Entropy: %.4f\n", report.Entropy)

	switch report.RiskLevel {
	case models.RiskHigh:
		printAlert("HIGH hidden-data risk")
	case models.RiskMedium:
		printWarning("MEDIUM hidden-data risk")
	case models.RiskLow:
		printSuccess("LOW hidden-data risk")
	default:
		printError("Risk UNKNOWN (file could not be analyzed)")
	}

	if len(report.MatchedSignatures) > 0 {
		fmt.Printf("Matched signatures: %d\n", len(report.MatchedSignatures))
		if verbose {
			for _, sig := range report.MatchedSignatures {
				fmt.Printf("  - %s\n", sig)
			}
		}
	}

	if len(report.Advisories) > 0 {
		fmt.Println("\nAdvisories:")
		for i, advisory := range report.Advisories {
			fmt.Printf("%d. %s\n", i+1, advisory)
		}
	}

	fmt.Println("-------------------------")
}

func displayCleaningResult(result models.CleaningResult, verbose bool) {
	if result.Success {
		printSuccess("Successfully cleaned: %s", result.OriginalPath)
	} else {
		printError("Failed to clean: %s", result.OriginalPath)
	}

	for _, op := range result.Operations {
		fmt.Printf("  - %s\n", op)
	}
	for _, e := range result.Errors {
		printError("  %s", e)
	}

	if result.Report != nil {
		fmt.Printf("Final entropy: %.4f\n", result.Report.Entropy)
		fmt.Printf("Risk level: %s\n", result.Report.RiskLevel)
	}

	if verbose && result.Success {
		if hash, err := filehandler.HashFile(result.FinalPath); err == nil {
			fmt.Printf("SHA-256: %s\n", hash)
		}
	}
}

func printSummary(summary *models.BatchSummary) {
	fmt.Println("\n=== Cleaning Summary ===")
	fmt.Printf("Total files: %d\n", summary.TotalFiles)
	fmt.Printf("%s Processed: %d\n", successColor("[+]"), summary.ProcessedFiles)

	if summary.FailedFiles > 0 {
		fmt.Printf("%s Failed: %d\n", errorColor("[-]"), summary.FailedFiles)
		fmt.Println("\nFailed files:")
		for _, result := range summary.FileResults {
			if !result.Success {
				fmt.Printf("- %s (%v)\n", result.OriginalPath, result.Errors)
			}
		}
	}

	highRisk := 0
	for _, result := range summary.FileResults {
		if result.Report != nil && result.Report.RiskLevel == models.RiskHigh {
			highRisk++
		}
	}
	if highRisk > 0 {
		printAlert("%d files still classify as HIGH risk after cleaning", highRisk)
	}
}
