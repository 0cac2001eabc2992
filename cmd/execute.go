package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ComedicChimera/olive"

	"github.com/Dev-Re2906/hardhat/common"
	"github.com/Dev-Re2906/hardhat/config"
	"github.com/Dev-Re2906/hardhat/fsys"
	"github.com/Dev-Re2906/hardhat/pkgmap"
	"github.com/Dev-Re2906/hardhat/report"
	"github.com/Dev-Re2906/hardhat/resolver"
)

// Execute is the entry point for the `solresolve` CLI.
func Execute() {
	cli := olive.NewCLI("solresolve", "solresolve resolves Solidity imports across a node_modules-style workspace", true)
	logLvlArg := cli.AddSelectorArg("loglevel", "ll", "the reporter log level", false, []string{"silent", "error", "warn", "verbose"})
	logLvlArg.SetDefaultValue("verbose")

	resolveCmd := cli.AddSubcommand("resolve", "resolve a project file path or an npm module string", true)
	resolveCmd.AddPrimaryArg("target", "an absolute project file path, or an npm module string with --npm", true)
	resolveCmd.AddStringArg("project", "p", "path to the project root (default: current directory)", false)
	resolveCmd.AddFlag("npm", "n", "treat target as a bare npm module string instead of a file path")

	checkCmd := cli.AddSubcommand("check", "build the package map and report every remapping error found", true)
	checkCmd.AddPrimaryArg("project-root", "the path to the project root", true)

	cli.AddSubcommand("version", "print the resolver version", false)

	result, err := olive.ParseArgs(cli, os.Args)
	if err != nil {
		report.ReportFatal(err.Error())
	}

	report.InitReporter(logLevelFromName(result.Arguments["loglevel"].(string)))

	subcmdName, subResult, _ := result.Subcommand()
	switch subcmdName {
	case "resolve":
		execResolveCommand(subResult)
	case "check":
		execCheckCommand(subResult)
	case "version":
		fmt.Println(common.ResolverVersion)
	}
}

// execResolveCommand builds the package map for the selected project root
// and resolves the target either as a project file or as an npm module
// string, per the --npm flag.
func execResolveCommand(result *olive.ArgParseResult) {
	target, _ := result.PrimaryArg()

	projectRoot := currentDir()
	if p, ok := result.Arguments["project"].(string); ok && p != "" {
		projectRoot = p
	}

	_, res := initProject(projectRoot)

	ctx := context.Background()

	if isNpm, _ := result.Arguments["npm"].(bool); isNpm {
		file, _, err := res.ResolveNpmDependencyFileAsRoot(ctx, target)
		if err != nil {
			report.ReportResolverError(target, err)
			os.Exit(1)
		}
		printResolvedFile(file)
		return
	}

	absPath := target
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(projectRoot, target)
	}

	file, err := res.ResolveProjectFile(ctx, absPath)
	if err != nil {
		report.ReportResolverError(target, err)
		os.Exit(1)
	}
	printResolvedFile(file)
}

// execCheckCommand builds the package map for project-root and reports
// every remapping/manifest error discovered during discovery, without
// resolving any particular file.
func execCheckCommand(result *olive.ArgParseResult) {
	projectRoot, _ := result.PrimaryArg()
	if !filepath.IsAbs(projectRoot) {
		absProjectRoot, err := filepath.Abs(projectRoot)
		if err != nil {
			report.ReportFatal("unable to resolve project root %s: %s", projectRoot, err)
		}
		projectRoot = absProjectRoot
	}

	if err := config.LoadEnv(projectRoot); err != nil {
		report.ReportFatal("loading .env: %s", err)
	}
	cfg, err := config.Load(projectRoot)
	if err != nil {
		report.ReportFatal("loading %s: %s", config.ConfigFileName, err)
	}

	ctx := context.Background()
	_, errs := pkgmap.New(ctx, fsys.OS{}, projectRoot, cfg.NodePath)
	if len(errs) > 0 {
		for _, e := range errs {
			report.ReportResolverError(projectRoot, e)
		}
		os.Exit(1)
	}

	fmt.Println("no remapping errors found")
}

// initProject loads project configuration, constructs the package map, and
// wraps it in a Resolver. Any construction error is fatal: there is no
// partial-project mode to fall back to.
func initProject(projectRoot string) (*pkgmap.Map, *resolver.Resolver) {
	if !filepath.IsAbs(projectRoot) {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			report.ReportFatal("unable to resolve project root %s: %s", projectRoot, err)
		}
		projectRoot = abs
	}

	if err := config.LoadEnv(projectRoot); err != nil {
		report.ReportFatal("loading .env: %s", err)
	}
	cfg, err := config.Load(projectRoot)
	if err != nil {
		report.ReportFatal("loading %s: %s", config.ConfigFileName, err)
	}

	fs := fsys.OS{}
	pm, errs := pkgmap.New(context.Background(), fs, projectRoot, cfg.NodePath)
	if len(errs) > 0 {
		for _, e := range errs {
			report.ReportResolverError(projectRoot, e)
		}
		os.Exit(1)
	}

	return pm, resolver.New(fs, pm)
}

func printResolvedFile(file *resolver.ResolvedFile) {
	fmt.Println(file.SourceName)
	for _, imp := range file.ImportPaths {
		fmt.Println("  import", imp)
	}
	for _, p := range file.VersionPragmas {
		fmt.Println("  pragma solidity", p.Constraint)
	}
}

func logLevelFromName(name string) int {
	switch name {
	case "silent":
		return report.LogLevelSilent
	case "error":
		return report.LogLevelError
	case "warn":
		return report.LogLevelWarn
	default:
		return report.LogLevelVerbose
	}
}

func currentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		report.ReportFatal("unable to determine current directory: %s", err)
	}
	return dir
}
