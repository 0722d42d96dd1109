package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mangohow/mangokit/tools/stream"
	"github.com/mangohow/minerva/cmd/minerva/internal/command"
	"github.com/mangohow/minerva/cmd/minerva/internal/errors"
	"github.com/mangohow/minerva/cmd/minerva/internal/gen"
	"github.com/mangohow/minerva/cmd/minerva/internal/log"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "minerva",
		Short: "minerva is a cli tool for generating data access codes",
		Long:  "minerva is a cli tool for generating data access codes",
	}

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "generate codes from model structs",
	}

	fieldsCmd = &cobra.Command{
		Use:   "fields",
		Short: "generate field descriptors for model structs",
		Run: func(cmd *cobra.Command, args []string) {
			options := parseCommandArgs(cmd)
			if err := generateFields(options); err != nil {
				log.Fatalf("%v", err)
			}
		},
	}
)

func init() {
	if err := command.BindCommand(fieldsCmd, &command.GenOptions{}); err != nil {
		log.Fatalf("bind command error, err: %v", err)
	}
	genCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(genCmd)
}

func parseCommandArgs(cmd *cobra.Command) *command.GenOptions {
	options := &command.GenOptions{}
	if err := command.BindOptions(cmd, options); err != nil {
		log.Fatalf("bind options error, err: %v", err)
	}

	if options.File == "" {
		// 获取go generate传入的参数
		goSourceFile := os.Getenv("GOFILE")
		dir, err := os.Getwd()
		if err != nil {
			log.Fatalf("get cwd: %v", err)
		}
		options.File = filepath.Join(dir, goSourceFile)
	}

	return options
}

func generateFields(options *command.GenOptions) error {
	var typeNames []string
	if options.Types != "" {
		typeNames = stream.Map(strings.Split(options.Types, ","), strings.TrimSpace)
	}

	parsed, err := gen.ParseModelFile(options.File, typeNames)
	if err != nil {
		return err
	}

	genOpts := gen.GenerateOptions{Package: options.Package}
	if options.Package != parsed.Package {
		importPath, err := gen.ResolveImportPath(filepath.Dir(options.File))
		if err != nil {
			return err
		}
		genOpts.ModelImport = importPath
	}

	source, err := gen.Generate(parsed, genOpts)
	if err != nil {
		return err
	}

	outDir := options.OutPutPath
	if outDir == "" {
		outDir = filepath.Join(filepath.Dir(options.File), options.Package)
	}
	outDir, err = filepath.Abs(outDir)
	if err != nil {
		return errors.Wrapf(err, "get abs output path failed")
	}
	if err = os.MkdirAll(outDir, 0755); err != nil {
		return errors.Wrapf(err, "mkdir %s error", outDir)
	}

	filename := filepath.Base(options.File)
	if index := strings.LastIndex(filename, "."); index != -1 {
		filename = filename[:index]
	}
	target := filepath.Join(outDir, filename+"_fields.go")
	if err = os.WriteFile(target, source, 0644); err != nil {
		return errors.Wrapf(err, "write source to %s failed", target)
	}

	log.Infof("generated %s", target)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
