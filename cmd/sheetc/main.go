package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sheetio/sheet"
	"github.com/sheetio/sheet/coord"
	"github.com/sheetio/sheet/format"
	"github.com/sheetio/sheet/log"
	"github.com/sheetio/sheet/options"
	"github.com/sheetio/sheet/table"
)

const (
	ModeConvert = "convert" // read input files and write them in the output format
	ModeInfo    = "info"    // print a summary of the input files
)

var (
	outdir             string
	outFormat          string
	mode               string
	configPath         string
	needOutputConfTmpl bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "sheetc [FILE]...",
		Version: genVersion(),
		Short:   "Sheetc converts tabular data files between CSV, JSON, flat ODF, and xlsx",
		Run:     runCmd,
	}

	rootCmd.Flags().StringVarP(&outdir, "outdir", "o", ".", "Output directory, default is current directory")
	rootCmd.Flags().StringVarP(&outFormat, "format", "f", "fods", "Output format: csv, json, fods, or xlsx")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "convert", `Available mode: convert and info.
- convert: read input files and write them in the output format.
- info: print a summary of the input files.
`)
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.Flags().BoolVarP(&needOutputConfTmpl, "output-config-template", "t", false, "Output config template")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func runCmd(cmd *cobra.Command, args []string) {
	if needOutputConfTmpl {
		outputConfTmpl()
		return
	}

	opts := options.NewDefault()
	if configPath != "" {
		if err := loadConf(configPath, opts); err != nil {
			log.Errorf("load config failed: %+v", err)
			os.Exit(-1)
		}
	}
	if opts.Log == nil {
		opts.Log = options.NewDefault().Log
	}
	if err := log.Init(opts.Log); err != nil {
		log.Errorf("init log failed: %+v", err)
		os.Exit(-1)
	}
	log.Debugf("loaded sheet config: %+v", spew.Sdump(opts))

	if len(args) == 0 {
		log.Errorf("no input files")
		os.Exit(-1)
	}
	switch mode {
	case ModeConvert:
		convert(args, opts)
	case ModeInfo:
		info(args, opts)
	default:
		log.Errorf("unknown mode: %s", mode)
		os.Exit(-1)
	}
}

func convert(filenames []string, opts *options.Options) {
	outFmt := format.Ext2Format("." + outFormat)
	if !format.IsOutputFormat(outFmt) {
		log.Errorf("unknown output format: %s", outFormat)
		os.Exit(-1)
	}
	err := sheet.Convert(filenames, outdir, outFmt,
		options.Input(opts.Input),
		options.Output(opts.Output),
	)
	if err != nil {
		log.Errorf("convert failed: %+v", err)
		os.Exit(-1)
	}
}

func info(filenames []string, opts *options.Options) {
	doc, err := sheet.Load(filenames, options.Input(opts.Input))
	if err != nil {
		log.Errorf("load failed: %+v", err)
		os.Exit(-1)
	}
	for _, tbl := range doc.Tables() {
		fmt.Printf("table %q: %d cols x %d rows\n", tbl.Name(), tbl.Width(), tbl.Height())
		for _, region := range tbl.Spans().Regions() {
			fmt.Printf("  span %s\n", coord.FormatRange(region.Range()))
		}
	}
	printNamedRanges(doc)
}

func printNamedRanges(doc *table.Document) {
	for _, nr := range doc.NamedRanges() {
		fmt.Printf("named range %q: %s!%s\n",
			nr.Name, nr.TableName, coord.FormatRange(nr.Range))
	}
}

func loadConf(path string, out any) error {
	d, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(d, out)
}

func outputConfTmpl() {
	d, err := yaml.Marshal(options.NewDefault())
	if err != nil {
		fmt.Printf("marshal failed: %+v\n", err)
		os.Exit(-1)
	}
	fmt.Println(string(d))
}

func genVersion() string {
	info := sheet.GetVersionInfo()
	ver := info.Version
	if info.Revision != "" {
		ver += fmt.Sprintf(" (%s, %s)", info.Revision, info.Time)
	}
	return ver
}
