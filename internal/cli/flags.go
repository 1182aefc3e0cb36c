package cli

import (
	"flag"
)

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	ConfigPath string
	Port       int
	Verbose    bool
}

// ParseServeFlags parses command line flags for the serve command.
func ParseServeFlags() *ServeFlags {
	flags := &ServeFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "", "Path to YAML config file (optional)")
	flag.IntVar(&flags.Port, "port", 0, "Port to listen on (overrides config)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}

// GenerateFlags holds the CLI flags for one-shot voucher generation.
type GenerateFlags struct {
	Accounts  string
	Customers string
	Rules     string
	Statement string
	Output    string
	StartNo   int
	Verbose   bool
}

// ParseGenerateFlags parses command line flags for the generate command.
func ParseGenerateFlags() *GenerateFlags {
	flags := &GenerateFlags{}
	flag.StringVar(&flags.Accounts, "accounts", "", "Chart of accounts file (csv or xlsx)")
	flag.StringVar(&flags.Customers, "customers", "", "Customer directory file (csv or xlsx)")
	flag.StringVar(&flags.Rules, "rules", "", "Rule table file (csv or xlsx)")
	flag.StringVar(&flags.Statement, "statement", "", "Bank statement file (csv or xlsx)")
	flag.StringVar(&flags.Output, "out", "", "Output file (.xlsx or .csv, default 凭证结果_<timestamp>.xlsx)")
	flag.IntVar(&flags.StartNo, "start", 1, "Starting voucher number")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}
