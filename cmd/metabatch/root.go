package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	credentialsFlag   string
	outputColumnsFlag string
	previewFlag       bool
	removeIDFlag      bool
	shoulderFlag      string
	tabFlag           bool
	serverFlag        string
	cfgFile           string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "metabatch",
	})

	rootCmd = &cobra.Command{
		Use:   "metabatch",
		Short: "Batch registers identifiers from tabular metadata",
		Long: `metabatch transforms rows of tabular metadata through a mapping
configuration and registers one identifier per row.

The mapping file holds one rule per line, "destination = expression".
Flat destinations become metadata fields; /resource/... destinations
build a DataCite document. Expressions reference input columns with
$N, ${N}, and ${N1,N2:function}, and $$ escapes a literal dollar sign.

Rows are processed in order, one at a time. A configuration or
expression error aborts the whole run; per-record registration
failures land in the _error output column and the run continues.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&credentialsFlag, "credentials", "c", "",
		"username:password, username (password prompted), or sessionid=...")
	pf.StringVarP(&outputColumnsFlag, "output-columns", "o", "",
		"comma-separated output columns (default _n,_id,_error)")
	pf.BoolVarP(&previewFlag, "preview", "p", false,
		"write transformed metadata to stdout instead of registering")
	pf.BoolVarP(&tabFlag, "tab", "t", false,
		"tab-separated input (no quoting, no multiline values)")
	pf.StringVar(&serverFlag, "server", "", "registration API base URL")
	pf.StringVar(&cfgFile, "config", "",
		"config file (default $XDG_CONFIG_HOME/metabatch/config.yaml)")

	mintCmd.Flags().StringVarP(&shoulderFlag, "shoulder", "s", "",
		"shoulder to mint under, e.g. ark:/99999/fk4")
	mintCmd.Flags().BoolVarP(&removeIDFlag, "remove-id", "r", false,
		"drop any mapping to _id; useful when temporarily minting")

	rootCmd.AddCommand(mintCmd, createCmd, updateCmd)
}

var mintCmd = &cobra.Command{
	Use:   "mint mappings input.csv",
	Short: "Mint new identifiers under a shoulder",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return run(opMint, args[0], args[1])
	},
}

var createCmd = &cobra.Command{
	Use:   "create mappings input.csv",
	Short: "Create identifiers named by the _id mapping",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return run(opCreate, args[0], args[1])
	},
}

var updateCmd = &cobra.Command{
	Use:   "update mappings input.csv",
	Short: "Update metadata of existing identifiers",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return run(opUpdate, args[0], args[1])
	},
}

// Execute runs the root command, surfacing any failure as a single
// message with a non-zero exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
