package config

import "flag"

// parseFlags defines and parses global CLI flags on fs.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("boardmd", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to board JSON schema")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Treat schema validation failures as fatal")
	fs.BoolVar(&cfg.IncludeEmptyFields, "empty-fields", cfg.IncludeEmptyFields, "Emit metadata lines for unset fields")
	fs.BoolVar(&cfg.SeparateCardsWithHr, "hr", cfg.SeparateCardsWithHr, "Separate cards with horizontal rules")
	fs.IntVar(&cfg.IndentSize, "indent", cfg.IndentSize, "Indent size (reserved, no effect in the base grammar)")

	return fs.Parse(args)
}
