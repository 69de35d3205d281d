package config

const (
	defaultConfigPath     = "~/.config/xlftools/config.toml"
	projectConfigFile     = "xlftools.toml"
	dotEnvFile            = ".env"
	defaultOutputRoot     = "."
	defaultExtractsDir    = "xlf_extracts"
	defaultComparisonsDir = "xlf-comparisons"
	defaultCommaListsDir  = "different-name-lists"
	defaultIdenticalDir   = "identical-translations"
	defaultSortedDir      = "sorted-comparisons"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// DefaultGroups returns the stock categorization groups in key order.
func DefaultGroups() []GroupBinding {
	return []GroupBinding{
		{Key: "1", Name: "untranslated"},
		{Key: "2", Name: "wrong"},
		{Key: "3", Name: "misc"},
		{Key: "4", Name: "typo"},
		{Key: "5", Name: "article/preposition"},
		{Key: "6", Name: "add word"},
		{Key: "7", Name: "remove word"},
		{Key: "8", Name: "change word"},
		{Key: "9", Name: "neuter"},
		{Key: "0", Name: "-se"},
		{Key: "-", Name: "PT->BR"},
		{Key: "=", Name: "count"},
		{Key: "q", Name: "infinitive"},
		{Key: "w", Name: "other"},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputRoot:     defaultOutputRoot,
			ExtractsDir:    defaultExtractsDir,
			ComparisonsDir: defaultComparisonsDir,
			CommaListsDir:  defaultCommaListsDir,
			IdenticalDir:   defaultIdenticalDir,
			SortedDir:      defaultSortedDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Sort: Sort{
			Groups: DefaultGroups(),
		},
	}
}
