package config

const (
	defaultStagingDir = "~/.local/share/sheaf/staging"
	defaultLogDir     = "~/.local/share/sheaf/logs"
	defaultStateDir   = "~/.local/share/sheaf/state"

	defaultMagickCommand   = "magick"
	defaultSofficeCommand  = "soffice"
	defaultGsCommand       = "gs"
	defaultConvertTimeout  = 120
	defaultRenderTimeout   = 300
	defaultAssembleTimeout = 600

	// The usage text has always documented ebook as the default profile, so
	// the configuration default matches it.
	defaultQuality    = "ebook"
	defaultMaxWorkers = 2

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
			StateDir:   defaultStateDir,
		},
		Tools: Tools{
			MagickCommand:   defaultMagickCommand,
			SofficeCommand:  defaultSofficeCommand,
			GsCommand:       defaultGsCommand,
			ConvertTimeout:  defaultConvertTimeout,
			RenderTimeout:   defaultRenderTimeout,
			AssembleTimeout: defaultAssembleTimeout,
		},
		Merge: Merge{
			Quality:    defaultQuality,
			MaxWorkers: defaultMaxWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
