package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d storage DSN (sqlite://, postgres://, file://, :memory:)
//	-slot-key key of the single record slot
//	-max-file-size per-file upload cap (e.g. "10MiB")
//	-allow-video accept inline video uploads
//	-concurrency number of files read at once
//	-max-suggestions autocomplete panel size
//	-blur-delay panel close delay on focus loss (e.g. "200ms")
//	-log log file path
//	-export-dir directory for exported HTML sheets
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var (
		dsn            string
		slotKey        string
		maxFileSize    ByteSize
		allowVideo     bool
		concurrency    int
		maxSuggestions int
		blurDelay      time.Duration
		logPath        string
		exportDir      string
		jsonConfigPath string
	)

	flag.StringVar(&dsn, "d", "", "Storage DSN")
	flag.StringVar(&slotKey, "slot-key", "", "Record slot key")
	flag.Var(&maxFileSize, "max-file-size", "Per-file upload cap (e.g. 10MiB)")
	flag.BoolVar(&allowVideo, "allow-video", false, "Accept video uploads")
	flag.IntVar(&concurrency, "concurrency", 0, "Number of files read at once")
	flag.IntVar(&maxSuggestions, "max-suggestions", 0, "Autocomplete panel size")
	flag.DurationVar(&blurDelay, "blur-delay", 0, "Panel close delay on focus loss (e.g. 200ms)")
	flag.StringVar(&logPath, "log", "", "Log file path")
	flag.StringVar(&exportDir, "export-dir", "", "Directory for exported sheets")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Storage: Storage{
			DSN:     dsn,
			SlotKey: slotKey,
		},
		Media: Media{
			MaxFileSize: maxFileSize,
			AllowVideo:  allowVideo,
			Concurrency: concurrency,
		},
		Editor: Editor{
			MaxSuggestions: maxSuggestions,
			BlurDelay:      blurDelay,
		},
		Log: Log{
			Path: logPath,
		},
		Export: Export{
			Dir: exportDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
