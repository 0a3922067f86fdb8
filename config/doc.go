// Package config loads estimation parameter files in YAML or TOML format.
//
// A parameter file maps onto the duration, pause, and bootstrap parameter
// structs plus the top-level estimation knobs. The format is detected from
// the file extension: .toml is parsed as TOML, .yaml and .yml as YAML.
//
// Basic usage:
//
//	cfg, err := config.Load("params.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := ptef.Estimate(1000,
//		ptef.WithDurationParams(cfg.Duration),
//		ptef.WithPauseParams(cfg.Pauses),
//		ptef.WithBlockSize(cfg.BlockSize),
//	)
//
// Long-lived callers can watch a file for edits:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	updates, err := config.Watch(ctx, "params.yaml")
//	for cfg := range updates {
//		applyParams(cfg)
//	}
//
// Schema returns a JSON Schema describing the parameter document, suitable
// for editor integration or external validation.
package config
