// Package config provides the configuration system for phonepad.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← PHONEPAD_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← --config (TOML or YAML)
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Basic Usage
//
//	cfg := config.New(config.WithFile("phonepad.toml"))
//	if err := cfg.Load(ctx); err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	out := cfg.Output()
//	fmt.Println(out.Format)
//
// # Sections
//
//	[output]  format = "text" | "pretty" | "json", color = "auto" | "always" | "never"
//	[input]   format = "line" | "jsonl", field = "keys"
//	[batch]   workers = 0 (GOMAXPROCS)
//	[logging] level = "warn", format = "text" | "json"
package config
