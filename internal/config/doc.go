// Package config provides configuration management for lumictl.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (embedded in binary)
//     - Talks to http://localhost:8000/graphql with the nested dialect
//     - Four lights: TOP, BOTTOM, LEFT, RIGHT
//
//  2. User Configuration (~/.config/lumictl/config.yaml)
//
//  3. Project Configuration (./.lumictl/config.yaml)
//
// Passing --config replaces layers 2 and 3 with a single file.
//
// # Configuration Structure
//
//	rig:
//	  endpoint: "http://lumi.local:8000/graphql"
//	  timeout: 5s
//	  dialect: "lumi"        # or "nested"
//	  rateLimit: 20          # requests per second
//	  burst: 5
//
//	lights: ["TOP", "BOTTOM", "LEFT", "RIGHT"]
//
//	modes:
//	  - route: "controller"
//	    title: "Controller"
//	    icon: "🎮"
//	    mode: "Controller"
//	    mutation: "controller"
//	  - route: "rainbow"
//	    disabled: true
//
//	dashboard:
//	  initialRoute: "manual"
//	  gestureIdle: 250ms
//	  step: 0.01
//
//	state:
//	  path: "~/.local/share/lumictl/state.db"
//
//	mcp:
//	  transport: "sse"
//	  host: "localhost"
//	  port: 8090
//	  metricsAddr: ":9100"
//
// Modes are merged by route: an entry whose route matches a built-in mode
// replaces it, anything else is appended to the navigation drawer.
package config
