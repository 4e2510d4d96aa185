package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage information to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `passmeter - password strength meter

Usage:
  passmeter <command> [options]

Commands:
  serve       Start the HTTP API
  check       Score a single password
  watch       Live meter: score each line read from stdin
  generate    Generate very strong passwords
  version     Show version information

Use "passmeter <command> -h" for more information about a command.

Environment Variables:
  PASSMETER_SERVER_PORT                    Listen port (default 5000)
  PASSMETER_SERVER_LOG_LEVEL               debug, info, warn, error
  PASSMETER_SERVER_LOG_FORMAT              json, console
  PASSMETER_EVALUATOR_COMMON_PASSWORDS_FILE  Replace the built-in common password list
  PASSMETER_METER_DEBOUNCE                 Live meter quiet period (default 300ms)
  PASSMETER_METER_REMOTE_URL               Score through a running server
  PASSMETER_METRICS_ENABLED                Expose Prometheus metrics
`)
}
