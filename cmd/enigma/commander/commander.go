package commander

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/sergeii/enigma/cmd/enigma/build"
)

type Globals struct {
	LogLevel  string `default:"info"   enum:"debug,info,warn,error"      env:"ENIGMA_LOG_LEVEL"  help:"Sets the minimum severity level for log messages"` // nolint:lll
	LogOutput string `default:"stderr" enum:"console,stdout,stderr,json" env:"ENIGMA_LOG_OUTPUT" help:"Specifies the format for log output"`              // nolint:lll

	MaxTextLength int `default:"65536" env:"ENIGMA_MAX_TEXT_LENGTH" help:"Limits the number of characters accepted for a single encryption (0 means no limit)"` // nolint:lll

	ExporterHTTPListenAddress   string        `default:":9000" env:"ENIGMA_EXPORTER_HTTP_LISTEN_ADDRESS"   help:"Sets the address where the Prometheus exporter server listens for requests"`            // nolint:lll
	ExporterHTTPReadTimeout     time.Duration `default:"5s"    env:"ENIGMA_EXPORTER_HTTP_READ_TIMEOUT"     help:"Sets the maximum duration to read the request body before timing out"`                  // nolint:lll
	ExporterHTTPWriteTimeout    time.Duration `default:"5s"    env:"ENIGMA_EXPORTER_HTTP_WRITE_TIMEOUT"    help:"Sets the maximum duration to write a response before timing out"`                       // nolint:lll
	ExporterHTTPShutdownTimeout time.Duration `default:"10s"   env:"ENIGMA_EXPORTER_HTTP_SHUTDOWN_TIMEOUT" help:"The amount of time the server will wait gracefully closing connections before exiting"` // nolint:lll
}

type VersionCmd struct{}

func (v *VersionCmd) Run() error {
	version := fmt.Sprintf("Version: %s (%s) built at %s", build.Version, build.Commit, build.Time)
	fmt.Println(version) // nolint: forbidigo
	os.Exit(0)
	return nil
}

type RunCmd struct {
	kong.Plugins
}

type CLI struct {
	Globals
	kong.Plugins

	Version VersionCmd `cmd:"" help:"Display the app version and exit"`
	Run     RunCmd     `cmd:"" help:"Run a long-lived component"`
}
